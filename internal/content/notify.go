// Copyright (c) 2026 GolpoHub. All rights reserved.

package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/golpohub/golpohub/internal/platform/constants"
)

// Change announces that collections were mutated by the instance Origin.
type Change struct {
	Origin      string       `json:"origin"`
	Collections []Collection `json:"collections"`
}

// Notifier fans content changes out to every API instance.
type Notifier interface {
	Publish(context context.Context, change Change) error
	// Subscribe calls handle for each change until context is cancelled.
	Subscribe(context context.Context, handle func(Change)) error
}

// # No-op

// NopNotifier is used when the API runs as a single instance.
type NopNotifier struct{}

func (NopNotifier) Publish(context.Context, Change) error { return nil }

func (NopNotifier) Subscribe(ctx context.Context, _ func(Change)) error {
	<-ctx.Done()
	return nil
}

// # Redis

// RedisNotifier publishes changes on a Redis pub/sub channel.
type RedisNotifier struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

func NewRedisNotifier(client *redis.Client, logger *slog.Logger) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: constants.RedisChannelContent,
		logger:  logger,
	}
}

func (notifier *RedisNotifier) Publish(context context.Context, change Change) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("content: encode change: %w", err)
	}

	if err := notifier.client.Publish(context, notifier.channel, payload).Err(); err != nil {
		return fmt.Errorf("content: publish change: %w", err)
	}
	return nil
}

func (notifier *RedisNotifier) Subscribe(context context.Context, handle func(Change)) error {
	subscription := notifier.client.Subscribe(context, notifier.channel)
	defer subscription.Close()

	// Wait for the subscription confirmation so setup errors surface here.
	if _, err := subscription.Receive(context); err != nil {
		return fmt.Errorf("content: subscribe %s: %w", notifier.channel, err)
	}

	notifier.logger.Info("catalog_subscribed", slog.String("channel", notifier.channel))

	messages := subscription.Channel()
	for {
		select {
		case <-context.Done():
			return nil
		case message, ok := <-messages:
			if !ok {
				return nil
			}

			var change Change
			if err := json.Unmarshal([]byte(message.Payload), &change); err != nil {
				notifier.logger.Warn("catalog_change_malformed", slog.Any("error", err))
				continue
			}
			handle(change)
		}
	}
}

// # In-process

// MemoryNotifier delivers changes between catalogs in the same process.
type MemoryNotifier struct {
	mu       sync.Mutex
	handlers map[int]func(Change)
	next     int
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{handlers: make(map[int]func(Change))}
}

func (notifier *MemoryNotifier) Publish(_ context.Context, change Change) error {
	notifier.mu.Lock()
	handlers := make([]func(Change), 0, len(notifier.handlers))
	for _, handle := range notifier.handlers {
		handlers = append(handlers, handle)
	}
	notifier.mu.Unlock()

	for _, handle := range handlers {
		handle(change)
	}
	return nil
}

func (notifier *MemoryNotifier) Subscribe(ctx context.Context, handle func(Change)) error {
	notifier.mu.Lock()
	id := notifier.next
	notifier.next++
	notifier.handlers[id] = handle
	notifier.mu.Unlock()

	<-ctx.Done()

	notifier.mu.Lock()
	delete(notifier.handlers, id)
	notifier.mu.Unlock()
	return nil
}

// Subscribers reports how many subscriptions are active.
func (notifier *MemoryNotifier) Subscribers() int {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return len(notifier.handlers)
}
