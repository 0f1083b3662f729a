// Copyright (c) 2026 GolpoHub. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: Token issuer, cookie names and the login redirect target.
  - Content: Refresh cadence, view-increment deadlines and banner lifetime.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "golpohub-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in session tokens.
	AuthIssuer = "golpohub.com"

	// SessionTTL is how long an admin session token stays valid.
	SessionTTL = 12 * time.Hour

	// SessionCookieName carries the admin session token for browser clients.
	SessionCookieName = "golpo_session"

	// LoginPath is where unauthenticated or non-admin visitors are sent.
	LoginPath = "/admin/login"

	// AdminPath is the dashboard landing route.
	AdminPath = "/admin"
)

// # Content

const (
	// DefaultRefreshInterval is the cadence of background catalog refreshes.
	DefaultRefreshInterval = 1 * time.Minute

	// ViewIncrementTimeout bounds a single fire-and-forget view increment.
	ViewIncrementTimeout = 5 * time.Second

	// BannerDismissAfter is the lifetime of a transient admin banner.
	BannerDismissAfter = 5 * time.Second

	// CarouselInterval is the autoplay cadence of the featured carousel.
	CarouselInterval = 5 * time.Second

	// ThemeCookieName stores the reader's light/dark preference.
	ThemeCookieName = "golpo_theme"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderLocation      = "Location"
)

// # JSON Field Identifiers

const (
	FieldData     = "data"
	FieldMeta     = "meta"
	FieldError    = "error"
	FieldCode     = "code"
	FieldDetails  = "details"
	FieldRedirect = "redirect"
	FieldStatus   = "status"
	FieldChecks   = "checks"
)

// # Redis Keys

const (
	RedisPrefixRevokedToken = "auth:revoked:"
	RedisChannelContent     = "content:changed"
)
