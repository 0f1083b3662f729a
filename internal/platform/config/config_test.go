// Copyright (c) 2026 GolpoHub. All rights reserved.

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golpohub/golpohub/internal/platform/config"
)

/*
TestParse_RequiredFields verifies startup fails hard when a connection parameter is absent.
*/
func TestParse_RequiredFields(t *testing.T) {
	tests := []struct {
		name        string
		databaseURL string
		authSecret  string
		wantErr     bool
	}{
		{"both_present", "postgres://localhost/golpo", "secret", false},
		{"missing_store_url", "", "secret", true},
		{"missing_access_key", "postgres://localhost/golpo", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", tt.databaseURL)
			t.Setenv("AUTH_SECRET", tt.authSecret)

			cfg, err := config.Parse()
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.databaseURL, cfg.DatabaseURL)
		})
	}
}

/*
TestParse_Defaults checks the documented default values.
*/
func TestParse_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/golpo")
	t.Setenv("AUTH_SECRET", "secret")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, time.Minute, cfg.RefreshInterval)
	assert.Equal(t, "dark", cfg.DefaultTheme)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.HasAdminBootstrap())
}

/*
TestParse_InvalidTheme rejects unknown theme names.
*/
func TestParse_InvalidTheme(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/golpo")
	t.Setenv("AUTH_SECRET", "secret")
	t.Setenv("DEFAULT_THEME", "sepia")

	_, err := config.Parse()
	assert.Error(t, err)
}
