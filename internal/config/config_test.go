package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:                 "8420",
		Env:                  "development",
		JWTSecret:            "secure-secret-at-least-32-chars-long",
		JWTExpiryMinutes:     60,
		DefaultPageSize:      20,
		NearbyRadiusKm:       10,
		NearbyCandidateLimit: 50,
		MaxUploadSizeMB:      5,
		DBPassword:           "secure-password",
		DBSSLMode:            "disable",
		RedisURL:             "localhost:6379",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid development config", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing JWT secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"zero expiry", func(c *Config) { c.JWTExpiryMinutes = 0 }, true},
		{"negative expiry", func(c *Config) { c.JWTExpiryMinutes = -5 }, true},
		{"page size too large", func(c *Config) { c.DefaultPageSize = 200 }, true},
		{"zero page size", func(c *Config) { c.DefaultPageSize = 0 }, true},
		{"zero radius", func(c *Config) { c.NearbyRadiusKm = 0 }, true},
		{"zero candidate limit", func(c *Config) { c.NearbyCandidateLimit = 0 }, true},
		{"zero max upload", func(c *Config) { c.MaxUploadSizeMB = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateProduction(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"strong secret and password", func(c *Config) {}, false},
		{
			"default JWT secret rejected",
			func(c *Config) { c.JWTSecret = "your-secret-key-change-in-production" },
			true,
		},
		{
			"short JWT secret rejected",
			func(c *Config) { c.JWTSecret = "short" },
			true,
		},
		{
			"default DB password rejected",
			func(c *Config) { c.DBPassword = "password" },
			true,
		},
		{
			"empty DB password rejected",
			func(c *Config) { c.DBPassword = "" },
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			c.Env = "production"
			c.DBSSLMode = "require"
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
