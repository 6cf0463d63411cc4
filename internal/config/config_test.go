package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		JWTSecret:   "secure-secret-at-least-32-chars-long",
		Port:        "8480",
		DBPassword:  "secure-password",
		MediaBucket: "showcase-media",
		MediaFolder: "creative-showcase",
		Env:         "development",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid development config", func(_ *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Missing media bucket", func(c *Config) { c.MediaBucket = "" }, true},
		{"Missing media folder", func(c *Config) { c.MediaFolder = "" }, true},
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
	production := func() *Config {
		c := validConfig()
		c.Env = "production"
		c.MediaAccessKey = "access"
		c.MediaSecretKey = "secret"
		return c
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid production config", func(_ *Config) {}, false},
		{"Default JWT secret", func(c *Config) { c.JWTSecret = "your-secret-key-change-in-production" }, true},
		{"Short JWT secret", func(c *Config) { c.JWTSecret = strings.Repeat("x", 31) }, true},
		{"Default DB password", func(c *Config) { c.DBPassword = "password" }, true},
		{"Empty DB password", func(c *Config) { c.DBPassword = "" }, true},
		{"Missing media access key", func(c *Config) { c.MediaAccessKey = "" }, true},
		{"Missing media secret key", func(c *Config) { c.MediaSecretKey = "" }, true},
		{"Prod alias enforced too", func(c *Config) { c.Env = "prod"; c.DBPassword = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := production()
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
