package config

import (
	"strings"
	"testing"
)

func TestValidateForProduction(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment:        EnvProduction,
			LogLevel:           "info",
			DatabaseURL:        "postgres://u:p@db:5432/biblioteca",
			CORSAllowedOrigins: "https://biblioteca.example.com",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid production config", func(*Config) {}, ""},
		{"development skips checks", func(c *Config) {
			c.Environment = EnvDevelopment
			c.LogLevel = "debug"
			c.CORSAllowedOrigins = "*"
		}, ""},
		{"wildcard cors", func(c *Config) { c.CORSAllowedOrigins = "*" }, "CORS_ALLOWED_ORIGINS"},
		{"debug logging", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
		{"sqlite database", func(c *Config) { c.DatabaseURL = "sqlite://biblioteca.db" }, "DATABASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}
