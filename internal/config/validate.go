package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Preview.validate(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	if c.RateLimit.WritesPerMinute <= 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be > 0 (got %d)", c.RateLimit.WritesPerMinute)
	}

	if c.Audit.RetentionDays < 1 {
		return fmt.Errorf("audit.retention_days must be >= 1 (got %d)", c.Audit.RetentionDays)
	}

	return nil
}

func (p *PreviewConfig) validate() error {
	if p.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be > 0 (got %s)", p.FetchTimeout)
	}
	if p.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", p.MaxBodyBytes)
	}
	if p.HostRatePerSec <= 0 {
		return fmt.Errorf("host_rate_per_sec must be > 0 (got %v)", p.HostRatePerSec)
	}
	if p.HostBurst < 1 {
		return fmt.Errorf("host_burst must be >= 1 (got %d)", p.HostBurst)
	}
	return nil
}
