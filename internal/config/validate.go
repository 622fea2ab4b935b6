package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Server.RateLimitPerMin <= 0 {
		return fmt.Errorf("server.rate_limit_per_min must be > 0 (got %d)", c.Server.RateLimitPerMin)
	}

	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be > 0 (got %d)", c.Server.MaxUploadBytes)
	}

	if c.Extraction.MaxFieldLength <= 0 {
		return fmt.Errorf("extraction.max_field_length must be > 0 (got %d)", c.Extraction.MaxFieldLength)
	}

	if c.Reports.MaxExportRows <= 0 {
		return fmt.Errorf("reports.max_export_rows must be > 0 (got %d)", c.Reports.MaxExportRows)
	}

	return nil
}
