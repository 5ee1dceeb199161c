package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be between 4 and 31 (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Media.MaxImageSize <= 0 {
		return fmt.Errorf("media.max_image_size must be > 0 (got %d)", c.Media.MaxImageSize)
	}

	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

func (c *CatalogConfig) validate() error {
	if c.MaxComponentsPerRecipe <= 0 {
		return fmt.Errorf("max_components_per_recipe must be > 0 (got %d)", c.MaxComponentsPerRecipe)
	}
	if c.MaxTagsPerRecipe <= 0 {
		return fmt.Errorf("max_tags_per_recipe must be > 0 (got %d)", c.MaxTagsPerRecipe)
	}
	if c.MaxNameLength <= 0 {
		return fmt.Errorf("max_name_length must be > 0 (got %d)", c.MaxNameLength)
	}
	if c.MaxDescriptionLength <= 0 {
		return fmt.Errorf("max_description_length must be > 0 (got %d)", c.MaxDescriptionLength)
	}
	return nil
}
