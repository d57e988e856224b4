package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if strings.TrimSpace(c.Auth.JWTIssuer) == "" {
		return fmt.Errorf("auth.jwt_issuer is required")
	}

	if c.Database.QueryTimeout < 0 {
		return fmt.Errorf("database.query_timeout must be >= 0 (got %v)", c.Database.QueryTimeout)
	}

	if c.RateLimit.SearchPerMinute <= 0 {
		return fmt.Errorf("rate_limit.search_per_minute must be > 0 (got %d)", c.RateLimit.SearchPerMinute)
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if err := c.Feed.validate(); err != nil {
		return fmt.Errorf("feed: %w", err)
	}

	if err := validatePaging(c.Social.DefaultPageSize, c.Social.MaxPageSize); err != nil {
		return fmt.Errorf("social: %w", err)
	}

	return nil
}

func (s *SearchConfig) validate() error {
	if s.DefaultRadiusKm <= 0 {
		return fmt.Errorf("default_radius_km must be > 0 (got %v)", s.DefaultRadiusKm)
	}
	if s.NearbyRadiusKm <= 0 {
		return fmt.Errorf("nearby_radius_km must be > 0 (got %v)", s.NearbyRadiusKm)
	}
	if s.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", s.MaxPageSize)
	}
	if s.DefaultPageSize <= 0 || s.DefaultPageSize > s.MaxPageSize {
		return fmt.Errorf("default_page_size must be in [1, %d] (got %d)", s.MaxPageSize, s.DefaultPageSize)
	}
	if s.NearbyLimit <= 0 || s.NearbyLimit > s.MaxPageSize {
		return fmt.Errorf("nearby_limit must be in [1, %d] (got %d)", s.MaxPageSize, s.NearbyLimit)
	}
	if s.ReviewsPageSize <= 0 || s.ReviewsPageSize > s.MaxPageSize {
		return fmt.Errorf("reviews_page_size must be in [1, %d] (got %d)", s.MaxPageSize, s.ReviewsPageSize)
	}
	return nil
}

func (f *FeedConfig) validate() error {
	return validatePaging(f.DefaultPageSize, f.MaxPageSize)
}

func validatePaging(defaultSize, maxSize int) error {
	if maxSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", maxSize)
	}
	if defaultSize <= 0 || defaultSize > maxSize {
		return fmt.Errorf("default_page_size must be in [1, %d] (got %d)", maxSize, defaultSize)
	}
	return nil
}
