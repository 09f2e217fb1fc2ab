package config

import (
	"fmt"
	"strings"
)

// WordPressConfig holds the location of the site under test and the
// credentials of its administrator account
type WordPressConfig struct {
	BaseURL       string
	AdminPath     string
	AdminUser     string
	AdminPassword string
}

// LoadWordPressConfig loads WordPress configuration from environment variables
func LoadWordPressConfig(getenv func(string) string) (*WordPressConfig, error) {
	config := &WordPressConfig{
		BaseURL:       strings.TrimRight(getenv("WP_BASE_URL"), "/"),
		AdminPath:     strings.Trim(getenv("WP_ADMIN_PATH"), "/"),
		AdminUser:     getenv("WP_ADMIN_USER"),
		AdminPassword: getenv("WP_ADMIN_PASSWORD"),
	}

	// Validate required fields
	if config.BaseURL == "" {
		return nil, fmt.Errorf("WP_BASE_URL is required")
	}
	if config.AdminUser == "" {
		return nil, fmt.Errorf("WP_ADMIN_USER is required")
	}
	if config.AdminPassword == "" {
		return nil, fmt.Errorf("WP_ADMIN_PASSWORD is required")
	}
	if config.AdminPath == "" {
		config.AdminPath = "wp-admin" // Default WordPress admin location
	}

	return config, nil
}

// URL joins a site-relative path onto the base URL
func (c *WordPressConfig) URL(path string) string {
	return c.BaseURL + "/" + strings.TrimLeft(path, "/")
}

// AdminURL returns the URL of a page under the admin area, e.g. "post-new.php"
func (c *WordPressConfig) AdminURL(page string) string {
	return c.URL(c.AdminPath + "/" + strings.TrimLeft(page, "/"))
}

// LoginURL returns the URL of the login form
func (c *WordPressConfig) LoginURL() string {
	return c.URL("wp-login.php")
}
