package config

import (
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// Supported fixture database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig holds configuration for the WordPress database used to insert fixtures
type DatabaseConfig struct {
	Driver      string
	DSN         string
	TablePrefix string
}

// LoadDatabaseConfig loads database configuration from environment variables.
//
// When WP_DB_DSN is empty and the driver is mysql, the DSN is assembled from the
// WORDPRESS_DB_* variables used by the official WordPress container image.
func LoadDatabaseConfig(getenv func(string) string) (*DatabaseConfig, error) {
	config := &DatabaseConfig{
		Driver:      getenv("WP_DB_DRIVER"),
		DSN:         getenv("WP_DB_DSN"),
		TablePrefix: getenv("WP_TABLE_PREFIX"),
	}

	if config.Driver == "" {
		config.Driver = DriverMySQL
	}
	if config.TablePrefix == "" {
		config.TablePrefix = "wp_"
	}

	switch config.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported WP_DB_DRIVER %q", config.Driver)
	}

	if config.DSN == "" && config.Driver == DriverMySQL {
		config.DSN = mysqlDSNFromImageEnv(getenv)
	}

	// Validate required fields
	if config.DSN == "" {
		return nil, fmt.Errorf("WP_DB_DSN is required")
	}

	return config, nil
}

func mysqlDSNFromImageEnv(getenv func(string) string) string {
	host := getenv("WORDPRESS_DB_HOST")
	name := getenv("WORDPRESS_DB_NAME")
	if host == "" || name == "" {
		return ""
	}

	cfg := mysql.NewConfig()
	cfg.User = getenv("WORDPRESS_DB_USER")
	cfg.Passwd = getenv("WORDPRESS_DB_PASSWORD")
	cfg.Net = "tcp"
	cfg.Addr = host
	cfg.DBName = name
	cfg.ParseTime = true
	return cfg.FormatDSN()
}
