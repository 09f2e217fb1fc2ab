package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/themizzi/wpaccept/internal/config"
)

// RunMigrations creates a minimal posts table for self-contained fixture
// databases. A MySQL database is assumed to be a real WordPress install and is
// left untouched.
func RunMigrations(ctx context.Context, db *sql.DB, driver, tablePrefix string) error {
	if db == nil {
		return fmt.Errorf("database connection not initialized")
	}

	var idColumn string
	switch driver {
	case config.DriverMySQL:
		return nil
	case config.DriverPostgres:
		idColumn = "ID BIGSERIAL PRIMARY KEY"
	case config.DriverSQLite:
		idColumn = "ID INTEGER PRIMARY KEY AUTOINCREMENT"
	default:
		return fmt.Errorf("unsupported driver %q", driver)
	}

	table := tablePrefix + "posts"
	createPostsTable := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %[1]s (
		%[2]s,
		post_author BIGINT NOT NULL DEFAULT 0,
		post_date TIMESTAMP NOT NULL,
		post_date_gmt TIMESTAMP NOT NULL,
		post_content TEXT NOT NULL,
		post_title TEXT NOT NULL,
		post_excerpt TEXT NOT NULL DEFAULT '',
		post_status VARCHAR(20) NOT NULL DEFAULT 'publish',
		post_name VARCHAR(200) NOT NULL DEFAULT '',
		post_type VARCHAR(20) NOT NULL DEFAULT 'post',
		post_modified TIMESTAMP NOT NULL,
		post_modified_gmt TIMESTAMP NOT NULL,
		to_ping TEXT NOT NULL DEFAULT '',
		pinged TEXT NOT NULL DEFAULT '',
		post_content_filtered TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_%[1]s_type_status ON %[1]s(post_type, post_status);
	`, table, idColumn)

	if _, err := db.ExecContext(ctx, createPostsTable); err != nil {
		return fmt.Errorf("failed to create %s table: %w", table, err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
