package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/themizzi/wpaccept/internal/config"
	"github.com/themizzi/wpaccept/internal/database"
)

// TablePrefix is the table prefix used by test databases
const TablePrefix = "wp_"

// TestDatabase represents an isolated test database
type TestDatabase struct {
	DB         *sql.DB
	Driver     string
	SchemaName string
	masterDB   *sql.DB
}

// SetupSQLiteDatabase creates a migrated in-memory SQLite database
func SetupSQLiteDatabase(t *testing.T) *TestDatabase {
	t.Helper()

	db, err := database.Open(context.Background(), &config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to open sqlite database: %v", err)
	}

	td := &TestDatabase{DB: db, Driver: config.DriverSQLite}
	if err := database.RunMigrations(context.Background(), db, config.DriverSQLite, TablePrefix); err != nil {
		td.Teardown(t)
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return td
}

// SetupPostgresDatabase creates an isolated schema in the PostgreSQL server named
// by the POSTGRES_* environment variables
func SetupPostgresDatabase(t *testing.T) *TestDatabase {
	t.Helper()

	masterConnStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnvOrDefault("POSTGRES_HOSTNAME", "localhost"),
		getEnvOrDefault("POSTGRES_USER", "postgres"),
		getEnvOrDefault("POSTGRES_PASSWORD", "postgres"),
		getEnvOrDefault("POSTGRES_DB", "postgres"))

	masterDB, err := sql.Open("postgres", masterConnStr)
	if err != nil {
		t.Fatalf("Failed to connect to master database: %v", err)
	}

	if err := masterDB.Ping(); err != nil {
		masterDB.Close()
		t.Fatalf("Failed to ping master database: %v", err)
	}

	// Generate unique schema name for this test
	schemaName := fmt.Sprintf("test_schema_%d_%d", time.Now().UnixNano(), rand.Intn(10000))

	if _, err = masterDB.Exec(fmt.Sprintf("CREATE SCHEMA %s", schemaName)); err != nil {
		masterDB.Close()
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Connect to the same database but set search_path to the test schema
	testDB, err := database.Open(context.Background(), &config.DatabaseConfig{
		Driver: config.DriverPostgres,
		DSN:    fmt.Sprintf("%s search_path=%s", masterConnStr, schemaName),
	})
	if err != nil {
		masterDB.Exec(fmt.Sprintf("DROP SCHEMA %s CASCADE", schemaName))
		masterDB.Close()
		t.Fatalf("Failed to connect to test schema: %v", err)
	}

	td := &TestDatabase{
		DB:         testDB,
		Driver:     config.DriverPostgres,
		SchemaName: schemaName,
		masterDB:   masterDB,
	}

	if err := database.RunMigrations(context.Background(), testDB, config.DriverPostgres, TablePrefix); err != nil {
		td.Teardown(t)
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return td
}

// Teardown closes the database and drops the test schema, if any
func (td *TestDatabase) Teardown(t *testing.T) {
	t.Helper()

	if td.DB != nil {
		td.DB.Close()
	}

	if td.masterDB != nil {
		if _, err := td.masterDB.Exec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", td.SchemaName)); err != nil {
			t.Errorf("Failed to drop test schema %s: %v", td.SchemaName, err)
		}
		td.masterDB.Close()
	}
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
