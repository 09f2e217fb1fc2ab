package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestLoadWordPressConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
		want    WordPressConfig
	}{
		{
			name: "all fields set",
			env: map[string]string{
				"WP_BASE_URL":       "http://localhost:8888/",
				"WP_ADMIN_USER":     "admin",
				"WP_ADMIN_PASSWORD": "password",
				"WP_ADMIN_PATH":     "/admin/",
			},
			want: WordPressConfig{
				BaseURL:       "http://localhost:8888",
				AdminPath:     "admin",
				AdminUser:     "admin",
				AdminPassword: "password",
			},
		},
		{
			name: "admin path defaults to wp-admin",
			env: map[string]string{
				"WP_BASE_URL":       "http://localhost:8888",
				"WP_ADMIN_USER":     "admin",
				"WP_ADMIN_PASSWORD": "password",
			},
			want: WordPressConfig{
				BaseURL:       "http://localhost:8888",
				AdminPath:     "wp-admin",
				AdminUser:     "admin",
				AdminPassword: "password",
			},
		},
		{
			name:    "missing base url",
			env:     map[string]string{"WP_ADMIN_USER": "admin", "WP_ADMIN_PASSWORD": "password"},
			wantErr: "WP_BASE_URL is required",
		},
		{
			name:    "missing password",
			env:     map[string]string{"WP_BASE_URL": "http://wp", "WP_ADMIN_USER": "admin"},
			wantErr: "WP_ADMIN_PASSWORD is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadWordPressConfig(envMap(tt.env))
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("expected error %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, *got)
			}
		})
	}
}

func TestWordPressConfig_URLs(t *testing.T) {
	c := &WordPressConfig{BaseURL: "http://wp.test", AdminPath: "wp-admin"}

	if got := c.URL("/index.php?p=7"); got != "http://wp.test/index.php?p=7" {
		t.Errorf("unexpected URL: %s", got)
	}
	if got := c.AdminURL("post-new.php"); got != "http://wp.test/wp-admin/post-new.php" {
		t.Errorf("unexpected admin URL: %s", got)
	}
	if got := c.LoginURL(); got != "http://wp.test/wp-login.php" {
		t.Errorf("unexpected login URL: %s", got)
	}
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Run("defaults to mysql with wp_ prefix", func(t *testing.T) {
		got, err := LoadDatabaseConfig(envMap(map[string]string{"WP_DB_DSN": "root:root@tcp(db)/wordpress"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Driver != DriverMySQL || got.TablePrefix != "wp_" {
			t.Errorf("unexpected defaults: %+v", got)
		}
	})

	t.Run("mysql dsn from image env", func(t *testing.T) {
		got, err := LoadDatabaseConfig(envMap(map[string]string{
			"WORDPRESS_DB_HOST":     "db:3306",
			"WORDPRESS_DB_USER":     "wp",
			"WORDPRESS_DB_PASSWORD": "secret",
			"WORDPRESS_DB_NAME":     "wordpress",
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(got.DSN, "wp:secret@tcp(db:3306)/wordpress") {
			t.Errorf("unexpected DSN: %s", got.DSN)
		}
	})

	t.Run("unsupported driver", func(t *testing.T) {
		_, err := LoadDatabaseConfig(envMap(map[string]string{"WP_DB_DRIVER": "oracle", "WP_DB_DSN": "x"}))
		if err == nil {
			t.Fatal("expected error for unsupported driver")
		}
	})

	t.Run("missing dsn", func(t *testing.T) {
		_, err := LoadDatabaseConfig(envMap(map[string]string{"WP_DB_DRIVER": DriverSQLite}))
		if err == nil || err.Error() != "WP_DB_DSN is required" {
			t.Fatalf("expected missing DSN error, got %v", err)
		}
	})
}

func TestLoadEditorConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantWait     time.Duration
		wantStrategy string
		wantErr      bool
	}{
		{name: "default two seconds", env: map[string]string{}, wantWait: 2 * time.Second},
		{name: "plain seconds", env: map[string]string{"WP_SAVE_WAIT": "3"}, wantWait: 3 * time.Second},
		{name: "go duration", env: map[string]string{"WP_SAVE_WAIT": "1500ms"}, wantWait: 1500 * time.Millisecond},
		{name: "invalid wait", env: map[string]string{"WP_SAVE_WAIT": "soon"}, wantErr: true},
		{name: "invalid strategy", env: map[string]string{"WP_SAVE_STRATEGY": "hope"}, wantErr: true},
		{name: "NaN wait", env: map[string]string{"WP_SAVE_WAIT": "NaN"}, wantErr: true},
		{name: "infinite wait", env: map[string]string{"WP_SAVE_WAIT": "+Inf"}, wantErr: true},
		{
			name:         "poll with wait",
			env:          map[string]string{"WP_SAVE_STRATEGY": "poll", "WP_SAVE_WAIT": "5"},
			wantWait:     5 * time.Second,
			wantStrategy: SaveStrategyPoll,
		},
		{name: "poll with zero wait", env: map[string]string{"WP_SAVE_STRATEGY": "poll", "WP_SAVE_WAIT": "0"}, wantErr: true},
		{name: "poll with negative wait", env: map[string]string{"WP_SAVE_STRATEGY": "poll", "WP_SAVE_WAIT": "-1s"}, wantErr: true},
		{name: "poll with zero interval", env: map[string]string{"WP_SAVE_STRATEGY": "poll", "WP_POLL_INTERVAL": "0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadEditorConfig(envMap(tt.env))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.SaveWait != tt.wantWait {
				t.Errorf("expected wait %v, got %v", tt.wantWait, got.SaveWait)
			}
			wantStrategy := tt.wantStrategy
			if wantStrategy == "" {
				wantStrategy = SaveStrategySettle
			}
			if got.SaveStrategy != wantStrategy {
				t.Errorf("expected %s strategy, got %s", wantStrategy, got.SaveStrategy)
			}
		})
	}
}

func TestLoadBrowserConfig(t *testing.T) {
	got, err := LoadBrowserConfig(envMap(map[string]string{"HEADLESS": "false", "BROWSER_TIMEOUT": "5s"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Headless {
		t.Error("expected headful browser")
	}
	if got.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", got.Timeout)
	}
	if Milliseconds(got.Timeout) != 5000 {
		t.Errorf("expected 5000ms, got %v", Milliseconds(got.Timeout))
	}
}

func TestParseSeconds_RejectsNonFinite(t *testing.T) {
	for _, v := range []string{"NaN", "nan", "Inf", "-Inf", "infinity"} {
		if d, err := parseSeconds(v); err == nil {
			t.Errorf("parseSeconds(%q): expected error, got %v", v, d)
		}
	}

	d, err := parseSeconds("0.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %v", d)
	}
}

func TestLoadSuiteConfig_FileFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wpaccept.yaml")
	content := `
wordpress:
  base_url: http://from-file
  admin_user: file-admin
  admin_password: file-pass
database:
  driver: sqlite
  dsn: file::memory:
browser:
  headless: false
editor:
  save_wait: "1"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write suite file: %v", err)
	}

	// Environment wins over the file
	cfg, err := LoadSuiteConfig(path, envMap(map[string]string{"WP_BASE_URL": "http://from-env"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.WordPress.BaseURL != "http://from-env" {
		t.Errorf("expected env base url, got %s", cfg.WordPress.BaseURL)
	}
	if cfg.WordPress.AdminUser != "file-admin" {
		t.Errorf("expected file admin user, got %s", cfg.WordPress.AdminUser)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	if cfg.Browser.Headless {
		t.Error("expected headless false from file")
	}
	if cfg.Editor.SaveWait != time.Second {
		t.Errorf("expected 1s save wait, got %v", cfg.Editor.SaveWait)
	}
}

func TestLoadSuiteConfig_MissingFileIsIgnored(t *testing.T) {
	env := map[string]string{
		"WP_BASE_URL":       "http://wp",
		"WP_ADMIN_USER":     "admin",
		"WP_ADMIN_PASSWORD": "password",
		"WP_DB_DSN":         "root@tcp(db)/wp",
	}
	if _, err := LoadSuiteConfig(filepath.Join(t.TempDir(), "absent.yaml"), envMap(env)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadSuiteConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("wordpress: [unterminated"), 0o600); err != nil {
		t.Fatalf("failed to write suite file: %v", err)
	}
	if _, err := LoadSuiteConfig(path, envMap(nil)); err == nil {
		t.Fatal("expected parse error")
	}
}
