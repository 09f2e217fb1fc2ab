package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// SuiteConfig is the complete configuration of an acceptance run
type SuiteConfig struct {
	WordPress *WordPressConfig
	Database  *DatabaseConfig
	Browser   BrowserConfig
	Editor    EditorConfig
}

// suiteFile is the on-disk YAML layout; every field maps onto an environment variable
type suiteFile struct {
	WordPress struct {
		BaseURL       string `yaml:"base_url"`
		AdminPath     string `yaml:"admin_path"`
		AdminUser     string `yaml:"admin_user"`
		AdminPassword string `yaml:"admin_password"`
	} `yaml:"wordpress"`
	Database struct {
		Driver      string `yaml:"driver"`
		DSN         string `yaml:"dsn"`
		TablePrefix string `yaml:"table_prefix"`
	} `yaml:"database"`
	Browser struct {
		Headless *bool  `yaml:"headless"`
		SlowMo   string `yaml:"slow_mo"`
		Timeout  string `yaml:"timeout"`
	} `yaml:"browser"`
	Editor struct {
		SaveStrategy string `yaml:"save_strategy"`
		SaveWait     string `yaml:"save_wait"`
		PollInterval string `yaml:"poll_interval"`
	} `yaml:"editor"`
}

func (f suiteFile) values() map[string]string {
	values := map[string]string{
		"WP_BASE_URL":       f.WordPress.BaseURL,
		"WP_ADMIN_PATH":     f.WordPress.AdminPath,
		"WP_ADMIN_USER":     f.WordPress.AdminUser,
		"WP_ADMIN_PASSWORD": f.WordPress.AdminPassword,
		"WP_DB_DRIVER":      f.Database.Driver,
		"WP_DB_DSN":         f.Database.DSN,
		"WP_TABLE_PREFIX":   f.Database.TablePrefix,
		"BROWSER_SLOW_MO":   f.Browser.SlowMo,
		"BROWSER_TIMEOUT":   f.Browser.Timeout,
		"WP_SAVE_STRATEGY":  f.Editor.SaveStrategy,
		"WP_SAVE_WAIT":      f.Editor.SaveWait,
		"WP_POLL_INTERVAL":  f.Editor.PollInterval,
	}
	if f.Browser.Headless != nil {
		values["HEADLESS"] = fmt.Sprintf("%t", *f.Browser.Headless)
	}
	return values
}

// LoadSuiteConfig loads the suite configuration. Values from the optional YAML
// file at path are used only where the environment leaves a key unset.
func LoadSuiteConfig(path string, getenv func(string) string) (*SuiteConfig, error) {
	if path != "" {
		fileValues, err := readSuiteFile(path)
		if err != nil {
			return nil, err
		}
		getenv = withFallback(getenv, fileValues)
	}

	wp, err := LoadWordPressConfig(getenv)
	if err != nil {
		return nil, err
	}
	db, err := LoadDatabaseConfig(getenv)
	if err != nil {
		return nil, err
	}
	browser, err := LoadBrowserConfig(getenv)
	if err != nil {
		return nil, err
	}
	editor, err := LoadEditorConfig(getenv)
	if err != nil {
		return nil, err
	}

	return &SuiteConfig{
		WordPress: wp,
		Database:  db,
		Browser:   browser,
		Editor:    editor,
	}, nil
}

// readSuiteFile returns nil values without error when the file does not exist
func readSuiteFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read suite config: %w", err)
	}

	var f suiteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse suite config %s: %w", path, err)
	}
	return f.values(), nil
}

func withFallback(getenv func(string) string, fallback map[string]string) func(string) string {
	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback[key]
	}
}
