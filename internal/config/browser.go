package config

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// BrowserConfig holds browser-specific configuration
type BrowserConfig struct {
	Headless bool
	SlowMo   time.Duration
	Timeout  time.Duration
}

// LoadBrowserConfig loads browser configuration from environment variables
func LoadBrowserConfig(getenv func(string) string) (BrowserConfig, error) {
	config := BrowserConfig{
		Headless: getenv("HEADLESS") != "false",
		Timeout:  30 * time.Second, // Default playwright action timeout
	}

	if v := getenv("BROWSER_SLOW_MO"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return config, fmt.Errorf("invalid BROWSER_SLOW_MO: %w", err)
		}
		config.SlowMo = d
	}
	if v := getenv("BROWSER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return config, fmt.Errorf("invalid BROWSER_TIMEOUT: %w", err)
		}
		config.Timeout = d
	}

	return config, nil
}

// Milliseconds converts a duration to the float milliseconds playwright options expect
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// parseSeconds accepts either a Go duration ("1500ms") or a plain number of seconds ("2")
func parseSeconds(v string) (time.Duration, error) {
	if secs, err := strconv.ParseFloat(v, 64); err == nil {
		if math.IsNaN(secs) || math.IsInf(secs, 0) {
			return 0, fmt.Errorf("%q is not a finite number of seconds", v)
		}
		return time.Duration(secs * float64(time.Second)), nil
	}
	return time.ParseDuration(v)
}
