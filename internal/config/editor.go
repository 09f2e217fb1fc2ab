package config

import (
	"fmt"
	"time"
)

// Save strategies for the editor
const (
	// SaveStrategySettle waits a fixed duration after dispatching a save
	SaveStrategySettle = "settle"
	// SaveStrategyPoll polls the editor until it reports the save finished
	SaveStrategyPoll = "poll"
)

// EditorConfig controls how the editor steps wait for asynchronous saves
type EditorConfig struct {
	SaveStrategy string
	SaveWait     time.Duration
	PollInterval time.Duration
}

// LoadEditorConfig loads editor configuration from environment variables
func LoadEditorConfig(getenv func(string) string) (EditorConfig, error) {
	config := EditorConfig{
		SaveStrategy: getenv("WP_SAVE_STRATEGY"),
		SaveWait:     2 * time.Second,
		PollInterval: 250 * time.Millisecond,
	}

	if config.SaveStrategy == "" {
		config.SaveStrategy = SaveStrategySettle
	}
	if config.SaveStrategy != SaveStrategySettle && config.SaveStrategy != SaveStrategyPoll {
		return config, fmt.Errorf("unsupported WP_SAVE_STRATEGY %q", config.SaveStrategy)
	}

	if v := getenv("WP_SAVE_WAIT"); v != "" {
		d, err := parseSeconds(v)
		if err != nil {
			return config, fmt.Errorf("invalid WP_SAVE_WAIT: %w", err)
		}
		config.SaveWait = d
	}
	if v := getenv("WP_POLL_INTERVAL"); v != "" {
		d, err := parseSeconds(v)
		if err != nil {
			return config, fmt.Errorf("invalid WP_POLL_INTERVAL: %w", err)
		}
		config.PollInterval = d
	}

	if config.SaveStrategy == SaveStrategyPoll {
		if config.SaveWait <= 0 {
			return config, fmt.Errorf("WP_SAVE_WAIT must be positive with the %s strategy, got %v", SaveStrategyPoll, config.SaveWait)
		}
		if config.PollInterval <= 0 {
			return config, fmt.Errorf("WP_POLL_INTERVAL must be positive, got %v", config.PollInterval)
		}
	}

	return config, nil
}
