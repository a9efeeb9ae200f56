// Package config loads archivist configuration from a YAML file, merged
// with environment variables and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AI struct {
		EmbeddingHost   string `yaml:"embedding_host"`
		SummarizerHost  string `yaml:"summarizer_host"`
		EmbeddingModel  string `yaml:"embedding_model"`
		SummarizerModel string `yaml:"summarizer_model"`
	} `yaml:"ai"`

	Storage struct {
		Path string `yaml:"path"`
	} `yaml:"storage"`

	Feed struct {
		ArchiveURL   string  `yaml:"archive_url"`
		ItemSelector string  `yaml:"item_selector"`
		DateAttr     string  `yaml:"date_attr"`
		RateLimit    float64 `yaml:"rate_limit"`
	} `yaml:"feed"`

	Pipeline struct {
		PoolSize      int     `yaml:"pool_size"`
		MaxAttempts   int     `yaml:"max_attempts"`
		FetchRate     float64 `yaml:"fetch_rate"`
		WindowSeconds int     `yaml:"window_seconds"`
		MaxChars      int     `yaml:"max_chars"`
	} `yaml:"pipeline"`
}

func LoadConfig(path string) (*Config, error) {
	// If no path provided, try default locations
	if path == "" {
		locations := []string{
			"archivist.yaml",
			"archivist.yml",
			filepath.Join(os.Getenv("HOME"), ".config/archivist/config.yaml"),
			"/etc/archivist/config.yaml",
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path == "" {
		return getDefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	// Merge with environment variables
	mergeWithEnv(&config)

	// Apply defaults for unset values
	applyDefaults(&config)

	return &config, nil
}

func getDefaultConfig() (*Config, error) {
	config := &Config{}
	mergeWithEnv(config)
	applyDefaults(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.AI.EmbeddingHost == "" {
		config.AI.EmbeddingHost = "http://localhost:11434/v1"
	}
	if config.AI.SummarizerHost == "" {
		config.AI.SummarizerHost = config.AI.EmbeddingHost
	}
	if config.AI.EmbeddingModel == "" {
		config.AI.EmbeddingModel = "embeddinggemma"
	}
	if config.AI.SummarizerModel == "" {
		config.AI.SummarizerModel = "qwen2.5:3b"
	}

	if config.Storage.Path == "" {
		config.Storage.Path = filepath.Join(os.Getenv("HOME"), ".local/share/archivist")
	}

	if config.Feed.ItemSelector == "" {
		config.Feed.ItemSelector = "a.meeting-item"
	}
	if config.Feed.DateAttr == "" {
		config.Feed.DateAttr = "data-date"
	}
	if config.Feed.RateLimit == 0 {
		config.Feed.RateLimit = 2.0
	}

	if config.Pipeline.MaxAttempts == 0 {
		config.Pipeline.MaxAttempts = 3
	}
	if config.Pipeline.FetchRate == 0 {
		config.Pipeline.FetchRate = 1.0
	}
}

func mergeWithEnv(config *Config) {
	if host := os.Getenv("ARCHIVIST_AI_HOST"); host != "" {
		config.AI.EmbeddingHost = host
		config.AI.SummarizerHost = host
	}
	if path := os.Getenv("ARCHIVIST_STORAGE_PATH"); path != "" {
		config.Storage.Path = path
	}
	if url := os.Getenv("ARCHIVIST_ARCHIVE_URL"); url != "" {
		config.Feed.ArchiveURL = url
	}
}
