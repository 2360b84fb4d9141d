// Package config loads the client settings. Precedence, lowest to
// highest: built-in defaults, an optional YAML config file, then
// environment variables (optionally sourced from a .env file).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the production API the dashboard talks to.
const DefaultBaseURL = "https://zenedu.everestwc.com"

// Config holds every setting the client needs.
type Config struct {
	API     APIConfig
	Session SessionConfig
	Log     LogConfig
}

// APIConfig locates the remote job-board API.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig locates the durable session record.
type SessionConfig struct {
	FilePath string
}

// LogConfig selects the logger's level and output format.
type LogConfig struct {
	Level  string
	Format string
}

// fileConfig is the YAML shape of the optional config file.
type fileConfig struct {
	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`
	Session struct {
		File string `yaml:"file"`
	} `yaml:"session"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Load reads settings. envFile points at a .env file (missing is fine);
// configFile points at a YAML file ("" skips the overlay).
func Load(envFile, configFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			// Absent .env is fine; the client can run on environment
			// variables alone.
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load .env file: %w", err)
			}
		}
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: 30 * time.Second,
		},
		Session: SessionConfig{
			FilePath: defaultSessionPath(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}

	if configFile != "" {
		if err := applyFile(cfg, configFile); err != nil {
			return nil, err
		}
	}

	cfg.API.BaseURL = getEnv("ZENADMIN_API_BASE_URL", cfg.API.BaseURL)
	if seconds := getEnvAsInt("ZENADMIN_API_TIMEOUT_SECONDS", 0); seconds > 0 {
		cfg.API.Timeout = time.Duration(seconds) * time.Second
	}
	cfg.Session.FilePath = getEnv("ZENADMIN_SESSION_FILE", cfg.Session.FilePath)
	cfg.Log.Level = getEnv("ZENADMIN_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("ZENADMIN_LOG_FORMAT", cfg.Log.Format)

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if file.API.BaseURL != "" {
		cfg.API.BaseURL = file.API.BaseURL
	}
	if file.API.TimeoutSeconds > 0 {
		cfg.API.Timeout = time.Duration(file.API.TimeoutSeconds) * time.Second
	}
	if file.Session.File != "" {
		cfg.Session.FilePath = file.Session.File
	}
	if file.Log.Level != "" {
		cfg.Log.Level = file.Log.Level
	}
	if file.Log.Format != "" {
		cfg.Log.Format = file.Log.Format
	}

	return nil
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zenadmin/session.json"
	}
	return filepath.Join(home, ".zenadmin", "session.json")
}

// getEnv returns the environment variable or the fallback when unset.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses the environment variable as an integer, falling
// back on any parse failure.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
