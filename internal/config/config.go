package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Content sources.
const (
	SourceYAML     = "yaml"
	SourceDatabase = "database"
)

// Server holds all configuration for the wizards world runner.
type Server struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Content
	Content ContentConfig `yaml:"content"`

	// Database (used when content.source is "database")
	Database DatabaseConfig `yaml:"database"`

	// Effect expiry
	TickInterval time.Duration `yaml:"tick_interval"`
	RunFor       time.Duration `yaml:"run_for"` // 0 = until every timed effect expires
}

// ContentConfig points at effect and creature content.
type ContentConfig struct {
	Source        string `yaml:"source"` // yaml or database
	EffectsFile   string `yaml:"effects_file"`
	CreaturesFile string `yaml:"creatures_file"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultServer returns Server config with sensible defaults.
func DefaultServer() Server {
	return Server{
		LogLevel: "info",
		Content: ContentConfig{
			Source:        SourceYAML,
			EffectsFile:   "config/effects.yaml",
			CreaturesFile: "config/creatures.yaml",
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "wizards",
			Password: "wizards",
			DBName:   "wizards",
			SSLMode:  "disable",
		},
		TickInterval: 100 * time.Millisecond,
	}
}

// Validate checks values that defaults cannot repair.
func (s Server) Validate() error {
	switch s.Content.Source {
	case SourceYAML, SourceDatabase:
	default:
		return fmt.Errorf("unknown content source %q", s.Content.Source)
	}
	if s.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", s.TickInterval)
	}
	if s.RunFor < 0 {
		return fmt.Errorf("run_for must not be negative, got %s", s.RunFor)
	}
	return nil
}

// LoadServer loads server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
