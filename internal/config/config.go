package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config represents application configuration
type Config struct {
	Book      BookConfig      `mapstructure:"book"`
	Birthdays BirthdaysConfig `mapstructure:"birthdays"`
	Log       LogConfig       `mapstructure:"log"`
}

// BookConfig represents address book storage configuration
type BookConfig struct {
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"` // "json", "yaml" or empty to pick by extension
}

// BirthdaysConfig represents upcoming birthdays settings
type BirthdaysConfig struct {
	WindowDays int `mapstructure:"window_days"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty logs to stderr
	Level string `mapstructure:"level"`
}

// Load loads configuration from file and environment.
// Without an explicit path a missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("book.file", "addressbook.json")
	v.SetDefault("book.format", "")
	v.SetDefault("birthdays.window_days", 7)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "warn")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.contact-book")
		v.AddConfigPath("/etc/contact-book")
	}

	// CONTACT_BOOK_BOOK_FILE, CONTACT_BOOK_LOG_LEVEL, ...
	v.SetEnvPrefix("contact_book")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Book.File == "" {
		return fmt.Errorf("book.file is required")
	}

	switch strings.ToLower(c.Book.Format) {
	case "", "json", "yaml":
	default:
		return fmt.Errorf("book.format must be 'json' or 'yaml', got '%s'", c.Book.Format)
	}

	if c.Birthdays.WindowDays < 1 {
		return fmt.Errorf("birthdays.window_days must be positive")
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// GetLevel returns the parsed log level. Default: warn
func (c *LogConfig) GetLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.WarnLevel
	}
	return level
}
