package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// No config.yaml in an empty working directory or home
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "addressbook.json", cfg.Book.File)
	assert.Equal(t, "", cfg.Book.Format)
	assert.Equal(t, 7, cfg.Birthdays.WindowDays)
	assert.Equal(t, "", cfg.Log.File)
	assert.Equal(t, zapcore.WarnLevel, cfg.Log.GetLevel())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
book:
  file: contacts.yaml
  format: yaml
birthdays:
  window_days: 14
log:
  file: logs/contact-book.log
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "contacts.yaml", cfg.Book.File)
	assert.Equal(t, "yaml", cfg.Book.Format)
	assert.Equal(t, 14, cfg.Birthdays.WindowDays)
	assert.Equal(t, "logs/contact-book.log", cfg.Log.File)
	assert.Equal(t, zapcore.DebugLevel, cfg.Log.GetLevel())
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "birthdays:\n  window_days: 14\n")
	t.Setenv("CONTACT_BOOK_BIRTHDAYS_WINDOW_DAYS", "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Birthdays.WindowDays)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Book:      BookConfig{File: "addressbook.json"},
			Birthdays: BirthdaysConfig{WindowDays: 7},
			Log:       LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing file", func(c *Config) { c.Book.File = "" }, true},
		{"unknown format", func(c *Config) { c.Book.Format = "xml" }, true},
		{"zero window", func(c *Config) { c.Birthdays.WindowDays = 0 }, true},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
