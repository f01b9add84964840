// Package storage persists an address book as a single snapshot file.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/username/contact-book/internal/addressbook"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Format is the on-disk encoding of a snapshot
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat validates a configured format name. Empty means "pick by extension".
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case "", FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown storage format %q", name)
	}
}

// Store loads and saves whole address books
type Store interface {
	Load() (*addressbook.AddressBook, error)
	Save(book *addressbook.AddressBook) error
}

// FileStore keeps the address book in one JSON or YAML file
type FileStore struct {
	path   string
	format Format
	opts   []addressbook.Option
	logger *zap.Logger
}

// NewFileStore creates a store for path. An empty format is derived from the file extension.
// opts are applied to every loaded address book.
func NewFileStore(path string, format Format, logger *zap.Logger, opts ...addressbook.Option) *FileStore {
	if format == "" {
		format = FormatFromPath(path)
	}
	return &FileStore{
		path:   path,
		format: format,
		opts:   opts,
		logger: logger,
	}
}

// Load reads the snapshot. A missing file yields an empty address book.
func (fs *FileStore) Load() (*addressbook.AddressBook, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			fs.logger.Info("Address book file not found, starting empty",
				zap.String("file", fs.path))
			return addressbook.New(fs.opts...), nil
		}
		return nil, fmt.Errorf("failed to read address book: %w", err)
	}

	var snapshot addressbook.Snapshot
	if err := fs.unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse address book %s: %w", fs.path, err)
	}

	book, err := addressbook.FromSnapshot(snapshot, fs.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to restore address book %s: %w", fs.path, err)
	}

	fs.logger.Info("Address book loaded",
		zap.String("file", fs.path),
		zap.Int("contacts", book.Len()))

	return book, nil
}

// Save writes the snapshot to a temporary file and renames it over the old one
func (fs *FileStore) Save(book *addressbook.AddressBook) error {
	data, err := fs.marshal(book.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to marshal address book: %w", err)
	}

	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create address book dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(fs.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write address book: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write address book: %w", err)
	}
	if err := os.Rename(tmp.Name(), fs.path); err != nil {
		return fmt.Errorf("failed to replace address book: %w", err)
	}

	fs.logger.Info("Address book saved",
		zap.String("file", fs.path),
		zap.Int("contacts", book.Len()))

	return nil
}

func (fs *FileStore) marshal(s addressbook.Snapshot) ([]byte, error) {
	if fs.format == FormatYAML {
		return yaml.Marshal(s)
	}
	return json.MarshalIndent(s, "", "  ")
}

func (fs *FileStore) unmarshal(data []byte, s *addressbook.Snapshot) error {
	if fs.format == FormatYAML {
		return yaml.Unmarshal(data, s)
	}
	return json.Unmarshal(data, s)
}
