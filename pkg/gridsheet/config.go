package gridsheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/auth"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/codec"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/store"
)

// FileConfig is the YAML configuration file.
//
//	grid:
//	  rows: 10
//	  columns: 11
//	store:
//	  driver: sqlite
//	  path: gridsheet.db
//	log_level: info
//	users:
//	  - name: admin
//	    password_hash: $2a$10$...
//	    admin: true
type FileConfig struct {
	Grid  models.Config `yaml:"grid"`
	Store StoreConfig   `yaml:"store"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
	// SizeMissingDataFromDocument sizes documents without a data matrix
	// from their rows and columns instead of the blank grid.
	SizeMissingDataFromDocument bool `yaml:"size_missing_data_from_document"`
	// Users replaces the built-in accounts when not empty.
	Users []auth.User `yaml:"users"`
}

// StoreConfig selects the document store.
type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// DefaultFileConfig returns the configuration used when no file exists.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Grid:     models.DefaultConfig(),
		Store:    StoreConfig{Driver: store.DriverSQLite, Path: "gridsheet.db"},
		LogLevel: "info",
	}
}

// LoadConfigFile reads path over the defaults. A missing file yields the
// defaults.
func LoadConfigFile(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Grid.DefaultRows < 0 || cfg.Grid.DefaultColumns < 0 ||
		cfg.Grid.DefaultRows > codec.MaxRows || cfg.Grid.DefaultColumns > codec.MaxColumns {
		return cfg, fmt.Errorf("parse %s: grid size %dx%d out of range", path, cfg.Grid.DefaultRows, cfg.Grid.DefaultColumns)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Options returns page options for cfg logging to logger.
func (c FileConfig) Options(logger *logrus.Logger) Options {
	return Options{
		Grid:   c.Grid,
		Decode: codec.DecodeOptions{SizeMissingDataFromDocument: c.SizeMissingDataFromDocument},
		Logger: logger,
	}
}
