package gridsheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/store"
)

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}
	if cfg.Grid.DefaultRows != 10 || cfg.Store.Driver != store.DriverSQLite || cfg.LogLevel != "info" {
		t.Errorf("LoadConfigFile(missing) = %+v, expected defaults", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridsheet.yaml")
	data := `
grid:
  rows: 4
  columns: 2
  headers: [name, qty]
store:
  driver: jsonfile
  path: data
log_level: debug
size_missing_data_from_document: true
users:
  - name: alice
    password_hash: x
    admin: true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}
	if cfg.Grid.DefaultRows != 4 || cfg.Grid.DefaultColumns != 2 || cfg.Grid.Headers(2)[1] != "qty" {
		t.Errorf("Grid = %+v", cfg.Grid)
	}
	if cfg.Store.Driver != store.DriverJSONFile || cfg.Store.Path != "data" {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if len(cfg.Users) != 1 || !cfg.Users[0].Admin || cfg.Users[0].Name != "alice" {
		t.Errorf("Users = %+v", cfg.Users)
	}
	if opts := cfg.Options(nil); !opts.Decode.SizeMissingDataFromDocument || opts.Grid.DefaultRows != 4 {
		t.Errorf("Options() = %+v", opts)
	}
}

func TestLoadConfigFileInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "grid: [\n"},
		{"level", "log_level: loud\n"},
		{"size", "grid:\n  rows: -1\n"},
		{"too wide", "grid:\n  columns: 100000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfigFile(path); err == nil {
				t.Errorf("LoadConfigFile(%q) expected error", tt.data)
			}
		})
	}
}
