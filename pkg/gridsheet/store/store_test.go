package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

func openAll(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()
	sq, err := NewSQLite(filepath.Join(dir, "grid.db"))
	if err != nil {
		t.Fatalf("NewSQLite() error = %v", err)
	}
	js, err := NewJSONFile(filepath.Join(dir, "data"))
	if err != nil {
		t.Fatalf("NewJSONFile() error = %v", err)
	}
	stores := map[string]Store{
		DriverMemory:   NewMemory(),
		DriverSQLite:   sq,
		DriverJSONFile: js,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func sampleDocument(text string) *models.Document {
	return &models.Document{
		Rows:    models.Int(1),
		Columns: models.Int(2),
		Headers: []string{"1", "2"},
		Data:    [][]string{{text, ""}},
		Colors:  []models.ColorRecord{{Row: models.Int(0), Column: models.Int(0), Color: "#ff0000"}},
		Spans:   []models.SpanRecord{{Row: models.Int(0), Column: models.Int(0), RowSpan: models.Int(1), ColumnSpan: models.Int(2)}},
	}
}

func TestLoadMissingCollection(t *testing.T) {
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Load(context.Background(), "nothing")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Load() error = %v, expected ErrNotFound", err)
			}
		})
	}
}

func TestReplaceOverwrites(t *testing.T) {
	ctx := context.Background()
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Replace(ctx, "page", sampleDocument("first")); err != nil {
				t.Fatalf("Replace() error = %v", err)
			}
			if err := s.Replace(ctx, "page", sampleDocument("second")); err != nil {
				t.Fatalf("Replace() error = %v", err)
			}
			if err := s.Replace(ctx, "other", sampleDocument("other")); err != nil {
				t.Fatalf("Replace() error = %v", err)
			}

			doc, err := s.Load(ctx, "page")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := doc.Data[0][0]; got != "second" {
				t.Errorf("Data[0][0] = %q, expected %q", got, "second")
			}
			if doc.Rows == nil || *doc.Rows != 1 {
				t.Errorf("Rows = %v, expected 1", doc.Rows)
			}
			if len(doc.Colors) != 1 || doc.Colors[0].Color != "#ff0000" {
				t.Errorf("Colors = %+v, expected one red record", doc.Colors)
			}
			if len(doc.Spans) != 1 || *doc.Spans[0].ColumnSpan != 2 {
				t.Errorf("Spans = %+v, expected one 1x2 span", doc.Spans)
			}
		})
	}
}

func TestMemoryDoesNotShareDocuments(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	doc := sampleDocument("a")
	if err := m.Replace(ctx, "page", doc); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	doc.Data[0][0] = "mutated"

	got, err := m.Load(ctx, "page")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Data[0][0] != "a" {
		t.Errorf("Data[0][0] = %q, expected %q", got.Data[0][0], "a")
	}
}

func TestStoreErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var se *Error
	if err := NewMemory().Replace(ctx, "page", sampleDocument("a")); !errors.As(err, &se) {
		t.Errorf("Replace(cancelled) error = %v, expected *Error", err)
	} else if se.Op != "replace" || se.Collection != "page" {
		t.Errorf("Error = %+v, expected op replace on page", se)
	}

	js, err := NewJSONFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONFile() error = %v", err)
	}
	defer js.Close()
	if _, err := js.Load(context.Background(), "../escape"); !errors.As(err, &se) {
		t.Errorf("Load(../escape) error = %v, expected *Error", err)
	}
	if err := js.Replace(context.Background(), "page", nil); !errors.As(err, &se) {
		t.Errorf("Replace(nil) error = %v, expected *Error", err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		driver  string
		path    string
		wantErr error
	}{
		{DriverMemory, "", nil},
		{DriverSQLite, filepath.Join(dir, "x.db"), nil},
		{DriverJSONFile, filepath.Join(dir, "docs"), nil},
		{"mongo", "", ErrUnknownDriver},
	}
	for _, tt := range tests {
		s, err := Open(tt.driver, tt.path)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Open(%q) error = %v, expected %v", tt.driver, err, tt.wantErr)
			continue
		}
		if s != nil {
			s.Close()
		}
	}
}
