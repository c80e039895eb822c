package gridsheet

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/parser"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/store"
)

func TestImportXLSX(t *testing.T) {
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "name")
	f.SetCellValue("Sheet1", "B2", 7)
	path := filepath.Join(t.TempDir(), "in.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f.Close()

	st := store.NewMemory()
	logger, _ := test.NewNullLogger()
	opts := DefaultOptions()
	opts.Logger = logger
	if err := ImportXLSX(context.Background(), st, path, "imported", parser.ReadOptions{}, opts); err != nil {
		t.Fatalf("ImportXLSX() error = %v", err)
	}

	p := openOrFail(t, st, "imported", true)
	if p.Grid.RowCount() != 2 || p.Grid.ColumnCount() != 2 {
		t.Errorf("grid = %dx%d, expected 2x2", p.Grid.RowCount(), p.Grid.ColumnCount())
	}
	if p.Grid.Text(0, 0) != "name" || p.Grid.Text(1, 1) != "7" {
		t.Errorf("texts = %q %q", p.Grid.Text(0, 0), p.Grid.Text(1, 1))
	}

	err := ImportXLSX(context.Background(), st, filepath.Join(t.TempDir(), "missing.xlsx"), "x", parser.ReadOptions{}, opts)
	var pe *PageError
	if !errors.As(err, &pe) || pe.Op != "import" {
		t.Errorf("ImportXLSX(missing) error = %v, expected an import PageError", err)
	}
}
