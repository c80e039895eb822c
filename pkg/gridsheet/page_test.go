package gridsheet

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/store"
)

var errDown = errors.New("connection refused")

type brokenStore struct{}

func (brokenStore) Load(context.Context, string) (*models.Document, error) {
	return nil, errDown
}

func (brokenStore) Replace(context.Context, string, *models.Document) error {
	return errDown
}

func (brokenStore) Close() error { return nil }

func fruitStore(t *testing.T) store.Store {
	t.Helper()
	st := store.NewMemory()
	doc := &models.Document{
		Rows:    models.Int(3),
		Columns: models.Int(2),
		Headers: []string{"fruit", "qty"},
		Data:    [][]string{{"b", "2"}, {"a", "1"}, {"b", "3"}},
	}
	if err := st.Replace(context.Background(), "fruit", doc); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	return st
}

func openOrFail(t *testing.T, st store.Store, collection string, isAdmin bool) *Page {
	t.Helper()
	logger, _ := test.NewNullLogger()
	opts := DefaultOptions()
	opts.Logger = logger
	p, err := Open(context.Background(), st, collection, isAdmin, opts)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", collection, err)
	}
	return p
}

func TestOpenEmptyCollection(t *testing.T) {
	st := store.NewMemory()

	admin := openOrFail(t, st, "sheet", true)
	if admin.Found {
		t.Error("Found = true, expected false for an empty collection")
	}
	if admin.Grid.RowCount() != 10 || admin.Grid.ColumnCount() != 11 {
		t.Errorf("admin grid = %dx%d, expected 10x11", admin.Grid.RowCount(), admin.Grid.ColumnCount())
	}

	user := openOrFail(t, st, "sheet", false)
	if user.Grid.RowCount() != 11 {
		t.Errorf("user grid rows = %d, expected 11", user.Grid.RowCount())
	}
	if !user.Grid.ReadOnly() {
		t.Error("user grid is editable, expected read-only")
	}

	user.Grid.SetReadOnly(false)
	if !user.Grid.RowLocked(0) || user.Grid.RowLocked(1) {
		t.Errorf("RowLocked(0), RowLocked(1) = %v, %v, expected only the header row locked", user.Grid.RowLocked(0), user.Grid.RowLocked(1))
	}
	if admin.Grid.RowLocked(0) {
		t.Error("admin RowLocked(0) = true, expected false")
	}
}

func TestHeaderRowStaysLockedAfterShowAll(t *testing.T) {
	p := openOrFail(t, fruitStore(t), "fruit", false)
	if err := p.Sort(0, true); err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	p.ShowAll()
	p.Grid.SetReadOnly(false)
	if err := grid.EditCellText(p.Grid, 0, 0, "x"); !errors.Is(err, grid.ErrLocked) {
		t.Errorf("EditCellText(header row) error = %v, expected ErrLocked", err)
	}
	if err := grid.EditCellText(p.Grid, 1, 0, "x"); err != nil {
		t.Errorf("EditCellText(data row) error = %v", err)
	}
}

func TestSaveAndReopen(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	admin := openOrFail(t, st, "sheet", true)
	if err := grid.EditCellText(admin.Grid, 0, 0, "hello"); err != nil {
		t.Fatalf("EditCellText() error = %v", err)
	}
	if err := admin.Save(ctx); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	user := openOrFail(t, st, "sheet", false)
	if !user.Found {
		t.Error("Found = false after Save")
	}
	if got := user.Grid.Text(1, 0); got != "hello" {
		t.Errorf("user Text(1, 0) = %q, expected %q", got, "hello")
	}
	if err := grid.EditCellText(user.Grid, 1, 0, "x"); !errors.Is(err, grid.ErrLocked) {
		t.Errorf("user EditCellText() error = %v, expected ErrLocked", err)
	}

	err := user.Save(ctx)
	if !errors.Is(err, ErrReadOnly) {
		t.Errorf("user Save() error = %v, expected ErrReadOnly", err)
	}
	var pe *PageError
	if !errors.As(err, &pe) || pe.Op != "save" || pe.Collection != "sheet" {
		t.Errorf("user Save() error = %#v, expected a save PageError", err)
	}
}

func TestOpenStoreFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	opts := DefaultOptions()
	opts.Logger = logger

	p, err := Open(context.Background(), brokenStore{}, "sheet", true, opts)
	if err != nil {
		t.Fatalf("Open() error = %v, expected recovery to a blank grid", err)
	}
	if p.Grid.RowCount() != 10 {
		t.Errorf("rows = %d, expected the blank grid", p.Grid.RowCount())
	}

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["collection"] == "sheet" {
			warned = true
		}
	}
	if !warned {
		t.Errorf("entries = %v, expected a warning for the collection", hook.AllEntries())
	}

	if err := p.Save(context.Background()); !errors.Is(err, errDown) {
		t.Errorf("Save() error = %v, expected the store failure", err)
	}
}

func TestFilterSortShowAll(t *testing.T) {
	p := openOrFail(t, fruitStore(t), "fruit", true)

	values, err := p.FilterValues(0)
	if err != nil {
		t.Fatalf("FilterValues() error = %v", err)
	}
	if !reflect.DeepEqual(values, []string{"a", "b"}) {
		t.Errorf("FilterValues(0) = %v, expected [a b]", values)
	}

	if err := p.Filter(0, []string{"b"}); err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if p.Grid.RowCount() != 2 || p.Grid.Text(0, 1) != "2" || !p.Projected() {
		t.Errorf("filtered grid = %d rows, first qty %q", p.Grid.RowCount(), p.Grid.Text(0, 1))
	}

	if err := p.Sort(1, false); err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	if got := []string{p.Grid.Text(0, 1), p.Grid.Text(1, 1)}; !reflect.DeepEqual(got, []string{"3", "2"}) {
		t.Errorf("sorted qty = %v, expected [3 2]", got)
	}

	p.ShowAll()
	if p.Projected() || p.Grid.RowCount() != 3 || p.Grid.Text(1, 0) != "a" {
		t.Errorf("ShowAll() grid = %d rows, Text(1, 0) = %q", p.Grid.RowCount(), p.Grid.Text(1, 0))
	}
	if p.Grid.Header(0) != "fruit" {
		t.Errorf("Header(0) = %q, expected %q", p.Grid.Header(0), "fruit")
	}

	if err := p.Filter(5, []string{"b"}); !errors.Is(err, grid.ErrOutOfRange) {
		t.Errorf("Filter(5) error = %v, expected ErrOutOfRange", err)
	}
}

func TestFilterSeesUnsavedEdits(t *testing.T) {
	p := openOrFail(t, fruitStore(t), "fruit", true)
	if err := grid.EditCellText(p.Grid, 1, 0, "b"); err != nil {
		t.Fatalf("EditCellText() error = %v", err)
	}
	if err := p.Filter(0, []string{"b"}); err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if p.Grid.RowCount() != 3 {
		t.Errorf("rows = %d, expected the edited row to pass the filter", p.Grid.RowCount())
	}
}

func TestRefresh(t *testing.T) {
	p := openOrFail(t, fruitStore(t), "fruit", true)
	if err := p.Sort(0, true); err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	if err := grid.EditCellText(p.Grid, 0, 0, "zzz"); err != nil {
		t.Fatalf("EditCellText() error = %v", err)
	}

	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if got := p.Grid.Text(0, 0); got != "b" || p.Projected() {
		t.Errorf("Text(0, 0) = %q, projected %v, expected the unsorted stored value %q", got, p.Projected(), "b")
	}
	if sorts := p.engine.Sorts(); len(sorts) != 1 || sorts[0].Col != 0 {
		t.Errorf("Sorts() = %v, expected the column 0 sort kept", sorts)
	}

	if err := p.Filter(1, []string{"1", "3"}); err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if got := []string{p.Grid.Text(0, 0), p.Grid.Text(1, 0)}; !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("filtered after Refresh = %v, expected the kept sort applied: [a b]", got)
	}
}

func TestAppendRowTo(t *testing.T) {
	ctx := context.Background()
	st := fruitStore(t)
	p := openOrFail(t, st, "fruit", true)

	if err := p.AppendRowTo(ctx, "display", 1); err != nil {
		t.Fatalf("AppendRowTo() error = %v", err)
	}
	doc, err := st.Load(ctx, "display")
	if err != nil {
		t.Fatalf("Load(display) error = %v", err)
	}
	if *doc.Rows != 11 || !reflect.DeepEqual(doc.Data[10][:2], []string{"a", "1"}) {
		t.Errorf("display = %d rows, last %q, expected 11 rows ending in [a 1]", *doc.Rows, doc.Data[len(doc.Data)-1])
	}

	if err := p.AppendRowTo(ctx, "display", 1); err != nil {
		t.Fatalf("second AppendRowTo() error = %v", err)
	}
	doc, _ = st.Load(ctx, "display")
	if *doc.Rows != 12 {
		t.Errorf("display rows = %d after two appends, expected 12", *doc.Rows)
	}

	for _, row := range []int{-1, 3} {
		if err := p.AppendRowTo(ctx, "display", row); !errors.Is(err, ErrRowOutOfRange) {
			t.Errorf("AppendRowTo(row %d) error = %v, expected ErrRowOutOfRange", row, err)
		}
	}

	user := openOrFail(t, st, "fruit", false)
	if err := user.AppendRowTo(ctx, "display", 2); !errors.Is(err, ErrReadOnly) {
		t.Errorf("user AppendRowTo() error = %v, expected ErrReadOnly", err)
	}
	if _, err := user.RowTexts(0); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("user RowTexts(header row) error = %v, expected ErrRowOutOfRange", err)
	}
}

func TestUserViewKeepsAdminStylesOnTheirRows(t *testing.T) {
	ctx := context.Background()
	st := fruitStore(t)

	admin := openOrFail(t, st, "fruit", true)
	if err := grid.SetCellColor(admin.Grid, []models.Range{models.CellRange(0, 0)}, "#ff0000"); err != nil {
		t.Fatalf("SetCellColor() error = %v", err)
	}
	grid.MergeCells(admin.Grid, []models.Range{models.NewRange(1, 1, 2, 1)})
	grid.SetRowHeight(admin.Grid, []int{2}, 60)
	if err := admin.Save(ctx); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	user := openOrFail(t, st, "fruit", false)
	if c, _ := user.Grid.Cell(1, 0); c.Text != "b" || c.Style.Color != "#ff0000" {
		t.Errorf("user Cell(1, 0) = %q on %q, expected b on #ff0000", c.Text, c.Style.Color)
	}
	if c, ok := user.Grid.Cell(0, 0); ok && c.Style.Color != models.DefaultColor {
		t.Errorf("user header row color = %q, expected white", c.Style.Color)
	}
	if rs, cs := user.Grid.Span(2, 1); rs != 2 || cs != 1 {
		t.Errorf("user Span(2, 1) = %dx%d, expected 2x1", rs, cs)
	}
	if rs, _ := user.Grid.Span(1, 1); rs != 1 {
		t.Errorf("user Span(1, 1) rows = %d, expected no span above the merged data", rs)
	}
	if got := user.Grid.Text(2, 1); got != "1" {
		t.Errorf("user Text(2, 1) = %q, expected the merged text %q", got, "1")
	}
	if h, ok := user.Grid.RowHeight(3); !ok || h != 60 {
		t.Errorf("user RowHeight(3) = %d, %v, expected 60", h, ok)
	}
}
