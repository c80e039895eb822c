package gridsheet

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/codec"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/projection"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/store"
)

// Page is one view of a collection. Admin pages edit and save the grid;
// other pages are read-only and show a header row above the data.
//
// A Page is not safe for concurrent use. Two pages on the same collection
// share nothing and the last Save wins.
type Page struct {
	Collection string
	Grid       *grid.Grid
	IsAdmin    bool
	// Found is false when the collection held no document or could not be
	// read at the last load.
	Found bool
	// Report counts what the last load left out.
	Report codec.ApplyReport

	st        store.Store
	opts      Options
	engine    *projection.Engine
	projected bool
}

// Open loads collection into a new page. A store failure is logged and
// yields the blank grid, so Open fails only when the grid cannot be
// snapshotted.
func Open(ctx context.Context, st store.Store, collection string, isAdmin bool, opts Options) (*Page, error) {
	p := &Page{
		Collection: collection,
		Grid:       grid.New(0, 0),
		IsAdmin:    isAdmin,
		st:         st,
		opts:       opts,
	}
	p.Grid.SetReadOnly(!isAdmin)
	p.load(ctx)

	engine, err := projection.New(p.Grid, isAdmin)
	if err != nil {
		return nil, NewPageError(collection, "open", err)
	}
	p.engine = engine
	return p, nil
}

func (p *Page) load(ctx context.Context) {
	log := p.opts.logger().WithField("collection", p.Collection)

	res := codec.Load(ctx, p.st, p.Collection, p.opts.Grid, p.opts.Decode)
	if res.Err != nil {
		log.WithError(res.Err).Warn("load failed, showing a blank grid")
	}
	if res.Malformed != nil {
		for _, rec := range res.Malformed.Records {
			log.WithField("record", rec).Debug("skipped malformed record")
		}
	}

	p.Found = res.Found
	p.Report = codec.Apply(res.Snapshot, p.Grid, p.IsAdmin)
	p.lockHeader()
	if p.Report != (codec.ApplyReport{}) {
		log.WithFields(logrus.Fields{
			"rows":   p.Report.SkippedRows,
			"cells":  p.Report.SkippedCells,
			"styles": p.Report.SkippedStyles,
		}).Debug("skipped entries outside the grid")
	}
}

// HeaderRows returns the number of rows above the data.
func (p *Page) HeaderRows() int {
	return codec.HeaderRows(p.IsAdmin)
}

// Save replaces the collection's document with the grid as it is shown,
// including any loaded projection.
func (p *Page) Save(ctx context.Context) error {
	if !p.IsAdmin {
		return NewPageError(p.Collection, "save", ErrReadOnly)
	}
	if err := p.st.Replace(ctx, p.Collection, codec.Encode(p.Grid, p.IsAdmin)); err != nil {
		return NewPageError(p.Collection, "save", err)
	}
	p.opts.logger().WithField("collection", p.Collection).Info("saved")
	return nil
}

// Refresh reloads the collection, discarding unsaved edits, and shows it
// unprojected. Filters are dropped; registered sorts stay registered and
// take effect with the next Filter or Sort.
func (p *Page) Refresh(ctx context.Context) error {
	p.load(ctx)
	if err := p.engine.Rebase(p.Grid); err != nil {
		return NewPageError(p.Collection, "refresh", err)
	}
	p.projected = false
	return nil
}

// Projected reports whether the grid shows a filtered or sorted table.
func (p *Page) Projected() bool {
	return p.projected
}

// FilterValues returns the choices for a filter on col.
func (p *Page) FilterValues(col int) ([]string, error) {
	if err := p.checkColumn(col); err != nil {
		return nil, err
	}
	if err := p.rebase(); err != nil {
		return nil, err
	}
	return p.engine.ColumnValues(col), nil
}

// Filter keeps only rows whose text in col is one of values and loads the
// result. An empty values list removes the filter on col.
func (p *Page) Filter(col int, values []string) error {
	if err := p.checkColumn(col); err != nil {
		return err
	}
	if err := p.rebase(); err != nil {
		return err
	}
	p.engine.SetFilter(col, values)
	return p.project()
}

// Sort adds col to the sort order and loads the result.
func (p *Page) Sort(col int, ascending bool) error {
	if err := p.checkColumn(col); err != nil {
		return err
	}
	if err := p.rebase(); err != nil {
		return err
	}
	p.engine.SetSort(col, ascending)
	return p.project()
}

// ShowAll drops every filter and sort and restores the grid captured
// before the first projection.
func (p *Page) ShowAll() {
	p.engine.Reset()
	p.engine.ClearSorts()
	if p.projected {
		p.engine.Restore(p.Grid)
		p.lockHeader()
	}
	p.projected = false
}

// lockHeader locks the header row of non-admin grids. It holds the filter
// controls and never takes cell edits, even when the grid is writable.
func (p *Page) lockHeader() {
	for r := 0; r < p.HeaderRows(); r++ {
		p.Grid.LockRows(r)
	}
}

// rebase snapshots the grid when no projection is loaded, so edits made
// since the last snapshot are part of the base rows.
func (p *Page) rebase() error {
	if p.projected {
		return nil
	}
	if err := p.engine.Rebase(p.Grid); err != nil {
		return fmt.Errorf("snapshot grid: %w", err)
	}
	return nil
}

func (p *Page) project() error {
	res, err := p.engine.Apply()
	if err != nil {
		return fmt.Errorf("project: %w", err)
	}
	res.Load(p.Grid)
	p.projected = true
	return nil
}

func (p *Page) checkColumn(col int) error {
	if col < 0 || col >= p.Grid.ColumnCount() {
		return fmt.Errorf("column %d: %w", col, grid.ErrOutOfRange)
	}
	return nil
}

// RowTexts returns the texts of grid row row.
func (p *Page) RowTexts(row int) ([]string, error) {
	if row < p.HeaderRows() || row >= p.Grid.RowCount() {
		return nil, fmt.Errorf("row %d: %w", row, ErrRowOutOfRange)
	}
	texts := make([]string, p.Grid.ColumnCount())
	for c := range texts {
		texts[c] = p.Grid.Text(row, c)
	}
	return texts, nil
}

// AppendRowTo appends the texts of grid row row to the document of
// target. The target is loaded (blank when empty), extended by one row and
// replaced as an admin grid, so its existing styles are kept. Only admin
// pages may append.
func (p *Page) AppendRowTo(ctx context.Context, target string, row int) error {
	if !p.IsAdmin {
		return NewPageError(target, "append", ErrReadOnly)
	}
	texts, err := p.RowTexts(row)
	if err != nil {
		return NewPageError(target, "append", err)
	}

	res := codec.Load(ctx, p.st, target, p.opts.Grid, p.opts.Decode)
	if res.Err != nil {
		return NewPageError(target, "append", res.Err)
	}
	tmp := grid.New(0, 0)
	codec.Apply(res.Snapshot, tmp, true)

	at := tmp.RowCount()
	tmp.SetRowCount(at + 1)
	if tmp.ColumnCount() < len(texts) {
		tmp.SetColumnCount(len(texts))
	}
	for c, text := range texts {
		if err := grid.EditCellText(tmp, at, c, text); err != nil {
			return NewPageError(target, "append", err)
		}
	}

	if err := p.st.Replace(ctx, target, codec.Encode(tmp, true)); err != nil {
		return NewPageError(target, "append", err)
	}
	p.opts.logger().WithFields(logrus.Fields{"collection": target, "from": p.Collection}).Debug("appended row")
	return nil
}
