package grid

import "github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"

type axis int

const (
	rowAxis axis = iota
	colAxis
)

func (a axis) of(p models.Pos) int {
	if a == rowAxis {
		return p.Row
	}
	return p.Col
}

func (a axis) with(p models.Pos, v int) models.Pos {
	if a == rowAxis {
		p.Row = v
	} else {
		p.Col = v
	}
	return p
}

func (a axis) spanLen(sp models.Span) int {
	if a == rowAxis {
		return sp.RowSpan
	}
	return sp.ColSpan
}

func (a axis) withSpanLen(sp models.Span, n int) models.Span {
	if a == rowAxis {
		sp.RowSpan = n
	} else {
		sp.ColSpan = n
	}
	return sp
}

// insert opens n empty lines before index at, shifting everything at or
// after it. Spans that straddle the insertion point grow.
func (g *Grid) insert(ax axis, at, n int) {
	if n <= 0 {
		return
	}
	at = min(max(at, 0), g.count(ax))

	cells := make(map[models.Pos]models.Cell, len(g.cells))
	for p, c := range g.cells {
		if v := ax.of(p); v >= at {
			p = ax.with(p, v+n)
		}
		cells[p] = c
	}
	g.cells = cells

	spans := make(map[models.Pos]models.Span, len(g.spans))
	for p, sp := range g.spans {
		v := ax.of(p)
		switch {
		case v >= at:
			p = ax.with(p, v+n)
			sp.Row, sp.Col = p.Row, p.Col
		case v+ax.spanLen(sp) > at:
			sp = ax.withSpanLen(sp, ax.spanLen(sp)+n)
		}
		spans[p] = sp
	}
	g.spans = spans

	shiftKeys := func(m map[int]int) map[int]int {
		out := make(map[int]int, len(m))
		for k, v := range m {
			if k >= at {
				k += n
			}
			out[k] = v
		}
		return out
	}

	if ax == rowAxis {
		g.rowHeights = shiftKeys(g.rowHeights)
		locked := make(map[int]bool, len(g.locked))
		for r := range g.locked {
			if r >= at {
				r += n
			}
			locked[r] = true
		}
		g.locked = locked
		g.rows += n
		return
	}

	g.colWidths = shiftKeys(g.colWidths)
	headers := make(map[int]string, len(g.headers))
	for c, h := range g.headers {
		if c >= at {
			c += n
		}
		headers[c] = h
	}
	g.headers = headers
	g.cols += n
}

// remove deletes n lines starting at index at. Spans anchored inside the
// removed block disappear; spans straddling it shrink.
func (g *Grid) remove(ax axis, at, n int) {
	total := g.count(ax)
	if at < 0 || at >= total || n <= 0 {
		return
	}
	n = min(n, total-at)
	end := at + n

	cells := make(map[models.Pos]models.Cell, len(g.cells))
	for p, c := range g.cells {
		v := ax.of(p)
		switch {
		case v >= end:
			p = ax.with(p, v-n)
		case v >= at:
			continue
		}
		cells[p] = c
	}
	g.cells = cells

	spans := make(map[models.Pos]models.Span, len(g.spans))
	for p, sp := range g.spans {
		v := ax.of(p)
		switch {
		case v >= end:
			p = ax.with(p, v-n)
			sp.Row, sp.Col = p.Row, p.Col
		case v >= at:
			continue
		default:
			last := v + ax.spanLen(sp)
			if overlap := min(last, end) - at; overlap > 0 {
				sp = ax.withSpanLen(sp, ax.spanLen(sp)-overlap)
			}
		}
		if sp.IsMerge() {
			spans[p] = sp
		}
	}
	g.spans = spans

	dropKeys := func(m map[int]int) map[int]int {
		out := make(map[int]int, len(m))
		for k, v := range m {
			switch {
			case k >= end:
				k -= n
			case k >= at:
				continue
			}
			out[k] = v
		}
		return out
	}

	if ax == rowAxis {
		g.rowHeights = dropKeys(g.rowHeights)
		locked := make(map[int]bool, len(g.locked))
		for r := range g.locked {
			switch {
			case r >= end:
				r -= n
			case r >= at:
				continue
			}
			locked[r] = true
		}
		g.locked = locked
		g.rows -= n
		return
	}

	g.colWidths = dropKeys(g.colWidths)
	headers := make(map[int]string, len(g.headers))
	for c, h := range g.headers {
		switch {
		case c >= end:
			c -= n
		case c >= at:
			continue
		}
		headers[c] = h
	}
	g.headers = headers
	g.cols -= n
}

func (g *Grid) count(ax axis) int {
	if ax == rowAxis {
		return g.rows
	}
	return g.cols
}
