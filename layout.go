package colfmt

import "slices"

// fitMargin is kept free at the end of every line so output that exactly
// fills a terminal does not trigger an automatic wrap.
const fitMargin = 1

// Layout is the ordered set of columns chosen for one render. Columns may
// hold different numbers of values; only the last one is ever shorter when
// the layout comes from [Solve].
type Layout []*Column

// Rows returns the length of the longest column.
func (l Layout) Rows() int {
	rows := 0
	for _, col := range l {
		rows = max(rows, col.Len())
	}
	return rows
}

// Width returns the column widths plus one spacer between each pair of
// columns. An empty layout is 0 wide.
func (l Layout) Width(spacer string) int {
	if len(l) == 0 {
		return 0
	}
	width := runeLen(spacer) * (len(l) - 1)
	for _, col := range l {
		width += col.Width()
	}
	return width
}

// Values returns every column's values, column after column.
func (l Layout) Values() []string {
	var values []string
	for _, col := range l {
		values = append(values, col.values...)
	}
	return values
}

// Solve distributes values over as many columns as fit in maxWidth.
//
// The search starts at min(maxWidth, len(values)) columns and works down. A
// candidate with k columns fills them column-major: ceil(n/k) consecutive
// values per column, the last column taking the remainder, which may leave
// fewer than k columns. The candidate is accepted when
//
//	sum(column widths) + len(spacer)*(columns-1) + 1 <= maxWidth
//
// or when k reaches 1. Empty input returns an empty layout.
//
// Only the per-column options (widths, alignments, overflow) of opts apply.
func Solve(values []string, spacer string, maxWidth int, opts ...Option) (Layout, error) {
	c := newConfig(opts)
	if err := c.validate(); err != nil {
		return nil, err
	}
	return solve(values, spacer, maxWidth, c)
}

func solve(values []string, spacer string, maxWidth int, c config) (Layout, error) {
	if len(values) == 0 {
		return Layout{}, nil
	}
	k := max(min(maxWidth, len(values)), 1)
	for {
		layout, err := partition(values, k, c)
		if err != nil {
			return nil, err
		}
		if k == 1 || fits(layout, spacer, maxWidth) {
			return layout, nil
		}
		k--
	}
}

func partition(values []string, k int, c config) (Layout, error) {
	rows := (len(values) + k - 1) / k
	layout := make(Layout, 0, k)
	for chunk := range slices.Chunk(values, rows) {
		col, err := NewColumn(chunk, c.columnOptions(len(layout))...)
		if err != nil {
			return nil, err
		}
		layout = append(layout, col)
	}
	return layout, nil
}

func fits(layout Layout, spacer string, maxWidth int) bool {
	return layout.Width(spacer)+fitMargin <= maxWidth
}
