package colfmt

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Column is an ordered group of values sharing one width and one alignment.
type Column struct {
	values   []string
	fixed    int
	hasFixed bool
	align    Alignment
	overflow Overflow
}

// ColumnOption configures a [Column].
type ColumnOption func(*Column)

// WithFixedWidth fixes the column width instead of deriving it from the
// values. Width must be positive.
func WithFixedWidth(width int) ColumnOption {
	return func(c *Column) {
		c.fixed = width
		c.hasFixed = true
	}
}

// WithAlign sets the column alignment. Default: [AlignLeft].
func WithAlign(a Alignment) ColumnOption {
	return func(c *Column) {
		c.align = a
	}
}

// WithColumnOverflow sets what happens to values wider than the column.
// Default: [OverflowTruncate].
func WithColumnOverflow(o Overflow) ColumnOption {
	return func(c *Column) {
		c.overflow = o
	}
}

// NewColumn returns a column holding a copy of values. It fails with
// [ErrInvalidWidth] when a fixed width is not positive.
func NewColumn(values []string, opts ...ColumnOption) (*Column, error) {
	c := &Column{values: slices.Clone(values)}
	for _, opt := range opts {
		opt(c)
	}
	if c.hasFixed && c.fixed <= 0 {
		return nil, fmt.Errorf("%w: %d is not a positive integer", ErrInvalidWidth, c.fixed)
	}
	if _, ok := overflowNames[c.overflow]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedOverflow, int(c.overflow))
	}
	return c, nil
}

// ColumnOf converts values the way [Values] does and returns a column.
func ColumnOf[T any](values []T, opts ...ColumnOption) (*Column, error) {
	return NewColumn(Values(values...).values, opts...)
}

// Width returns the fixed width if one was set, otherwise the rune length of
// the longest value. An empty auto-width column is 0 wide.
func (c *Column) Width() int {
	if c.hasFixed {
		return c.fixed
	}
	width := 0
	for _, v := range c.values {
		width = max(width, runeLen(v))
	}
	return width
}

// FixedWidth returns the fixed width and whether one was set.
func (c *Column) FixedWidth() (int, bool) { return c.fixed, c.hasFixed }

// Align returns the column alignment.
func (c *Column) Align() Alignment { return c.align }

// Overflow returns the column overflow mode.
func (c *Column) Overflow() Overflow { return c.overflow }

// Len returns the number of values.
func (c *Column) Len() int { return len(c.values) }

// Values returns a copy of the raw values.
func (c *Column) Values() []string { return slices.Clone(c.values) }

// Template returns the rule that renders a string into this column's slot.
func (c *Column) Template() Template {
	return Template{Width: c.Width(), Align: c.align, Overflow: c.overflow}
}

// All yields one formatted string per value, in input order.
func (c *Column) All() iter.Seq[string] {
	tmpl := c.Template()
	return func(yield func(string) bool) {
		for _, v := range c.values {
			if !yield(tmpl.Format(v)) {
				return
			}
		}
	}
}

// Wrapped yields every formatted chunk of every value, in input order. Each
// value is split into pieces of the column width.
func (c *Column) Wrapped() iter.Seq[string] {
	tmpl := c.Template()
	tmpl.Overflow = OverflowWrap
	return func(yield func(string) bool) {
		for _, v := range c.values {
			for _, line := range tmpl.Lines(v) {
				if !yield(line) {
					return
				}
			}
		}
	}
}

// String returns the raw values, one per line.
func (c *Column) String() string {
	return strings.Join(c.values, "\n")
}

// Template is the width and alignment rule of one column.
type Template struct {
	Width    int
	Align    Alignment
	Overflow Overflow
}

// Format renders s into the slot.
func (t Template) Format(s string) string {
	return Item{Value: s, Width: t.Width}.Format(t.Align, t.Overflow)
}

// Lines renders s as one formatted line, or several when the template wraps
// and s is wider than the slot.
func (t Template) Lines(s string) []string {
	if t.Overflow != OverflowWrap {
		return []string{t.Format(s)}
	}
	var lines []string
	for chunk := range (Item{Value: s, Width: t.Width}).Wrapped() {
		lines = append(lines, chunk.Format(t.Align, t.Overflow))
	}
	return lines
}

// String returns the alignment marker followed by the width, e.g. "<5".
func (t Template) String() string {
	return t.Align.String() + strconv.Itoa(t.Width)
}
