package colfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidWidth         = errors.New("invalid width")
	ErrUnsupportedAlignment = errors.New("unsupported alignment")
	ErrUnsupportedOverflow  = errors.New("unsupported overflow")
	ErrInvalidInput         = errors.New("invalid input")
)

// DefaultSpacer separates adjacent columns unless [WithSpacer] says otherwise.
const DefaultSpacer = "  "

// Alignment controls how a value is padded inside its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// String returns the alignment marker: "<", ">" or "^".
func (a Alignment) String() string {
	switch a {
	case AlignRight:
		return ">"
	case AlignCenter:
		return "^"
	default:
		return "<"
	}
}

// ParseAlignment parses "left", "right", "center" or one of the markers
// returned by [Alignment.String].
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "<":
		return AlignLeft, nil
	case "right", ">":
		return AlignRight, nil
	case "center", "centre", "^":
		return AlignCenter, nil
	}
	return AlignLeft, fmt.Errorf("%w: %q", ErrUnsupportedAlignment, s)
}

// Overflow decides what happens to a value wider than its column.
type Overflow int

const (
	// OverflowTruncate cuts the value to the column width. Applies to every
	// alignment.
	OverflowTruncate Overflow = iota
	// OverflowExtend leaves the value whole; the row grows past the column.
	OverflowExtend
	// OverflowWrap continues the value on extra lines of the same row.
	OverflowWrap
)

var overflowNames = map[Overflow]string{
	OverflowTruncate: "truncate",
	OverflowExtend:   "extend",
	OverflowWrap:     "wrap",
}

// String returns the overflow mode name.
func (o Overflow) String() string {
	if name, ok := overflowNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Overflow(%d)", int(o))
}

// ParseOverflow parses "truncate", "extend" or "wrap".
func ParseOverflow(s string) (Overflow, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for o, name := range overflowNames {
		if name == s {
			return o, nil
		}
	}
	return OverflowTruncate, fmt.Errorf("%w: %q", ErrUnsupportedOverflow, s)
}

// --- Options ---

// Option configures layout and rendering.
type Option func(*config)

type config struct {
	spacer    string
	width     int
	widthFunc func() int
	widths    []int
	aligns    []Alignment
	overflow  Overflow
}

// WithSpacer sets the string placed between adjacent columns.
func WithSpacer(spacer string) Option {
	return func(c *config) {
		c.spacer = spacer
	}
}

// WithWidth sets the maximum line width. A value <= 0 falls back to the
// width provider.
func WithWidth(width int) Option {
	return func(c *config) {
		c.width = width
	}
}

// WithWidthFunc replaces [TerminalWidth] as the width provider. The
// provider is called once per render.
func WithWidthFunc(fn func() int) Option {
	return func(c *config) {
		if fn != nil {
			c.widthFunc = fn
		}
	}
}

// WithColumnWidths fixes the width of columns by position. Zero keeps a
// column's width automatic; negative widths are rejected with
// [ErrInvalidWidth].
func WithColumnWidths(widths ...int) Option {
	return func(c *config) {
		c.widths = append([]int(nil), widths...)
	}
}

// WithAlignments sets per-column alignment by position. Columns without an
// entry are left aligned.
func WithAlignments(aligns ...Alignment) Option {
	return func(c *config) {
		c.aligns = append([]Alignment(nil), aligns...)
	}
}

// WithOverflow sets the overflow mode for every column.
func WithOverflow(o Overflow) Option {
	return func(c *config) {
		c.overflow = o
	}
}

func newConfig(opts []Option) config {
	c := config{spacer: DefaultSpacer, widthFunc: TerminalWidth}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) validate() error {
	for i, w := range c.widths {
		if w < 0 {
			return fmt.Errorf("%w: column %d has width %d", ErrInvalidWidth, i, w)
		}
	}
	if _, ok := overflowNames[c.overflow]; !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedOverflow, int(c.overflow))
	}
	return nil
}

func (c config) lineWidth() int {
	if c.width > 0 {
		return c.width
	}
	return c.widthFunc()
}

func (c config) columnOptions(i int) []ColumnOption {
	align := AlignLeft
	if i < len(c.aligns) {
		align = c.aligns[i]
	}
	opts := []ColumnOption{WithAlign(align), WithColumnOverflow(c.overflow)}
	if i < len(c.widths) && c.widths[i] != 0 {
		opts = append(opts, WithFixedWidth(c.widths[i]))
	}
	return opts
}

// --- Entry points ---

// Arrange builds the [Layout] for src. Value sources are fitted to the line
// width by [Solve]; pair sources always produce two columns, keys then
// values, whatever the width.
func Arrange(src Source, opts ...Option) (Layout, error) {
	c := newConfig(opts)
	if err := c.validate(); err != nil {
		return nil, err
	}
	return arrange(src, c)
}

func arrange(src Source, c config) (Layout, error) {
	if src.pairs {
		return pairLayout(src.kvs, c)
	}
	return solve(src.values, c.spacer, c.lineWidth(), c)
}

// Write lays out src and writes one line per output row to w. An empty
// source writes nothing.
func Write(w io.Writer, src Source, opts ...Option) error {
	c := newConfig(opts)
	if err := c.validate(); err != nil {
		return err
	}
	layout, err := arrange(src, c)
	if err != nil {
		return err
	}
	_, err = NewScreen(layout, c.spacer).WriteTo(w)
	return err
}

// Columnize lays out src and returns the rows joined by newlines, without a
// trailing newline.
func Columnize(src Source, opts ...Option) (string, error) {
	c := newConfig(opts)
	if err := c.validate(); err != nil {
		return "", err
	}
	layout, err := arrange(src, c)
	if err != nil {
		return "", err
	}
	return NewScreen(layout, c.spacer).String(), nil
}

// Print writes src to standard output.
func Print(src Source, opts ...Option) error {
	return Write(os.Stdout, src, opts...)
}

// Marshal lays out src and returns the bytes [Write] would produce.
func Marshal(src Source, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, src, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
