package colfmt

import (
	"io"
	"iter"
	"slices"
	"strings"
	"unicode"
)

// Screen renders a [Layout] as text rows.
type Screen struct {
	layout Layout
	spacer string
}

// NewScreen returns a screen over layout. The layout is read, never
// modified.
func NewScreen(layout Layout, spacer string) *Screen {
	return &Screen{layout: layout, spacer: spacer}
}

// RowTemplate combines the column templates of a screen with its spacer.
type RowTemplate struct {
	Cells  []Template
	Spacer string
}

// Template returns the row template of the screen.
func (s *Screen) Template() RowTemplate {
	cells := make([]Template, len(s.layout))
	for i, col := range s.layout {
		cells[i] = col.Template()
	}
	return RowTemplate{Cells: cells, Spacer: s.spacer}
}

// Format renders one row. Missing cells render as empty strings. Trailing
// whitespace is kept.
func (t RowTemplate) Format(cells ...string) string {
	parts := make([]string, len(t.Cells))
	for i, tmpl := range t.Cells {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = tmpl.Format(cell)
	}
	return strings.Join(parts, t.Spacer)
}

// String returns the cell templates joined by the spacer, e.g. "<5 >3".
func (t RowTemplate) String() string {
	parts := make([]string, len(t.Cells))
	for i, tmpl := range t.Cells {
		parts[i] = tmpl.String()
	}
	return strings.Join(parts, t.Spacer)
}

// All yields the rendered lines. Row i holds the i-th value of every
// column; a column without one contributes an empty cell. Trailing
// whitespace is stripped from each line, which hides the padding of a right
// or center aligned last column. A row whose cells wrap spans several
// lines.
func (s *Screen) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if len(s.layout) == 0 {
			return
		}
		tmpl := s.Template()
		for row := range s.layout.Rows() {
			wrapped := make([][]string, len(s.layout))
			for i, col := range s.layout {
				cell := ""
				if row < col.Len() {
					cell = col.values[row]
				}
				wrapped[i] = tmpl.Cells[i].Lines(cell)
			}
			for line := range maxLines(wrapped) {
				parts := make([]string, len(wrapped))
				for i, lines := range wrapped {
					if line < len(lines) {
						parts[i] = lines[line]
					} else {
						parts[i] = tmpl.Cells[i].Format("")
					}
				}
				text := strings.TrimRightFunc(strings.Join(parts, s.spacer), unicode.IsSpace)
				if !yield(text) {
					return
				}
			}
		}
	}
}

// Lines returns the rendered lines. An empty layout has none.
func (s *Screen) Lines() []string {
	return slices.Collect(s.All())
}

// String returns the lines joined by newlines.
func (s *Screen) String() string {
	return strings.Join(s.Lines(), "\n")
}

// WriteTo writes every line followed by a newline.
func (s *Screen) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for line := range s.All() {
		written, err := io.WriteString(w, line+"\n")
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func maxLines(wrapped [][]string) int {
	n := 1
	for _, lines := range wrapped {
		if len(lines) > n {
			n = len(lines)
		}
	}
	return n
}
