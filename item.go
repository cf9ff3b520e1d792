package colfmt

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Item is a value paired with the width it is rendered at. Widths count
// runes.
type Item struct {
	Value string
	Width int
}

// String renders the item left aligned, cut to Width and padded to exactly
// Width.
func (it Item) String() string {
	return it.Format(AlignLeft, OverflowTruncate)
}

// Format renders the item at its width. Values wider than Width are cut
// unless o is [OverflowExtend]. A wrapping caller splits with [Item.Wrapped]
// first, so each chunk already fits.
func (it Item) Format(a Alignment, o Overflow) string {
	s := it.Value
	if o != OverflowExtend {
		s = truncate(s, it.Width)
	}
	return alignCell(s, it.Width, a)
}

// Wrapped splits the value into chunks of Width runes, the last possibly
// shorter. A value that already fits, or an item without a positive width,
// yields itself once. The sequence can be ranged over any number of times.
func (it Item) Wrapped() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		runes := []rune(it.Value)
		if it.Width <= 0 || len(runes) <= it.Width {
			yield(it)
			return
		}
		for start := 0; start < len(runes); start += it.Width {
			end := min(start+it.Width, len(runes))
			if !yield(Item{Value: string(runes[start:end]), Width: it.Width}) {
				return
			}
		}
	}
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runeLen(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runeLen(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
