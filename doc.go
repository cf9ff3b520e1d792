// Package colfmt lays out a flat list of strings in columns that fit a line
// width, the way ls lists a directory.
//
// The central entry points are [Write], [Columnize] and [Print], which take
// a [Source] and functional options:
//
//	colfmt.Print(colfmt.Values(names...))
//	out, err := colfmt.Columnize(colfmt.Values(names...), colfmt.WithWidth(60))
//
// # Sources
//
// A source is either a list of values or a list of key/value pairs:
//
//   - [Values] — any values, converted with String or %v
//   - [FromLister] — items implementing [Lister]
//   - [Pairs], [Map], [FromMappable] — key/value pairs
//   - [DecodeYAML] — a YAML mapping, sequence or scalar
//
// Lists are fitted to the width. Pairs always render as two columns, keys
// then values, whatever the width.
//
// # Fitting
//
// [Solve] searches for the largest column count that fits, starting from
// min(width, number of values) and working down. Values fill columns
// column-major: the first ceil(n/k) values go to the first column, the next
// run to the second, and so on. A candidate fits when the column widths, the
// spacers between them and one spare character add up to at most the
// width. One column is always accepted.
//
// Widths count runes. There is no display-cell measurement for wide
// characters and no handling of color escapes.
//
// # Columns
//
// A [Column] has one width and one [Alignment]. Its width is fixed with
// [WithFixedWidth] or derived from its longest value. Values wider than a
// fixed width follow the column's [Overflow] mode: truncated (the default,
// for every alignment), left whole, or wrapped onto extra lines.
//
// # Rendering
//
// A [Screen] zips the columns of a [Layout] row by row, pads short columns
// with empty cells, joins cells with the spacer and strips trailing
// whitespace. An empty layout renders no lines at all.
//
// # Width
//
// Without [WithWidth], the width comes from [TerminalWidth], sampled once
// per call. It reads the terminal size of standard output, then COLUMNS,
// then falls back to [DefaultWidth].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidWidth] — a fixed column width that is not positive
//   - [ErrUnsupportedAlignment] — unknown alignment name
//   - [ErrUnsupportedOverflow] — unknown overflow mode
//   - [ErrInvalidInput] — malformed YAML input
package colfmt
