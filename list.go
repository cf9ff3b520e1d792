package colfmt

import (
	"fmt"
	"slices"
)

// Source is the input to a render: either a flat list of values, fitted
// into as many columns as the width allows, or a list of key/value pairs,
// always shown as two columns. Build one with [Values], [FromLister],
// [Pairs], [Map] or [FromMappable].
type Source struct {
	pairs  bool
	values []string
	kvs    []KeyValue
}

// Lister provides a flat list of strings.
type Lister interface {
	List() []string
}

// Values returns a list source. Each item is converted with its String
// method when it implements [fmt.Stringer], and with %v otherwise.
func Values[T any](items ...T) Source {
	values := make([]string, len(items))
	for i, item := range items {
		values[i] = stringify(item)
	}
	return Source{values: values}
}

// FromLister returns a list source holding every item's List, in order.
func FromLister[T Lister](items ...T) Source {
	var values []string
	for _, item := range items {
		values = append(values, item.List()...)
	}
	return Source{values: values}
}

// IsPairs reports whether s renders as key/value columns.
func (s Source) IsPairs() bool { return s.pairs }

// Len returns the number of values or pairs in s.
func (s Source) Len() int {
	if s.pairs {
		return len(s.kvs)
	}
	return len(s.values)
}

// Strings returns a copy of the list values. It is nil for pair sources.
func (s Source) Strings() []string {
	return slices.Clone(s.values)
}

func stringify(v any) string {
	if str, ok := v.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%v", v)
}
