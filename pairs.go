package colfmt

import (
	"cmp"
	"maps"
	"slices"
)

// Mappable provides key-value pairs.
type Mappable interface {
	Pairs() []KeyValue
}

// KeyValue is a single key-value pair.
type KeyValue struct {
	Key   string
	Value string
}

// Pairs returns a key/value source. Pairs keep the given order.
func Pairs(kvs ...KeyValue) Source {
	return Source{pairs: true, kvs: slices.Clone(kvs)}
}

// Map returns a key/value source from m. Go maps have no iteration order,
// so keys are sorted.
func Map[K cmp.Ordered, V any](m map[K]V) Source {
	keys := slices.Sorted(maps.Keys(m))
	kvs := make([]KeyValue, len(keys))
	for i, k := range keys {
		kvs[i] = KeyValue{Key: stringify(k), Value: stringify(m[k])}
	}
	return Source{pairs: true, kvs: kvs}
}

// FromMappable returns a key/value source holding every item's Pairs, in
// order.
func FromMappable[T Mappable](items ...T) Source {
	kvs := []KeyValue{}
	for _, item := range items {
		kvs = append(kvs, item.Pairs()...)
	}
	return Source{pairs: true, kvs: kvs}
}

// KeyValues returns a copy of the pairs. It is nil for list sources.
func (s Source) KeyValues() []KeyValue {
	return slices.Clone(s.kvs)
}

func pairLayout(kvs []KeyValue, c config) (Layout, error) {
	keys := make([]string, len(kvs))
	values := make([]string, len(kvs))
	for i, kv := range kvs {
		keys[i] = kv.Key
		values[i] = kv.Value
	}
	keyCol, err := NewColumn(keys, c.columnOptions(0)...)
	if err != nil {
		return nil, err
	}
	valueCol, err := NewColumn(values, c.columnOptions(1)...)
	if err != nil {
		return nil, err
	}
	return Layout{keyCol, valueCol}, nil
}
