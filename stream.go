package colfmt

import (
	"io"
	"iter"
	"slices"
)

// WriteIter collects the values of seq and writes them as a fitted layout.
// The layout depends on every value, so nothing is written before seq ends.
func WriteIter[T any](w io.Writer, seq iter.Seq[T], opts ...Option) error {
	return Write(w, Values(slices.Collect(seq)...), opts...)
}

// WriteIter2 collects the pairs of seq, in iteration order, and writes them
// as key/value columns.
func WriteIter2[K, V any](w io.Writer, seq iter.Seq2[K, V], opts ...Option) error {
	var kvs []KeyValue
	for k, v := range seq {
		kvs = append(kvs, KeyValue{Key: stringify(k), Value: stringify(v)})
	}
	return Write(w, Pairs(kvs...), opts...)
}

// WriteChan formats values from a channel and writes them to w once the
// channel is closed. It is a thin wrapper around [WriteIter].
func WriteChan[T any](w io.Writer, ch <-chan T, opts ...Option) error {
	return WriteIter(w, chanToIter(ch), opts...)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
