package internal

import (
	"iter"
	"slices"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeqRepeat yields the values of seq, count times over.
func IterSeqRepeat[T any](seq iter.Seq[T], count int) iter.Seq[T] {
	if count <= 0 {
		return IterSeqConcat[T]()
	}
	return IterSeqConcat(slices.Repeat([]iter.Seq[T]{seq}, count)...)
}
