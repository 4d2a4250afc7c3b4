package invariant

import (
	"fmt"
	"io"
	"iter"
)

// WriteIter renders each value from an iterator on its own line as it
// arrives. The options snapshot is taken once, so the whole stream
// renders under one configuration.
func WriteIter[T any](w io.Writer, seq iter.Seq[T], opts *Options) error {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	var writeErr error
	seq(func(item T) bool {
		if _, err := fmt.Fprintln(w, FormatValue(item, &o)); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	return writeErr
}

// WriteChan renders values from a channel until it closes.
// It is a thin wrapper around [WriteIter].
func WriteChan[T any](w io.Writer, ch <-chan T, opts *Options) error {
	return WriteIter(w, chanToIter(ch), opts)
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
