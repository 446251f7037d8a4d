package pipeline

import "context"

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Pipeline represents a lazy, pull-based data pipeline.
// No work happens until values are pulled via Collect, Drain, or ForEach.
type Pipeline[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// --- Constructors ---

// From creates a pipeline from an existing Iterator.
func From[T any](iter Iterator[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return iter
		},
	}
}

// FromSlice creates a pipeline from a slice of values. A nil slice yields an
// empty pipeline.
func FromSlice[T any](items []T) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// FromFunc creates a pipeline from a factory that produces an Iterator. Each
// consumption of the pipeline invokes the factory, so a FromFunc pipeline is
// safely re-iterable when the factory produces fresh iterators.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Pipeline[T] {
	return &Pipeline[T]{create: fn}
}

// --- Terminals ---

// Collect runs the pipeline and returns all values as a slice.
func Collect[T any](ctx context.Context, p *Pipeline[T]) ([]T, error) {
	iter := p.create(ctx)
	defer iter.Close()
	var result []T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// Drain pulls all values and sends each to sink, stopping on the first error.
func Drain[T any](ctx context.Context, p *Pipeline[T], sink func(context.Context, T) error) error {
	iter := p.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := sink(ctx, val); err != nil {
			return err
		}
	}
}

// ForEach pulls all values and calls fn for each. Convenience wrapper around Drain.
func ForEach[T any](ctx context.Context, p *Pipeline[T], fn func(context.Context, T) error) error {
	return Drain(ctx, p, fn)
}

// Iter returns the raw Iterator for this pipeline. The caller must Close() it.
func (p *Pipeline[T]) Iter(ctx context.Context) Iterator[T] {
	return p.create(ctx)
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }
