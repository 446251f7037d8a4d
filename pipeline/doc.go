// Package pipeline provides composable, pull-based sequence operators.
//
// Pipelines are lazy: no work happens until values are pulled via Collect,
// Drain, or ForEach. Each stage pulls from the previous stage on demand, so
// the caller controls exactly how much of the output is realized and may
// stop consuming at any point.
//
// All operators are synchronous and single-goroutine: one pull on the final
// stage drives at most one value through every stage.
//
//   - Map: transform each value
//   - Filter: keep values matching a predicate
//   - Tap: side-effect without altering the value (logging, metrics)
//   - Reduce: accumulate all values into one result
//   - Concat: join multiple pipelines sequentially
//
// # Usage
//
//	src := pipeline.FromSlice([]int{1, 2, 3, 4, 5})
//	evens := pipeline.Filter(src, func(n int) bool { return n%2 == 0 })
//	doubled := pipeline.Map(evens, func(_ context.Context, n int) (int, error) {
//	    return n * 2, nil
//	})
//	results, _ := pipeline.Collect(ctx, doubled)
package pipeline
