// Package cleanse implements the record validation-and-transformation
// pipeline as three interchangeable strategies over the same contract:
// consume raw name/score pairs in source order, silently drop every record
// that fails validation, and emit owned, validated records.
//
// The strategies differ only in allocation discipline and evaluation timing:
//
//   - Eager composes independent Filter and Map stages on the generic
//     pipeline package. Each stage re-derives what it needs, trading
//     redundant trims and parses for declarative composition.
//   - Optimized runs the combined predicate over borrowed views in a single
//     loop (rejected records cost no allocation), then projects survivors,
//     re-parsing the score during projection.
//   - Stream is a pull-based producer that validates and yields one record
//     at a time, reusing the predicate's parsed score. Its working set is
//     bounded by one record regardless of input size, and the consumer may
//     stop pulling at any point.
//
// For any input the three strategies produce the same records in the same
// order.
package cleanse
