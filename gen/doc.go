// Package gen produces synthetic raw-record datasets for benchmarking and
// for exercising the cleansing strategies against realistic dirty input.
//
// Generation is deterministic for a given seed: the same Options always
// yield the same records, so benchmark runs stay comparable. Invalid records
// are drawn from every rejection class the validator knows about: empty and
// whitespace-only names, empty scores, the "null" sentinel, letter-polluted
// digits, out-of-range values, and integer overflow.
package gen
