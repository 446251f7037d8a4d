// Package record defines the data contract for score ingestion: the raw,
// untrusted name/score pair coming off the wire and the validated, immutable
// record the cleansing strategies emit.
//
// Validation operates on borrowed views of the raw fields. strings.TrimSpace
// returns a substring of its argument, so trimming and parsing allocate
// nothing; only a record that passes every check is promoted to an owned
// Record. Rejection is silent and uniform: empty, non-numeric, out-of-range,
// and "null" inputs are all treated identically, with no per-record error.
package record
