package cleanse

import (
	"strings"

	"github.com/kbukum/scorepipe/record"
)

// Optimized validates every record with the combined predicate over borrowed
// views, so rejected records cost no allocation, and materializes survivors
// into a slice.
//
// Projection re-parses the trimmed score rather than threading the
// predicate's result through, so each survivor pays one name allocation and
// one redundant parse. The redundant parse is kept as-is to keep the
// strategy comparison honest in benchmarks.
func Optimized(records []record.RawRecord) []record.Record {
	out := make([]record.Record, 0, len(records))
	for _, r := range records {
		if _, ok := record.Check(r.Name, r.Score); !ok {
			continue
		}
		score, _ := record.ParseScore(record.TrimmedScore(r))
		out = append(out, record.Record{
			Name:  strings.Clone(record.TrimmedName(r)),
			Score: score,
		})
	}
	return out
}
