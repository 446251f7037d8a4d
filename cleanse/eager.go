package cleanse

import (
	"context"
	"strings"

	"github.com/kbukum/scorepipe/pipeline"
	"github.com/kbukum/scorepipe/record"
)

// Eager builds the validation pipeline from independent filter and map
// stages: drop records with an empty trimmed name, drop records with an
// empty trimmed score, drop records whose score fails the parse or range
// check, then project survivors into owned records.
//
// Each stage stands alone, so the score is trimmed and parsed once in the
// filter stage and again in the projection, and the projection always
// allocates a fresh copy of the trimmed name. The returned pipeline is lazy;
// nothing runs until it is consumed.
func Eager(records []record.RawRecord) *pipeline.Pipeline[record.Record] {
	src := pipeline.FromSlice(records)
	named := pipeline.Filter(src, func(r record.RawRecord) bool {
		return record.TrimmedName(r) != ""
	})
	scored := pipeline.Filter(named, func(r record.RawRecord) bool {
		return record.TrimmedScore(r) != ""
	})
	valid := pipeline.Filter(scored, func(r record.RawRecord) bool {
		_, ok := record.ParseScore(record.TrimmedScore(r))
		return ok
	})
	return pipeline.Map(valid, func(_ context.Context, r record.RawRecord) (record.Record, error) {
		score, _ := record.ParseScore(record.TrimmedScore(r))
		return record.Record{
			Name:  strings.Clone(record.TrimmedName(r)),
			Score: score,
		}, nil
	})
}
