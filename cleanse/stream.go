package cleanse

import (
	"context"
	"strings"

	"github.com/kbukum/scorepipe/pipeline"
	"github.com/kbukum/scorepipe/record"
)

// Stream returns a pull-based pipeline that validates records one at a time.
// Each pull advances through the source until a record passes the combined
// predicate, then immediately yields one owned record built from the
// predicate's parsed score, with no redundant parse and no intermediate
// collection.
// Rejected records allocate nothing; the consumer may stop pulling at any
// point with nothing left dangling.
//
// The pipeline is re-iterable: every consumption starts a fresh pass over
// the source.
func Stream(records []record.RawRecord) *pipeline.Pipeline[record.Record] {
	return pipeline.FromFunc(func(_ context.Context) pipeline.Iterator[record.Record] {
		return &streamIter{records: records}
	})
}

// streamIter holds only the current position in the source slice.
type streamIter struct {
	records []record.RawRecord
	index   int
}

func (it *streamIter) Next(_ context.Context) (record.Record, bool, error) {
	for it.index < len(it.records) {
		r := it.records[it.index]
		it.index++
		score, ok := record.Check(r.Name, r.Score)
		if !ok {
			continue
		}
		return record.Record{
			Name:  strings.Clone(record.TrimmedName(r)),
			Score: score,
		}, true, nil
	}
	return record.Record{}, false, nil
}

func (it *streamIter) Close() error { return nil }
