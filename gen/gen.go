package gen

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/scorepipe/record"
)

// Options controls dataset generation.
type Options struct {
	// Count is the number of records to generate.
	Count int
	// Seed seeds the random source. The same seed yields the same dataset.
	// Zero picks a time-based seed; the seed actually used is recorded on
	// the Dataset so any run can be replayed.
	Seed int64
	// ValidRatio is the fraction of records generated valid, in [0,1].
	ValidRatio float64
}

// ApplyDefaults fills zero-valued options.
func (o *Options) ApplyDefaults() {
	if o.Count <= 0 {
		o.Count = 1000
	}
	if o.ValidRatio <= 0 || o.ValidRatio > 1 {
		o.ValidRatio = 0.7
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
}

// Dataset is a generated batch of raw records tagged with a run identifier.
type Dataset struct {
	ID        uuid.UUID          `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Seed      int64              `json:"seed"`
	Records   []record.RawRecord `json:"records"`
}

// WriteJSON writes the bare record array in the ingestion format consumed by
// the decode package. Dataset metadata is not part of the wire format.
func (d *Dataset) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d.Records)
}

var firstNames = []string{
	"Alice", "Bob", "Charlie", "Daisy", "Eve", "Frank", "Grace", "Hank",
	"Ivy", "Jack", "Kate", "Liam", "Mona", "Ned", "Olga", "Pete",
}

// New generates a dataset according to opts.
func New(opts Options) Dataset {
	opts.ApplyDefaults()
	rng := rand.New(rand.NewSource(opts.Seed))

	records := make([]record.RawRecord, opts.Count)
	for i := range records {
		if rng.Float64() < opts.ValidRatio {
			records[i] = validRecord(rng)
		} else {
			records[i] = invalidRecord(rng)
		}
	}

	return Dataset{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Seed:      opts.Seed,
		Records:   records,
	}
}

func validRecord(rng *rand.Rand) record.RawRecord {
	name := firstNames[rng.Intn(len(firstNames))]
	score := fmt.Sprintf("%d", rng.Intn(record.MaxScore+1))
	// Some valid records carry surrounding whitespace the validator trims.
	switch rng.Intn(4) {
	case 0:
		name = "  " + name + "  "
	case 1:
		score = score + "   "
	}
	return record.RawRecord{Name: name, Score: score}
}

func invalidRecord(rng *rand.Rand) record.RawRecord {
	name := firstNames[rng.Intn(len(firstNames))]
	switch rng.Intn(7) {
	case 0:
		return record.RawRecord{Name: "", Score: "50"}
	case 1:
		return record.RawRecord{Name: "   ", Score: "50"}
	case 2:
		return record.RawRecord{Name: name, Score: ""}
	case 3:
		return record.RawRecord{Name: name, Score: "null"}
	case 4:
		return record.RawRecord{Name: name, Score: fmt.Sprintf("a%d", rng.Intn(100))}
	case 5:
		return record.RawRecord{Name: name, Score: fmt.Sprintf("%d", record.MaxScore+1+rng.Intn(500))}
	default:
		return record.RawRecord{Name: name, Score: "99999999999999999999"}
	}
}
