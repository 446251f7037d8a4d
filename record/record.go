package record

// Score bounds for a valid record, inclusive.
const (
	MinScore = 0
	MaxScore = 100
)

// RawRecord is an untrusted name/score pair as deserialized from the source.
// Both fields are free text: either may be empty, whitespace-only, the
// literal "null", or otherwise unparseable.
type RawRecord struct {
	Name  string `json:"name"`
	Score string `json:"score"`
}

// Record is a validated output record. Name is trimmed and non-empty, Score
// is within [MinScore, MaxScore]. Records compare by value; two records with
// the same name and score are equal.
type Record struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}
