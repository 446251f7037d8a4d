// Package decode converts external JSON input into raw records for the
// cleansing strategies. It is deliberately tolerant: fields may arrive as
// strings, numbers, booleans, or null, and a missing or null top-level
// collection decodes to an empty sequence rather than an error. Only a
// syntactically malformed document is reported, as a coded error.
//
// No semantic validation happens here; every decoded pair goes to the
// strategies as-is, dirty or not.
package decode

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	apperrors "github.com/kbukum/scorepipe/errors"
	"github.com/kbukum/scorepipe/record"
)

// flexText accepts a JSON string, number, boolean, or null and preserves the
// literal text of the token. null and absent fields decode to "".
type flexText string

func (f *flexText) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexText(s)
		return nil
	}
	// Number or boolean token: keep its literal spelling. The validator
	// decides whether it parses.
	*f = flexText(data)
	return nil
}

// rawEntry mirrors one object of the ingestion array.
type rawEntry struct {
	Name  flexText `json:"name"`
	Score flexText `json:"score"`
}

// Decode reads a JSON record array from r. An empty document or a top-level
// null yields an empty sequence and no error.
func Decode(r io.Reader) ([]record.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes a JSON record array from data.
func DecodeBytes(data []byte) ([]record.RawRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var entries []rawEntry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, apperrors.InvalidInput("body", "expected a JSON array of {name, score} objects").WithCause(err)
	}

	records := make([]record.RawRecord, len(entries))
	for i, e := range entries {
		records[i] = record.RawRecord{Name: string(e.Name), Score: string(e.Score)}
	}
	return records, nil
}

// DecodeFile decodes a JSON record array from the file at path.
func DecodeFile(path string) ([]record.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NotFound("input file", path)
		}
		return nil, apperrors.Internal(err)
	}
	defer f.Close()
	return Decode(f)
}
