package decode

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/kbukum/scorepipe/errors"
	"github.com/kbukum/scorepipe/record"
)

func TestDecodeBytes_Basic(t *testing.T) {
	input := `[
		{"name": "Bob", "score": "58"},
		{"name": "  Alice  ", "score": "295"}
	]`
	got, err := DecodeBytes([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []record.RawRecord{
		{Name: "Bob", Score: "58"},
		{Name: "  Alice  ", Score: "295"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecodeBytes_FlexibleFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  record.RawRecord
	}{
		{"number score", `[{"name": "Bob", "score": 58}]`, record.RawRecord{Name: "Bob", Score: "58"}},
		{"null score", `[{"name": "Eve", "score": null}]`, record.RawRecord{Name: "Eve", Score: ""}},
		{"null name", `[{"name": null, "score": "10"}]`, record.RawRecord{Name: "", Score: "10"}},
		{"missing score", `[{"name": "Ann"}]`, record.RawRecord{Name: "Ann", Score: ""}},
		{"missing name", `[{"score": "5"}]`, record.RawRecord{Name: "", Score: "5"}},
		{"string null sentinel", `[{"name": "Eve", "score": "null"}]`, record.RawRecord{Name: "Eve", Score: "null"}},
		{"boolean score", `[{"name": "Ted", "score": true}]`, record.RawRecord{Name: "Ted", Score: "true"}},
		{"float score", `[{"name": "Flo", "score": 1.5}]`, record.RawRecord{Name: "Flo", Score: "1.5"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeBytes([]byte(tc.input))
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 1 || got[0] != tc.want {
				t.Errorf("got %v, want [%v]", got, tc.want)
			}
		})
	}
}

func TestDecodeBytes_EmptyAndNull(t *testing.T) {
	for _, input := range []string{"", "   ", "null", "[]"} {
		got, err := DecodeBytes([]byte(input))
		if err != nil {
			t.Errorf("input %q: unexpected error %v", input, err)
		}
		if len(got) != 0 {
			t.Errorf("input %q: got %v, want empty", input, got)
		}
	}
}

func TestDecodeBytes_Malformed(t *testing.T) {
	_, err := DecodeBytes([]byte(`{"name": "not an array"}`))
	if err == nil {
		t.Fatal("expected error for non-array document")
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestDecode_Reader(t *testing.T) {
	got, err := Decode(strings.NewReader(`[{"name": "Jack", "score": "0"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Jack" {
		t.Errorf("got %v", got)
	}
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte(`[{"name": "Bob", "score": "58"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Score != "58" {
		t.Errorf("got %v", got)
	}
}

func TestDecodeFile_NotFound(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.json"))
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}
