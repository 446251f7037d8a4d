package cleanse

import (
	"context"
	"testing"

	"github.com/kbukum/scorepipe/pipeline"
	"github.com/kbukum/scorepipe/record"
)

// sampleInput is the canonical mixed dataset: five of the ten records are
// valid, every rejection class is represented.
func sampleInput() []record.RawRecord {
	return []record.RawRecord{
		{Name: "Alice", Score: "295"},
		{Name: "Bob", Score: "58"},
		{Name: "Charlie", Score: "72"},
		{Name: "Daisy", Score: "88   "},
		{Name: "Eve", Score: "null"},
		{Name: "Frank", Score: "30"},
		{Name: "Grace", Score: "-81"},
		{Name: "Hank", Score: "a90"},
		{Name: "Jack", Score: "0"},
		{Name: "", Score: "1"},
	}
}

func wantOutput() []record.Record {
	return []record.Record{
		{Name: "Bob", Score: 58},
		{Name: "Charlie", Score: 72},
		{Name: "Daisy", Score: 88},
		{Name: "Frank", Score: 30},
		{Name: "Jack", Score: 0},
	}
}

func runStrategy(t *testing.T, s Strategy, input []record.RawRecord) []record.Record {
	t.Helper()
	got, err := Run(context.Background(), s, input)
	if err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	return got
}

func TestStrategies_EndToEnd(t *testing.T) {
	for _, s := range Strategies() {
		t.Run(string(s), func(t *testing.T) {
			got := runStrategy(t, s, sampleInput())
			assertRecordsEqual(t, got, wantOutput())
		})
	}
}

func TestStrategies_Equivalence(t *testing.T) {
	inputs := [][]record.RawRecord{
		nil,
		{},
		sampleInput(),
		{{Name: "  Zed  ", Score: " 100 "}},
		{{Name: " ", Score: "50"}, {Name: "x", Score: " "}},
	}
	for _, input := range inputs {
		eager := runStrategy(t, StrategyEager, input)
		optimized := runStrategy(t, StrategyOptimized, input)
		stream := runStrategy(t, StrategyStream, input)
		assertRecordsEqual(t, optimized, eager)
		assertRecordsEqual(t, stream, eager)
	}
}

func TestStrategies_Idempotent(t *testing.T) {
	input := sampleInput()
	for _, s := range Strategies() {
		first := runStrategy(t, s, input)
		second := runStrategy(t, s, input)
		assertRecordsEqual(t, second, first)
	}
}

func TestStrategies_NilInput(t *testing.T) {
	for _, s := range Strategies() {
		got := runStrategy(t, s, nil)
		if len(got) != 0 {
			t.Errorf("%s: nil input produced %v", s, got)
		}
	}
}

func TestOptimized_TrimsName(t *testing.T) {
	got := Optimized([]record.RawRecord{{Name: "  Daisy  ", Score: "88"}})
	if len(got) != 1 || got[0].Name != "Daisy" {
		t.Errorf("got %v, want trimmed name Daisy", got)
	}
}

func TestStream_PartialConsumption(t *testing.T) {
	iter := Stream(sampleInput()).Iter(context.Background())
	defer iter.Close()

	first, ok, err := iter.Next(context.Background())
	if err != nil || !ok {
		t.Fatalf("Next: ok=%v err=%v", ok, err)
	}
	want := record.Record{Name: "Bob", Score: 58}
	if first != want {
		t.Errorf("first record = %v, want %v", first, want)
	}
	// Abandoning the iterator here must be safe; nothing is held beyond the
	// loop position.
	if err := iter.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestStream_Reiterable(t *testing.T) {
	p := Stream(sampleInput())
	for run := 0; run < 2; run++ {
		got, err := pipeline.Collect(context.Background(), p)
		if err != nil {
			t.Fatal(err)
		}
		assertRecordsEqual(t, got, wantOutput())
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{"eager", StrategyEager, false},
		{"optimized", StrategyOptimized, false},
		{"stream", StrategyStream, false},
		{"", StrategyStream, false},
		{"parallel", "", true},
	}
	for _, tc := range tests {
		got, err := ParseStrategy(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseStrategy(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseStrategy(%q) = (%v, %v), want %v", tc.input, got, err, tc.want)
		}
	}
}

func assertRecordsEqual(t *testing.T, got, want []record.Record) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d records %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %v, want %v", i, got[i], want[i])
		}
	}
}
