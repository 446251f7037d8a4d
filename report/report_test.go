package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kbukum/scorepipe/record"
)

func TestSummarize(t *testing.T) {
	valid := []record.Record{
		{Name: "Bob", Score: 58},
		{Name: "Charlie", Score: 72},
		{Name: "Daisy", Score: 88},
		{Name: "Frank", Score: 30},
		{Name: "Jack", Score: 0},
	}
	s := Summarize(valid, 10)

	if s.Total != 10 || s.Accepted != 5 || s.Rejected != 5 {
		t.Errorf("counts wrong: %+v", s)
	}
	// (58+72+88+30+0)/5 = 49 with integer division.
	if s.Average != 49 {
		t.Errorf("average = %d, want 49", s.Average)
	}
	if s.Min != 0 || s.Max != 88 {
		t.Errorf("min/max = %d/%d, want 0/88", s.Min, s.Max)
	}
}

func TestSummarize_IntegerDivision(t *testing.T) {
	valid := []record.Record{{Name: "a", Score: 1}, {Name: "b", Score: 2}}
	if s := Summarize(valid, 2); s.Average != 1 {
		t.Errorf("average = %d, want 1 (3/2 truncated)", s.Average)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, 3)
	if s.Accepted != 0 || s.Rejected != 3 || s.Average != 0 {
		t.Errorf("empty summary wrong: %+v", s)
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	s := Summarize([]record.Record{{Name: "Bob", Score: 58}}, 2)
	if err := Render(&buf, s); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"total", "accepted", "rejected", "average", "58"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_EmptySkipsStats(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Summarize(nil, 4)); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "average") {
		t.Errorf("empty run should not print average:\n%s", buf.String())
	}
}

func TestRenderRecords(t *testing.T) {
	var buf bytes.Buffer
	records := []record.Record{
		{Name: "Bob", Score: 58},
		{Name: "Charlie", Score: 72},
	}
	if err := RenderRecords(&buf, records); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Bob") {
		t.Errorf("first line = %q", lines[0])
	}
}
