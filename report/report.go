// Package report aggregates and prints cleansing results. It is a pure
// consumer of validated records: the strategies know nothing about it.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kbukum/scorepipe/record"
)

// Summary aggregates one cleansing run.
type Summary struct {
	Total    int `json:"total"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	// Average is the integer-division mean of accepted scores, 0 when no
	// record was accepted.
	Average int `json:"average"`
	Min     int `json:"min"`
	Max     int `json:"max"`
}

// Summarize builds a Summary from the accepted records of a run over total
// source records.
func Summarize(valid []record.Record, total int) Summary {
	s := Summary{
		Total:    total,
		Accepted: len(valid),
		Rejected: total - len(valid),
	}
	if len(valid) == 0 {
		return s
	}

	sum := 0
	s.Min = valid[0].Score
	s.Max = valid[0].Score
	for _, r := range valid {
		sum += r.Score
		if r.Score < s.Min {
			s.Min = r.Score
		}
		if r.Score > s.Max {
			s.Max = r.Score
		}
	}
	s.Average = sum / len(valid)
	return s
}

// Render writes a human-readable summary table to w.
func Render(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "total\t%d\n", s.Total)
	fmt.Fprintf(tw, "accepted\t%d\n", s.Accepted)
	fmt.Fprintf(tw, "rejected\t%d\n", s.Rejected)
	if s.Accepted > 0 {
		fmt.Fprintf(tw, "average\t%d\n", s.Average)
		fmt.Fprintf(tw, "min\t%d\n", s.Min)
		fmt.Fprintf(tw, "max\t%d\n", s.Max)
	}
	return tw.Flush()
}

// RenderRecords writes the accepted records to w, one per line, in order.
func RenderRecords(w io.Writer, records []record.Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%d\n", r.Name, r.Score)
	}
	return tw.Flush()
}
