// Package report provides classification result formatters.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/inodb/vibe-acmg/internal/pvs1"
)

// TabWriter writes PVS1 results in tab-delimited format, one row per
// variant.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Variant",
			"Gene",
			"Transcript",
			"Consequence",
			"PVS1",
			"Path",
			"Description",
			"Evidence",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single result row. Failed evaluations are reported as
// "could not be evaluated" with the reason, never dropped.
func (tw *TabWriter) Write(res *pvs1.Result) error {
	gene := orDash(res.GeneID)
	transcript := orDash(res.Transcript)

	path := "-"
	description := "-"
	if res.Path != pvs1.PathNone {
		path = res.Path.String()
		description = res.Path.Description()
	}
	if res.Failed() {
		description = fmt.Sprintf("could not be evaluated: %v", res.Err)
	}

	evidence := "-"
	if steps := res.Evidence.Steps(); len(steps) > 0 {
		evidence = strings.Join(steps, "; ")
	}

	row := []string{
		res.Variant.String(),
		gene,
		transcript,
		res.Consequence.String(),
		res.Strength.String(),
		path,
		description,
		evidence,
	}
	_, err := tw.w.WriteString(strings.Join(row, "\t") + "\n")
	return err
}

// Flush flushes buffered output.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
