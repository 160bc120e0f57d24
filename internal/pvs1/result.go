package pvs1

import (
	"fmt"

	"github.com/inodb/vibe-acmg/internal/seqvar"
)

// Evidence is the ordered trace of intermediate determinations made
// while walking the decision tree.
type Evidence struct {
	steps []string
}

// Addf appends a formatted step to the trace.
func (e *Evidence) Addf(format string, args ...any) {
	e.steps = append(e.steps, fmt.Sprintf(format, args...))
}

// Steps returns the recorded steps in order.
func (e *Evidence) Steps() []string {
	return e.steps
}

// Result is the outcome of a single PVS1 evaluation. Evaluate always
// returns a Result; failures are expressed as StrengthUnsupported with
// Err set, never as a returned error.
type Result struct {
	Variant seqvar.Variant
	// Transcript is the selected transcript feature id, empty when
	// selection failed.
	Transcript string
	// GeneID is the HGNC id of the selected transcript's gene.
	GeneID string
	// Consequence is the resolved consequence class.
	Consequence ConsequenceClass
	// Path is the terminal decision leaf, PathNone when the evaluation
	// failed or the consequence is unsupported.
	Path Path
	// Strength is the assigned evidence strength.
	Strength Strength
	// Evidence records the intermediate determinations in order.
	Evidence Evidence
	// Err is non-nil when an analyzer failed. An unsupported consequence
	// class yields StrengthUnsupported with a nil Err.
	Err error
}

// Failed reports whether the evaluation ended in an analyzer failure
// rather than a tree decision.
func (r *Result) Failed() bool {
	return r.Err != nil
}
