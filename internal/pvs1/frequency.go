package pvs1

import (
	"context"
	"fmt"

	"github.com/inodb/vibe-acmg/internal/annotation"
	"github.com/inodb/vibe-acmg/internal/seqvar"
)

// lofFrequentInPopulation decides whether loss-of-function variants in
// the exon containing the variant are already common in reference
// populations.
//
// Only the containing exon is considered, not the whole altered
// region. LoF is "frequent" when more than the configured fraction
// (default 10%) of the observed LoF variants in the exon are
// individually common (population allele frequency above 0.1%, applied
// by the frequency source). Zero observed LoF variants resolves to not
// frequent.
func (e *Engine) lofFrequentInPopulation(ctx context.Context, v seqvar.Variant, gt *annotation.GeneTranscript, th Thresholds, ev *Evidence) (bool, error) {
	if gt.Strand == 0 {
		return false, fmt.Errorf("lof frequency: strand unavailable: %w", ErrMissingData)
	}
	exon := gt.FindExon(v.Pos)
	if exon == nil {
		return false, fmt.Errorf("lof frequency: no exon contains position %d: %w", v.Pos, ErrMissingData)
	}

	counts, err := e.frequency.CountLoFVariantsInRange(ctx, v, exon.Start, exon.End)
	if err != nil {
		return false, fmt.Errorf("lof frequency in exon %d: %w", exon.Number, err)
	}
	if counts.Total == 0 {
		ev.Addf("no LoF variants observed in exon %d: not frequent", exon.Number)
		return false, nil
	}

	ratio := float64(counts.Frequent) / float64(counts.Total)
	frequent := ratio > th.LoFFrequentRatio
	ev.Addf("exon %d: %d/%d LoF variants frequent (%.3f): frequent in population = %t",
		exon.Number, counts.Frequent, counts.Total, ratio, frequent)
	return frequent, nil
}
