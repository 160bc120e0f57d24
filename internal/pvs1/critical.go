package pvs1

import (
	"context"
	"fmt"

	"github.com/inodb/vibe-acmg/internal/annotation"
	"github.com/inodb/vibe-acmg/internal/seqvar"
)

// criticalRegion decides whether the region altered by a truncating
// variant is critical to protein function, by measuring enrichment of
// known pathogenic variants downstream of the new stop.
//
// The altered region runs from the variant to the transcript's 3' end:
// on the plus strand from the variant position to the last exon's end,
// on the minus strand from the first exon's start to the variant. The
// region is critical when more than the configured fraction (default
// 5%) of known clinical variants inside it are pathogenic. An empty
// region (zero known variants) is not critical.
func (e *Engine) criticalRegion(ctx context.Context, v seqvar.Variant, gt *annotation.GeneTranscript, th Thresholds, ev *Evidence) (bool, error) {
	if gt.Strand == 0 || len(gt.Exons) == 0 {
		return false, fmt.Errorf("critical region: strand or exon list unavailable: %w", ErrMissingData)
	}

	var start, end int64
	if gt.IsForwardStrand() {
		start, end = v.Pos, gt.Exons[len(gt.Exons)-1].End
	} else {
		start, end = gt.Exons[0].Start, v.Pos
	}
	if end < start {
		return false, fmt.Errorf("critical region %d-%d: %w", start, end, ErrInvalidRange)
	}

	counts, err := e.clinical.CountVariantsInRange(ctx, v, start, end)
	if err != nil {
		return false, fmt.Errorf("critical region %d-%d: %w", start, end, err)
	}
	if counts.Total == 0 {
		ev.Addf("no known clinical variants in altered region %d-%d: not critical", start, end)
		return false, nil
	}

	ratio := float64(counts.Pathogenic) / float64(counts.Total)
	critical := ratio > th.CriticalRatio
	ev.Addf("altered region %d-%d: %d/%d pathogenic (%.3f): critical = %t",
		start, end, counts.Pathogenic, counts.Total, ratio, critical)
	return critical, nil
}
