package pvs1

import (
	"context"
	"fmt"

	"github.com/inodb/vibe-acmg/internal/annotation"
	"github.com/inodb/vibe-acmg/internal/seqvar"
)

// closestAlternativeStart finds, among the gene's other same-strand
// transcripts, the CDS start closest to the primary transcript's. A
// transcript using a different start codon can rescue translation when
// the canonical start is lost. Returns the genomic position of that
// start and whether one exists. Distance is absolute, so upstream and
// downstream alternatives compete equally.
func closestAlternativeStart(cds map[string]annotation.CdsInfo, primaryID string) (int64, bool, error) {
	primary, ok := cds[primaryID]
	if !ok {
		return 0, false, fmt.Errorf("start codon: primary transcript %s not in cds table: %w", primaryID, ErrMissingData)
	}
	primaryStart := primary.CdsStart()

	var (
		best     int64
		bestDiff int64
		found    bool
	)
	for id, info := range cds {
		if id == primaryID || info.Strand != primary.Strand {
			continue
		}
		altStart := info.CdsStart()
		if altStart == primaryStart {
			continue
		}
		diff := abs64(altStart - primaryStart)
		if !found || diff < bestDiff || (diff == bestDiff && altStart < best) {
			best, bestDiff, found = altStart, diff, true
		}
	}
	return best, found, nil
}

// upstreamPathogenicVariants reports whether any known pathogenic
// variant lies in the first coding exon, upstream of where translation
// would restart. The first exon is the lowest-ordinal exon on the plus
// strand and the highest-ordinal on the minus strand.
func (e *Engine) upstreamPathogenicVariants(ctx context.Context, v seqvar.Variant, gt *annotation.GeneTranscript, ev *Evidence) (bool, error) {
	if gt.Strand == 0 || len(gt.Exons) == 0 {
		return false, fmt.Errorf("start codon: strand or exon list unavailable: %w", ErrMissingData)
	}

	var first annotation.Exon
	if gt.IsForwardStrand() {
		first = gt.Exons[0]
	} else {
		first = gt.Exons[len(gt.Exons)-1]
	}
	if first.End < first.Start {
		return false, fmt.Errorf("start codon: first exon %d-%d: %w", first.Start, first.End, ErrInvalidRange)
	}

	counts, err := e.clinical.CountVariantsInRange(ctx, v, first.Start, first.End)
	if err != nil {
		return false, fmt.Errorf("start codon: upstream range %d-%d: %w", first.Start, first.End, err)
	}
	found := counts.Pathogenic > 0
	ev.Addf("first exon %d-%d: %d pathogenic variants upstream of restart = %t",
		first.Start, first.End, counts.Pathogenic, found)
	return found, nil
}
