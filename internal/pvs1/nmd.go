package pvs1

import (
	"fmt"

	"github.com/inodb/vibe-acmg/internal/annotation"
)

// nmdEscapeWindow is the number of 3'-terminal bases of the penultimate
// exon that escape nonsense-mediated decay.
const nmdEscapeWindow = 50

// undergoesNMD predicts whether a transcript carrying a premature stop
// at stopPos (transcript coordinates, 5'UTR included) is degraded by
// nonsense-mediated decay.
//
// A stop in the last exon or in the last 50 bases of the penultimate
// exon escapes NMD; everything upstream of that cutoff undergoes it.
// Single-exon transcripts always escape since there is no splicing for
// the surveillance machinery to read. Genes flagged always-NMD in the
// rule overlay short-circuit to true.
func (e *Engine) undergoesNMD(stopPos int64, geneID string, gt *annotation.GeneTranscript, ev *Evidence) (bool, error) {
	if e.rules.AlwaysNMD(geneID) {
		ev.Addf("gene %s is configured as always undergoing NMD", geneID)
		return true, nil
	}
	if gt.Strand == 0 || len(gt.Exons) == 0 {
		return false, fmt.Errorf("nmd: strand or exon list unavailable: %w", ErrMissingData)
	}

	lengths := make([]int64, len(gt.Exons))
	for i, exon := range gt.Exons {
		lengths[i] = exon.Length()
	}
	if !gt.IsForwardStrand() {
		reverse(lengths)
	}

	if len(lengths) == 1 {
		ev.Addf("single-exon transcript escapes NMD")
		return false, nil
	}

	var cutoff int64
	for _, l := range lengths[:len(lengths)-1] {
		cutoff += l
	}
	cutoff -= min64(nmdEscapeWindow, lengths[len(lengths)-2])

	undergoes := stopPos <= cutoff
	ev.Addf("new stop at %d, NMD cutoff %d: undergoes NMD = %t", stopPos, cutoff, undergoes)
	return undergoes, nil
}

func reverse(s []int64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
