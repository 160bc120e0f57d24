package pvs1

import (
	"github.com/inodb/vibe-acmg/internal/annotation"
)

// TranscriptPair joins a variant-level transcript annotation with the
// matching gene-level transcript model.
type TranscriptPair struct {
	Variant *annotation.VariantTranscript
	Gene    *annotation.GeneTranscript
}

// SelectTranscript picks the transcript an evaluation should run on.
//
// Variant and gene transcripts are joined on feature id; unpaired
// entries on either side are dropped. A single MANE Select pair wins
// outright. Otherwise the candidate set is the MANE Select pairs when
// two or more exist, else all pairs, and the pair with the largest
// total coding exon length wins. Ties keep the first candidate in
// input order, so selection is deterministic for a fixed input.
func SelectTranscript(variants []annotation.VariantTranscript, genes []annotation.GeneTranscript) (TranscriptPair, error) {
	byID := make(map[string]*annotation.GeneTranscript, len(genes))
	for i := range genes {
		byID[genes[i].ID] = &genes[i]
	}

	var pairs, maneSelect []TranscriptPair
	for i := range variants {
		gt, ok := byID[variants[i].FeatureID]
		if !ok {
			continue
		}
		p := TranscriptPair{Variant: &variants[i], Gene: gt}
		pairs = append(pairs, p)
		if variants[i].HasTag(annotation.TagManeSelect) {
			maneSelect = append(maneSelect, p)
		}
	}
	if len(pairs) == 0 {
		return TranscriptPair{}, ErrNoTranscript
	}
	if len(maneSelect) == 1 {
		return maneSelect[0], nil
	}

	candidates := pairs
	if len(maneSelect) >= 2 {
		candidates = maneSelect
	}

	best := candidates[0]
	bestLen := codingExonSum(best.Gene)
	for _, c := range candidates[1:] {
		if l := codingExonSum(c.Gene); l > bestLen {
			best, bestLen = c, l
		}
	}
	return best, nil
}

func codingExonSum(gt *annotation.GeneTranscript) int64 {
	var sum int64
	for _, e := range gt.Exons {
		sum += e.Length()
	}
	return sum
}
