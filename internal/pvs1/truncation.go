package pvs1

import (
	"fmt"
	"regexp"
	"strconv"
)

// Protein-HGVS patterns for the position of the new termination codon.
// Frameshifts carry the new stop as a run length after "fs"; nonsense
// variants carry the stop at the variant residue itself.
var (
	reFsWithStop = regexp.MustCompile(`p\.\D+(\d+)\D+fs(\*|X|Ter)(\d+)`)
	reFsBare     = regexp.MustCompile(`p\.\D+(\d+)fs`)
	reNonsense   = regexp.MustCompile(`p\.\D+(\d+)(\*|X|Ter)`)
)

// TerminationPosition parses the residue number of the new stop codon
// from a protein HGVS string. For frameshift notations like
// "p.Arg123Glyfs*45" the result is the variant residue plus the run
// length to the new stop (168). Returns -1 when no termination can be
// parsed.
func TerminationPosition(pHGVS string) int64 {
	if m := reFsWithStop.FindStringSubmatch(pHGVS); m != nil {
		base, err1 := strconv.ParseInt(m[1], 10, 64)
		run, err2 := strconv.ParseInt(m[3], 10, 64)
		if err1 == nil && err2 == nil {
			return base + run
		}
	}
	if m := reFsBare.FindStringSubmatch(pHGVS); m != nil {
		if pos, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return pos
		}
	}
	if m := reNonsense.FindStringSubmatch(pHGVS); m != nil {
		if pos, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return pos
		}
	}
	return -1
}

// removesLargeProteinFraction decides whether a truncation at the given
// termination residue removes more than the configured fraction
// (default 10%) of a protein of codonLength residues. An unparseable
// termination position is a data error, never silently false.
func removesLargeProteinFraction(termination, codonLength int64, th Thresholds, ev *Evidence) (bool, error) {
	if termination <= 0 {
		return false, fmt.Errorf("truncation: termination position unparseable: %w", ErrMissingData)
	}
	if codonLength <= 0 {
		return false, fmt.Errorf("truncation: protein length unavailable: %w", ErrMissingData)
	}

	removed := float64(codonLength-termination) / float64(codonLength)
	large := removed > th.ProteinFraction
	ev.Addf("truncation at residue %d of %d removes %.3f of protein: exceeds %.0f%% = %t",
		termination, codonLength, removed, th.ProteinFraction*100, large)
	return large, nil
}
