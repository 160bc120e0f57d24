// Package splice provides splice-site strength scoring for donor and
// acceptor motifs using a maximum-entropy-style log-odds model over
// position weight matrices.
package splice

import (
	"math"
	"strings"
)

// Window sizes scored by the model: 3 exonic + 6 intronic bases for
// donors, 20 intronic + 3 exonic bases for acceptors.
const (
	DonorWindow    = 9
	AcceptorWindow = 23
)

// Type is the splice site class affected by a variant.
type Type int

const (
	TypeUnknown Type = iota
	TypeDonor
	TypeAcceptor
)

// String returns "donor", "acceptor" or "unknown".
func (t Type) String() string {
	switch t {
	case TypeDonor:
		return "donor"
	case TypeAcceptor:
		return "acceptor"
	}
	return "unknown"
}

// TypeFromConsequences derives the splice type from molecular
// consequence terms. The first donor or acceptor term wins.
func TypeFromConsequences(terms []string) Type {
	for _, term := range terms {
		switch term {
		case "splice_acceptor_variant":
			return TypeAcceptor
		case "splice_donor_variant", "splice_donor_5th_base_variant",
			"splice_donor_region_variant":
			return TypeDonor
		}
	}
	return TypeUnknown
}

// Genomic background base frequencies, indexed A C G T.
var background = [4]float64{0.27, 0.23, 0.23, 0.27}

// donorFreq holds per-position base frequencies for the 9-base donor
// window (positions -3..-1 exonic, +1..+6 intronic). The +1/+2 GT
// dinucleotide dominates; frequencies derived from vertebrate splice
// site compilations.
var donorFreq = [DonorWindow][4]float64{
	{0.33, 0.37, 0.18, 0.12}, // -3
	{0.60, 0.13, 0.14, 0.13}, // -2
	{0.08, 0.04, 0.81, 0.07}, // -1
	{0.002, 0.002, 0.994, 0.002}, // +1 (G)
	{0.002, 0.006, 0.004, 0.988}, // +2 (T)
	{0.59, 0.03, 0.35, 0.03}, // +3
	{0.71, 0.08, 0.10, 0.11}, // +4
	{0.05, 0.06, 0.82, 0.07}, // +5
	{0.17, 0.16, 0.20, 0.47}, // +6
}

// acceptorFreq holds per-position base frequencies for the 23-base
// acceptor window: 18 polypyrimidine-tract bases, the AG dinucleotide
// at offsets 18-19, then 3 exonic bases.
var acceptorFreq = [AcceptorWindow][4]float64{
	{0.11, 0.31, 0.13, 0.45}, // -20
	{0.11, 0.31, 0.13, 0.45},
	{0.11, 0.31, 0.13, 0.45},
	{0.11, 0.32, 0.12, 0.45},
	{0.10, 0.33, 0.11, 0.46},
	{0.10, 0.33, 0.11, 0.46},
	{0.09, 0.34, 0.10, 0.47},
	{0.09, 0.35, 0.10, 0.46},
	{0.09, 0.35, 0.09, 0.47},
	{0.08, 0.36, 0.09, 0.47},
	{0.08, 0.37, 0.09, 0.46},
	{0.08, 0.38, 0.08, 0.46},
	{0.07, 0.39, 0.08, 0.46},
	{0.07, 0.40, 0.07, 0.46},
	{0.06, 0.41, 0.07, 0.46},
	{0.06, 0.42, 0.06, 0.46},
	{0.23, 0.31, 0.21, 0.25}, // -4, branch-distal relaxation
	{0.04, 0.75, 0.02, 0.19}, // -3, C-rich
	{0.996, 0.001, 0.002, 0.001}, // -2 (A)
	{0.001, 0.001, 0.997, 0.001}, // -1 (G)
	{0.25, 0.14, 0.50, 0.11}, // +1
	{0.26, 0.22, 0.26, 0.26}, // +2
	{0.25, 0.23, 0.26, 0.26}, // +3
}

// Score5 scores a 9-base donor window as a log2 odds ratio against the
// genomic background. Returns a strongly negative score for sequences
// that cannot be scored (wrong length, non-ACGT bases).
func Score5(seq string) float64 {
	return score(seq, donorFreq[:])
}

// Score3 scores a 23-base acceptor window the same way.
func Score3(seq string) float64 {
	return score(seq, acceptorFreq[:])
}

const unscorable = -99.0

func score(seq string, freq [][4]float64) float64 {
	if len(seq) != len(freq) {
		return unscorable
	}
	seq = strings.ToUpper(seq)
	var total float64
	for i := 0; i < len(seq); i++ {
		b := baseIndex(seq[i])
		if b < 0 {
			return unscorable
		}
		total += math.Log2(freq[i][b] / background[b])
	}
	return total
}

func baseIndex(b byte) int {
	switch b {
	case 'A', 'a':
		return 0
	case 'C', 'c':
		return 1
	case 'G', 'g':
		return 2
	case 'T', 't':
		return 3
	}
	return -1
}

var complement = [256]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A', 'N': 'N',
	'a': 't', 'c': 'g', 'g': 'c', 't': 'a', 'n': 'n',
}

// ReverseComplement returns the reverse complement of a DNA sequence.
// Unknown characters map to 'N'.
func ReverseComplement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c := complement[seq[len(seq)-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return string(out)
}
