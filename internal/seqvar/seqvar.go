// Package seqvar provides the sequence variant value type and parsing
// of plain genomic variant specifications.
package seqvar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// GenomeRelease identifies the reference assembly a variant is expressed on.
type GenomeRelease int

const (
	GRCh38 GenomeRelease = iota
	GRCh37
)

// String returns the assembly name (e.g. "GRCh38").
func (r GenomeRelease) String() string {
	if r == GRCh37 {
		return "GRCh37"
	}
	return "GRCh38"
}

// ParseGenomeRelease parses an assembly name. Defaults to GRCh38 for
// the empty string.
func ParseGenomeRelease(s string) (GenomeRelease, error) {
	switch strings.ToLower(s) {
	case "", "grch38", "hg38":
		return GRCh38, nil
	case "grch37", "hg19":
		return GRCh37, nil
	}
	return GRCh38, fmt.Errorf("unknown genome release %q", s)
}

// Variant is a single normalized sequence variant. Values are immutable
// after construction; every analyzer consumes them read-only.
type Variant struct {
	Release GenomeRelease // Reference assembly
	Chrom   string        // Chromosome without "chr" prefix
	Pos     int64         // 1-based genomic position
	Ref     string        // Reference bases
	Alt     string        // Alternate bases
}

// String returns the canonical "chrom-pos-ref-alt" form.
func (v Variant) String() string {
	return v.Chrom + "-" + strconv.FormatInt(v.Pos, 10) + "-" + v.Ref + "-" + v.Alt
}

// IsSNV returns true if the variant substitutes a single base.
func (v Variant) IsSNV() bool {
	return len(v.Ref) == 1 && len(v.Alt) == 1
}

// IsIndel returns true if the variant changes sequence length.
func (v Variant) IsIndel() bool {
	return len(v.Ref) != len(v.Alt)
}

// Genomic spec: chr12:25245350:C:A, 12-25245350-C-A, or chr12:25245350:C>A.
var reGenomic = regexp.MustCompile(`^(chr)?([0-9XYM]+|MT)[:\-](\d+)[:\-]([ACGTNacgtn]+)[>:\-/]([ACGTNacgtn]+)$`)

// Parse parses a genomic variant specification string into a Variant on
// the given assembly. HGVS and SPDI notations are resolved upstream;
// only plain chrom/pos/ref/alt forms are accepted here.
func Parse(input string, release GenomeRelease) (Variant, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Variant{}, fmt.Errorf("empty variant specification")
	}

	m := reGenomic.FindStringSubmatch(input)
	if m == nil {
		return Variant{}, fmt.Errorf("cannot parse variant specification %q (expected chrom-pos-ref-alt)", input)
	}
	pos, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return Variant{}, fmt.Errorf("variant position in %q: %w", input, err)
	}

	return Variant{
		Release: release,
		Chrom:   normalizeChrom(m[2]),
		Pos:     pos,
		Ref:     strings.ToUpper(m[4]),
		Alt:     strings.ToUpper(m[5]),
	}, nil
}

// normalizeChrom strips the "chr" prefix and maps M to MT.
func normalizeChrom(chrom string) string {
	if len(chrom) > 3 && chrom[:3] == "chr" {
		chrom = chrom[3:]
	}
	if chrom == "M" {
		return "MT"
	}
	return chrom
}
