package pvs1

// Strength is the evidence strength assigned by the decision tree.
type Strength int

const (
	// StrengthUnsupported means no prediction could be made, either
	// because the consequence class is outside the tree or because an
	// analyzer failed.
	StrengthUnsupported Strength = iota
	// StrengthNotApplicable means the tree completed and decided the
	// criterion does not apply.
	StrengthNotApplicable
	StrengthSupporting
	StrengthModerate
	StrengthStrong
	// StrengthFull is the unmodified very-strong criterion.
	StrengthFull
)

// String returns the strength label used in reports.
func (s Strength) String() string {
	switch s {
	case StrengthFull:
		return "PVS1"
	case StrengthStrong:
		return "PVS1_Strong"
	case StrengthModerate:
		return "PVS1_Moderate"
	case StrengthSupporting:
		return "PVS1_Supporting"
	case StrengthNotApplicable:
		return "NotPVS1"
	}
	return "Unsupported"
}

// Path identifies the terminal leaf of the decision tree that produced
// a prediction.
type Path int

const (
	PathNone Path = iota
	// PathGeneException marks the gene-specific early-truncation leaf.
	PathGeneException
	PathNF1
	PathNF2
	PathNF3
	PathNF4
	PathNF5
	PathNF6
	PathSS1
	PathSS2
	PathSS3
	PathSS4
	PathSS5
	PathSS6
	PathSS7
	PathSS8
	PathSS9
	PathSS10
	PathIC1
	PathIC2
	PathIC3
)

var pathNames = map[Path]string{
	PathNone:          "not_set",
	PathGeneException: "gene_exception",
	PathNF1:           "nf1",
	PathNF2:           "nf2",
	PathNF3:           "nf3",
	PathNF4:           "nf4",
	PathNF5:           "nf5",
	PathNF6:           "nf6",
	PathSS1:           "ss1",
	PathSS2:           "ss2",
	PathSS3:           "ss3",
	PathSS4:           "ss4",
	PathSS5:           "ss5",
	PathSS6:           "ss6",
	PathSS7:           "ss7",
	PathSS8:           "ss8",
	PathSS9:           "ss9",
	PathSS10:          "ss10",
	PathIC1:           "ic1",
	PathIC2:           "ic2",
	PathIC3:           "ic3",
}

func (p Path) String() string {
	if name, ok := pathNames[p]; ok {
		return name
	}
	return "not_set"
}

// pathStrengths maps each leaf to the strength it assigns.
var pathStrengths = map[Path]Strength{
	PathGeneException: StrengthFull,
	PathNF1:           StrengthFull,
	PathNF2:           StrengthNotApplicable,
	PathNF3:           StrengthStrong,
	PathNF4:           StrengthNotApplicable,
	PathNF5:           StrengthStrong,
	PathNF6:           StrengthModerate,
	PathSS1:           StrengthFull,
	PathSS2:           StrengthNotApplicable,
	PathSS3:           StrengthStrong,
	PathSS4:           StrengthNotApplicable,
	PathSS5:           StrengthStrong,
	PathSS6:           StrengthModerate,
	PathSS7:           StrengthNotApplicable,
	PathSS8:           StrengthStrong,
	PathSS9:           StrengthModerate,
	PathSS10:          StrengthStrong,
	PathIC1:           StrengthModerate,
	PathIC2:           StrengthSupporting,
	PathIC3:           StrengthNotApplicable,
}

// StrengthFor returns the strength assigned by a decision path.
func (p Path) StrengthFor() Strength {
	if s, ok := pathStrengths[p]; ok {
		return s
	}
	return StrengthUnsupported
}

// pathDescriptions are the human-readable route descriptions printed in
// reports, one per leaf.
var pathDescriptions = map[Path]string{
	PathNone: "Not Set",
	PathGeneException: "Gene-specific guideline -> " +
		"Early truncation treated as predicted to undergo NMD",
	PathNF1: "Predicted to undergo NMD -> " +
		"Exon is present in biologically-relevant transcript(s)",
	PathNF2: "Predicted to undergo NMD -> " +
		"Exon is absent from biologically-relevant transcript(s)",
	PathNF3: "Not predicted to undergo NMD -> " +
		"Truncated/altered region is critical to protein function",
	PathNF4: "Not predicted to undergo NMD -> " +
		"Role of region in protein function is unknown -> " +
		"LoF variants in this exon are frequent in the general population and/or " +
		"exon is absent from biologically-relevant transcript(s)",
	PathNF5: "Not predicted to undergo NMD -> " +
		"Role of region in protein function is unknown -> " +
		"LoF variants in this exon are not frequent in the general population and " +
		"exon is present in biologically-relevant transcript(s) -> " +
		"Variant removes >10% of protein",
	PathNF6: "Not predicted to undergo NMD -> " +
		"Role of region in protein function is unknown -> " +
		"LoF variants in this exon are not frequent in the general population and " +
		"exon is present in biologically-relevant transcript(s) -> " +
		"Variant removes <10% of protein",
	PathSS1: "Exon skipping or use of a cryptic splice site disrupts reading frame and " +
		"is predicted to undergo NMD -> " +
		"Exon is present in biologically-relevant transcript(s)",
	PathSS2: "Exon skipping or use of a cryptic splice site disrupts reading frame and " +
		"is predicted to undergo NMD -> " +
		"Exon is absent from biologically-relevant transcript(s)",
	PathSS3: "Exon skipping or use of a cryptic splice site disrupts reading frame and " +
		"is not predicted to undergo NMD -> " +
		"Truncated/altered region is critical to protein function",
	PathSS4: "Exon skipping or use of a cryptic splice site disrupts reading frame and " +
		"is not predicted to undergo NMD -> " +
		"Role of region in protein function is unknown -> " +
		"LoF variants in this exon are frequent in the general population and/or " +
		"exon is absent from biologically-relevant transcript(s)",
	PathSS5: "Exon skipping or use of a cryptic splice site disrupts reading frame and " +
		"is not predicted to undergo NMD -> " +
		"Role of region in protein function is unknown -> " +
		"LoF variants in this exon are not frequent in the general population and " +
		"exon is present in biologically-relevant transcript(s) -> " +
		"Variant removes >10% of protein",
	PathSS6: "Exon skipping or use of a cryptic splice site disrupts reading frame and " +
		"is not predicted to undergo NMD -> " +
		"Role of region in protein function is unknown -> " +
		"LoF variants in this exon are not frequent in the general population and " +
		"exon is present in biologically-relevant transcript(s) -> " +
		"Variant removes <10% of protein",
	PathSS7: "Exon skipping or use of a cryptic splice site preserves reading frame -> " +
		"Role of region in protein function is unknown -> " +
		"LoF variants in this exon are frequent in the general population and/or " +
		"exon is absent from biologically-relevant transcript(s)",
	PathSS8: "Exon skipping or use of a cryptic splice site preserves reading frame -> " +
		"Role of region in protein function is unknown -> " +
		"LoF variants in this exon are not frequent in the general population and " +
		"exon is present in biologically-relevant transcript(s) -> " +
		"Variant removes >10% of protein",
	PathSS9: "Exon skipping or use of a cryptic splice site preserves reading frame -> " +
		"Role of region in protein function is unknown -> " +
		"LoF variants in this exon are not frequent in the general population and " +
		"exon is present in biologically-relevant transcript(s) -> " +
		"Variant removes <10% of protein",
	PathSS10: "Exon skipping or use of a cryptic splice site preserves reading frame -> " +
		"Truncated/altered region is critical to protein function",
	PathIC1: "No known alternative start codon in other transcripts -> " +
		">=1 pathogenic variant(s) upstream of closest potential in-frame start codon",
	PathIC2: "No known alternative start codon in other transcripts -> " +
		"No pathogenic variant(s) upstream of closest potential in-frame start codon",
	PathIC3: "Different functional transcript uses alternative start codon",
}

// Description returns the route description for a leaf.
func (p Path) Description() string {
	if d, ok := pathDescriptions[p]; ok {
		return d
	}
	return pathDescriptions[PathNone]
}
