package pvs1

// ConsequenceClass groups molecular consequence terms into the coarse
// classes the decision tree branches on.
type ConsequenceClass int

const (
	ClassUnclassified ConsequenceClass = iota
	ClassNonsenseOrFrameshift
	ClassSpliceSite
	ClassInitiationCodon
	ClassMissense
)

// String returns the class name used in reports and logs.
func (c ConsequenceClass) String() string {
	switch c {
	case ClassNonsenseOrFrameshift:
		return "nonsense_frameshift"
	case ClassSpliceSite:
		return "splice_sites"
	case ClassInitiationCodon:
		return "initiation_codon"
	case ClassMissense:
		return "missense"
	}
	return "unclassified"
}

// consequenceClasses maps individual consequence terms to their class.
// Terms not present map to ClassUnclassified. The table carries both
// case variants emitted by different annotation backends.
var consequenceClasses = map[string]ConsequenceClass{
	"intergenic_variant":    ClassUnclassified,
	"intron_variant":        ClassUnclassified,
	"upstream_gene_variant": ClassInitiationCodon,
	"downstream_gene_variant": ClassInitiationCodon,
	"start_lost":            ClassInitiationCodon,
	"5_prime_utr_variant":   ClassUnclassified,
	"5_prime_UTR_variant":   ClassUnclassified,
	"3_prime_utr_variant":   ClassNonsenseOrFrameshift,
	"3_prime_UTR_variant":   ClassNonsenseOrFrameshift,

	"splice_region_variant":               ClassSpliceSite,
	"splice_donor_variant":                ClassSpliceSite,
	"splice_donor_5th_base_variant":       ClassSpliceSite,
	"splice_donor_region_variant":         ClassSpliceSite,
	"splice_polypyrimidine_tract_variant": ClassSpliceSite,
	"splice_acceptor_variant":             ClassSpliceSite,

	"frameshift_variant": ClassNonsenseOrFrameshift,
	"stop_gained":        ClassNonsenseOrFrameshift,
	"stop_lost":          ClassUnclassified,

	"initiator_codon_variant": ClassInitiationCodon,
	"start_retained_variant":  ClassInitiationCodon,

	"missense_variant": ClassMissense,

	"transcript_ablation":                ClassUnclassified,
	"transcript_amplification":           ClassUnclassified,
	"inframe_insertion":                  ClassUnclassified,
	"inframe_deletion":                   ClassUnclassified,
	"synonymous_variant":                 ClassUnclassified,
	"stop_retained_variant":              ClassUnclassified,
	"mature_mirna_variant":               ClassUnclassified,
	"mature_miRNA_variant":               ClassUnclassified,
	"non_coding_exon_variant":            ClassUnclassified,
	"nc_transcript_variant":              ClassUnclassified,
	"incomplete_terminal_codon_variant":  ClassUnclassified,
	"NMD_transcript_variant":             ClassUnclassified,
	"nmd_transcript_variant":             ClassUnclassified,
	"coding_sequence_variant":            ClassUnclassified,
	"sequence_variant":                   ClassUnclassified,
	"tfbs_ablation":                      ClassUnclassified,
	"tfbs_amplification":                 ClassUnclassified,
	"tf_binding_site_variant":            ClassUnclassified,
	"regulatory_region_ablation":         ClassUnclassified,
	"regulatory_region_variant":          ClassUnclassified,
	"regulatory_region_amplification":    ClassUnclassified,
	"feature_elongation":                 ClassUnclassified,
	"feature_truncation":                 ClassUnclassified,
	"protein_altering_variant":           ClassUnclassified,
	"non_coding_transcript_exon_variant": ClassUnclassified,
	"non_coding_transcript_variant":      ClassUnclassified,
	"coding_transcript_variant":          ClassUnclassified,
}

// ClassifyConsequence resolves a consequence class from the primary
// term list, taking the first term that maps to a non-unclassified
// class. When no primary term resolves, the fallback term is consulted.
func ClassifyConsequence(primary []string, fallback string) ConsequenceClass {
	for _, term := range primary {
		if c, ok := consequenceClasses[term]; ok && c != ClassUnclassified {
			return c
		}
	}
	if c, ok := consequenceClasses[fallback]; ok {
		return c
	}
	return ClassUnclassified
}
