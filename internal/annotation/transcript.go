// Package annotation defines the transcript and gene annotation model
// consumed by the PVS1 engine, plus the collaborator interfaces that
// supply it.
package annotation

// Exon is a single exon of a transcript. Exons are kept in genomic
// order (ascending Start) regardless of strand; callers reverse the
// list when working in transcription order on the minus strand.
type Exon struct {
	Number   int   // Exon ordinal (1-based, genomic order)
	Start    int64 // Genomic start (1-based)
	End      int64 // Genomic end (1-based, inclusive)
	CDSStart int64 // CDS-relative start, 0 if entirely non-coding
	CDSEnd   int64 // CDS-relative end, 0 if entirely non-coding
}

// Length returns the exon's coding length under the end-minus-start
// convention used throughout the decision arithmetic.
func (e Exon) Length() int64 {
	return e.CDSEnd - e.CDSStart
}

// Transcript tags carried on variant-level annotations.
const (
	TagManeSelect = "ManeSelect"
	TagManePlus   = "ManePlusClinical"
)

// VariantTranscript is the variant-level annotation of one transcript
// overlapping a variant.
type VariantTranscript struct {
	FeatureID    string   // Transcript accession (e.g. NM_000546.6)
	GeneID       string   // HGNC gene id (e.g. HGNC:11998)
	HGVSp        string   // Protein-level HGVS, "" or "p.?" if unknown
	HGVSc        string   // Transcript-level HGVS
	Consequences []string // Ordered molecular consequence terms
	Tags         []string // Transcript tags (TagManeSelect etc.)
	TxPos        int64    // Variant position in the transcript, 5'UTR included; -1 if unknown
	// Fallback is a single consequence term from a secondary annotation
	// source, consulted when none of Consequences classifies.
	Fallback string
}

// HasTag reports whether the annotation carries the given transcript tag.
func (t *VariantTranscript) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// GeneTranscript is the gene-level structure of one transcript: strand,
// CDS boundaries, codon positions and the exon list.
type GeneTranscript struct {
	ID         string // Transcript accession, joins VariantTranscript.FeatureID
	GeneID     string // HGNC gene id
	Strand     int8   // +1 or -1
	CDSStart   int64  // CDS start (genomic, 1-based)
	CDSEnd     int64  // CDS end (genomic, 1-based)
	StartCodon int64  // Start codon position in the transcript
	StopCodon  int64  // Stop codon position in the transcript
	Exons      []Exon // Genomic order
}

// IsForwardStrand returns true for plus-strand transcripts.
func (t *GeneTranscript) IsForwardStrand() bool {
	return t.Strand == 1
}

// CodingLength returns the summed exon coding length in bases.
func (t *GeneTranscript) CodingLength() int64 {
	var total int64
	for _, e := range t.Exons {
		total += e.Length()
	}
	return total
}

// FindExon returns the exon containing the genomic position, or nil.
func (t *GeneTranscript) FindExon(pos int64) *Exon {
	for i := range t.Exons {
		e := &t.Exons[i]
		if pos >= e.Start && pos <= e.End {
			return e
		}
	}
	return nil
}

// CdsInfo is the per-transcript CDS summary used by the start codon
// analysis, keyed by transcript id across all transcripts of a gene.
type CdsInfo struct {
	StartCodon int64
	StopCodon  int64
	CDSStart   int64
	CDSEnd     int64
	Strand     int8
	Exons      []Exon
}

// CdsStart returns the genomic position of the start codon: CDSStart on
// the plus strand, CDSEnd on the minus strand.
func (c CdsInfo) CdsStart() int64 {
	if c.Strand == 1 {
		return c.CDSStart
	}
	return c.CDSEnd
}
