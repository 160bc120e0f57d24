package annotation

import (
	"context"

	"github.com/inodb/vibe-acmg/internal/seqvar"
)

// RangeCounts is the result of a clinical-significance range query.
type RangeCounts struct {
	Pathogenic int // Variants asserted (likely) pathogenic
	Total      int // All variants with clinical assertions in range
}

// LoFCounts is the result of a population loss-of-function range query.
type LoFCounts struct {
	Frequent int // LoF variants with population AF above the frequency cutoff
	Total    int // All nonsense/frameshift variants in range
}

// TranscriptSource supplies variant- and gene-level transcript data.
type TranscriptSource interface {
	// Transcripts returns all variant-level transcript annotations
	// overlapping the variant.
	Transcripts(ctx context.Context, v seqvar.Variant) ([]VariantTranscript, error)

	// GeneTranscripts returns all transcripts of a gene on the
	// variant's assembly.
	GeneTranscripts(ctx context.Context, geneID string, release seqvar.GenomeRelease) ([]GeneTranscript, error)
}

// ClinicalSource counts known clinical variants in a genomic interval.
type ClinicalSource interface {
	CountVariantsInRange(ctx context.Context, v seqvar.Variant, start, end int64) (RangeCounts, error)
}

// FrequencySource counts loss-of-function variants and their population
// frequency in a genomic interval.
type FrequencySource interface {
	CountLoFVariantsInRange(ctx context.Context, v seqvar.Variant, start, end int64) (LoFCounts, error)
}

// SequenceSource retrieves reference genome sequence for splice scoring.
type SequenceSource interface {
	// Sequence returns the reference bases in [start, end) on the
	// variant's chromosome, uppercase, plus strand.
	Sequence(ctx context.Context, v seqvar.Variant, start, end int64) (string, error)
}
