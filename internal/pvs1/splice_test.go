package pvs1

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-acmg/internal/annotation"
	"github.com/inodb/vibe-acmg/internal/seqvar"
	"github.com/inodb/vibe-acmg/internal/splice"
)

// spliceGene has exons whose genomic lengths are all multiples of 3,
// so the skip check alone never disrupts the frame.
func spliceGene() annotation.GeneTranscript {
	return annotation.GeneTranscript{
		ID:     "NM_0001.1",
		GeneID: "HGNC:1100",
		Strand: 1,
		Exons: []annotation.Exon{
			{Number: 1, Start: 1000, End: 1099, CDSStart: 0, CDSEnd: 99},
			{Number: 2, Start: 2000, End: 2099, CDSStart: 99, CDSEnd: 198},
			{Number: 3, Start: 3000, End: 3099, CDSStart: 198, CDSEnd: 297},
		},
	}
}

// spliceGenome plants the donor consensus at the exon 2 reference donor
// window (2097) and a cryptic copy at 2110, on a T-only background.
func spliceGenome() *fakeSources {
	base := int64(2070)
	genome := []byte(strings.Repeat("T", 80))
	plant := func(pos int64, motif string) {
		copy(genome[pos-base:], motif)
	}
	plant(2097, "CAGGTAAGT")
	plant(2110, "CAGGTAAGT")
	return &fakeSources{genome: string(genome), seqBase: base}
}

func TestSkippableExon(t *testing.T) {
	exons := spliceGene().Exons

	e := skippableExon(2102, exons)
	require.NotNil(t, e)
	assert.Equal(t, 2, e.Number)

	// 9 bases upstream of an exon start still selects it.
	e = skippableExon(1995, exons)
	require.NotNil(t, e)
	assert.Equal(t, 2, e.Number)

	assert.Nil(t, skippableExon(2500, exons))
}

func TestMutateWindow(t *testing.T) {
	v := seqvar.Variant{Pos: 105, Ref: "A", Alt: "G"}
	assert.Equal(t, "TTTTTGTTT", mutateWindow("TTTTTATTT", 100, v))

	// Variant outside the window leaves it unchanged.
	v = seqvar.Variant{Pos: 200, Ref: "A", Alt: "G"}
	assert.Equal(t, "TTTTTATTT", mutateWindow("TTTTTATTT", 100, v))

	// Deletion shortens the window.
	v = seqvar.Variant{Pos: 103, Ref: "TTT", Alt: "T"}
	assert.Equal(t, "TTTTTTT", mutateWindow("TTTTTTTTT", 100, v))
}

func TestCrypticSites_FindsPlantedDonor(t *testing.T) {
	f := spliceGenome()
	v := seqvar.Variant{Release: seqvar.GRCh38, Chrom: "17", Pos: 2102, Ref: "A", Alt: "T"}
	gt := spliceGene()

	sp := &splicePredictor{seqs: f, variant: v, strand: gt.Strand, exons: gt.Exons, styp: splice.TypeDonor}
	sites, err := sp.crypticSites(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, sites)

	var positions []int64
	for _, s := range sites {
		positions = append(positions, s.Pos)
		assert.Greater(t, s.Score, 1.0)
		assert.Equal(t, "GT", s.Context[3:5])
	}
	assert.Contains(t, positions, int64(2110))
}

func TestSpliceDisruption_CrypticSiteShiftsFrame(t *testing.T) {
	// The cryptic donor at 2110 is 8 bases from the variant: not a
	// multiple of 3, so splicing there shifts the frame.
	f := spliceGenome()
	e := newTestEngine(f)
	gt := spliceGene()
	v := seqvar.Variant{Release: seqvar.GRCh38, Chrom: "17", Pos: 2102, Ref: "A", Alt: "T"}

	var ev Evidence
	disrupts, err := e.spliceDisruption(context.Background(), v, &gt, []string{"splice_donor_variant"}, &ev)
	require.NoError(t, err)
	assert.True(t, disrupts)
}

func TestSpliceDisruption_NoCrypticSitePreservesFrame(t *testing.T) {
	// No donor motifs anywhere near the variant.
	f := &fakeSources{genome: strings.Repeat("T", 80), seqBase: 2070}
	e := newTestEngine(f)
	gt := spliceGene()
	v := seqvar.Variant{Release: seqvar.GRCh38, Chrom: "17", Pos: 2102, Ref: "T", Alt: "A"}

	var ev Evidence
	disrupts, err := e.spliceDisruption(context.Background(), v, &gt, []string{"splice_donor_variant"}, &ev)
	require.NoError(t, err)
	assert.False(t, disrupts)
}

func TestSpliceDisruption_ExonSkipShiftsFrame(t *testing.T) {
	gt := spliceGene()
	// Stretch exon 2 by one base so its length is no longer a multiple
	// of 3; the skip check decides without any sequence lookup.
	gt.Exons[1].End = 2100
	e := newTestEngine(&fakeSources{})
	v := seqvar.Variant{Release: seqvar.GRCh38, Chrom: "17", Pos: 2102, Ref: "A", Alt: "T"}

	var ev Evidence
	disrupts, err := e.spliceDisruption(context.Background(), v, &gt, []string{"splice_donor_variant"}, &ev)
	require.NoError(t, err)
	assert.True(t, disrupts)
}

func TestSpliceDisruption_UnknownTypeSkipsCrypticSearch(t *testing.T) {
	e := newTestEngine(&fakeSources{})
	gt := spliceGene()
	v := seqvar.Variant{Release: seqvar.GRCh38, Chrom: "17", Pos: 2102, Ref: "A", Alt: "T"}

	var ev Evidence
	disrupts, err := e.spliceDisruption(context.Background(), v, &gt, []string{"splice_region_variant"}, &ev)
	require.NoError(t, err)
	assert.False(t, disrupts)
}

func TestSpliceDisruption_MissingStrand(t *testing.T) {
	e := newTestEngine(&fakeSources{})
	gt := spliceGene()
	gt.Strand = 0
	v := seqvar.Variant{Release: seqvar.GRCh38, Chrom: "17", Pos: 2102, Ref: "A", Alt: "T"}

	var ev Evidence
	_, err := e.spliceDisruption(context.Background(), v, &gt, []string{"splice_donor_variant"}, &ev)
	assert.ErrorIs(t, err, ErrMissingData)
}

func TestReferenceWindowStart(t *testing.T) {
	gt := spliceGene()

	// Plus strand donor: window anchored at the end of the exon
	// preceding the variant's intron.
	sp := &splicePredictor{strand: 1, exons: gt.Exons, styp: splice.TypeDonor,
		variant: seqvar.Variant{Pos: 2102}}
	start, ok := sp.referenceWindowStart()
	require.True(t, ok)
	assert.Equal(t, int64(2097), start)

	// Plus strand acceptor: window anchored at the start of the next
	// exon.
	sp.styp = splice.TypeAcceptor
	sp.variant.Pos = 2995
	start, ok = sp.referenceWindowStart()
	require.True(t, ok)
	assert.Equal(t, int64(2980), start)

	// Minus strand donor sits at the genomic start of the exon.
	sp = &splicePredictor{strand: -1, exons: gt.Exons, styp: splice.TypeDonor,
		variant: seqvar.Variant{Pos: 2995}}
	start, ok = sp.referenceWindowStart()
	require.True(t, ok)
	assert.Equal(t, int64(2994), start)
}
