package pvs1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-acmg/internal/annotation"
	"github.com/inodb/vibe-acmg/internal/seqvar"
)

func TestCriticalRegion_Thresholds(t *testing.T) {
	tests := []struct {
		counts annotation.RangeCounts
		want   bool
	}{
		{annotation.RangeCounts{Pathogenic: 0, Total: 0}, false}, // no division error
		{annotation.RangeCounts{Pathogenic: 1, Total: 10}, true},
		{annotation.RangeCounts{Pathogenic: 3, Total: 100}, false},
		{annotation.RangeCounts{Pathogenic: 5, Total: 100}, false}, // exactly 5% is not critical
		{annotation.RangeCounts{Pathogenic: 6, Total: 100}, true},
	}
	gt := threeExonGene("NM_0001.1")
	v := nonsenseVariant()

	for _, tt := range tests {
		e := newTestEngine(&fakeSources{clin: tt.counts})
		var ev Evidence
		got, err := e.criticalRegion(context.Background(), v, &gt, defaultThresholds, &ev)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%+v", tt.counts)
	}
}

func TestCriticalRegion_MinusStrandRegion(t *testing.T) {
	// On the minus strand the altered region runs from the first exon
	// start to the variant; a variant upstream of all exons would make
	// the interval empty, not inverted.
	gt := threeExonGene("NM_0001.1")
	gt.Strand = -1
	e := newTestEngine(&fakeSources{clin: annotation.RangeCounts{Pathogenic: 1, Total: 10}})

	var ev Evidence
	got, err := e.criticalRegion(context.Background(), nonsenseVariant(), &gt, defaultThresholds, &ev)
	require.NoError(t, err)
	assert.True(t, got)

	// Variant before the first exon start inverts the interval.
	v := seqvar.Variant{Release: seqvar.GRCh38, Chrom: "17", Pos: 500, Ref: "A", Alt: "G"}
	_, err = e.criticalRegion(context.Background(), v, &gt, defaultThresholds, &ev)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCriticalRegion_MissingData(t *testing.T) {
	e := newTestEngine(&fakeSources{})

	var ev Evidence
	_, err := e.criticalRegion(context.Background(), nonsenseVariant(), &annotation.GeneTranscript{Strand: 1}, defaultThresholds, &ev)
	assert.ErrorIs(t, err, ErrMissingData)
}

func TestLofFrequentInPopulation_Thresholds(t *testing.T) {
	tests := []struct {
		counts annotation.LoFCounts
		want   bool
	}{
		{annotation.LoFCounts{Frequent: 0, Total: 0}, false},
		{annotation.LoFCounts{Frequent: 1, Total: 5}, true},
		{annotation.LoFCounts{Frequent: 1, Total: 10}, false}, // exactly 10% is not frequent
		{annotation.LoFCounts{Frequent: 2, Total: 10}, true},
	}
	gt := threeExonGene("NM_0001.1")
	v := nonsenseVariant()

	for _, tt := range tests {
		e := newTestEngine(&fakeSources{lof: tt.counts})
		var ev Evidence
		got, err := e.lofFrequentInPopulation(context.Background(), v, &gt, defaultThresholds, &ev)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%+v", tt.counts)
	}
}

func TestLofFrequentInPopulation_VariantOutsideExons(t *testing.T) {
	gt := threeExonGene("NM_0001.1")
	e := newTestEngine(&fakeSources{})
	v := seqvar.Variant{Release: seqvar.GRCh38, Chrom: "17", Pos: 1500, Ref: "A", Alt: "G"}

	var ev Evidence
	_, err := e.lofFrequentInPopulation(context.Background(), v, &gt, defaultThresholds, &ev)
	assert.ErrorIs(t, err, ErrMissingData)
}

func TestThresholds_OverlayOverrides(t *testing.T) {
	e := newTestEngine(&fakeSources{})

	th := e.thresholds("HGNC:1100")
	assert.Equal(t, defaultThresholds, th)
}
