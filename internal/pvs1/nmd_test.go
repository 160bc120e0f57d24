package pvs1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-acmg/internal/annotation"
)

func TestUndergoesNMD_CutoffWorkedExample(t *testing.T) {
	// Exon lengths [100, 100, 40]: cutoff = 200 - min(50, 100) = 150.
	gt := threeExonGene("NM_0001.1")
	e := newTestEngine(&fakeSources{})

	tests := []struct {
		stop int64
		want bool
	}{
		{140, true},
		{150, true},
		{151, false},
		{160, false},
	}
	for _, tt := range tests {
		var ev Evidence
		got, err := e.undergoesNMD(tt.stop, "HGNC:1100", &gt, &ev)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "stop %d", tt.stop)
	}
}

func TestUndergoesNMD_SingleExonEscapes(t *testing.T) {
	gt := annotation.GeneTranscript{
		ID:     "NM_0001.1",
		Strand: 1,
		Exons:  []annotation.Exon{{Number: 1, Start: 1000, End: 2000, CDSStart: 0, CDSEnd: 1000}},
	}
	e := newTestEngine(&fakeSources{})

	var ev Evidence
	got, err := e.undergoesNMD(10, "HGNC:1100", &gt, &ev)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestUndergoesNMD_MinusStrandReversesExons(t *testing.T) {
	// Genomic order lengths [40, 100, 100]; in transcription order on
	// the minus strand they are [100, 100, 40], same cutoff 150.
	gt := annotation.GeneTranscript{
		ID:     "NM_0001.1",
		Strand: -1,
		Exons: []annotation.Exon{
			{Number: 1, Start: 1000, End: 1040, CDSStart: 0, CDSEnd: 40},
			{Number: 2, Start: 2000, End: 2100, CDSStart: 40, CDSEnd: 140},
			{Number: 3, Start: 3000, End: 3100, CDSStart: 140, CDSEnd: 240},
		},
	}
	e := newTestEngine(&fakeSources{})

	var ev Evidence
	got, err := e.undergoesNMD(140, "HGNC:1100", &gt, &ev)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = e.undergoesNMD(160, "HGNC:1100", &gt, &ev)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestUndergoesNMD_AlwaysNMDGene(t *testing.T) {
	gt := threeExonGene("NM_0001.1")
	e := newTestEngine(&fakeSources{})

	var ev Evidence
	got, err := e.undergoesNMD(10000, "HGNC:4284", &gt, &ev)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestUndergoesNMD_MissingData(t *testing.T) {
	e := newTestEngine(&fakeSources{})

	var ev Evidence
	_, err := e.undergoesNMD(100, "HGNC:1100", &annotation.GeneTranscript{ID: "NM_0001.1", Strand: 1}, &ev)
	assert.ErrorIs(t, err, ErrMissingData)

	gt := threeExonGene("NM_0001.1")
	gt.Strand = 0
	_, err = e.undergoesNMD(100, "HGNC:1100", &gt, &ev)
	assert.ErrorIs(t, err, ErrMissingData)
}
