package pvs1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-acmg/internal/annotation"
	"github.com/inodb/vibe-acmg/internal/seqvar"
)

func cdsTable() map[string]annotation.CdsInfo {
	return map[string]annotation.CdsInfo{
		"NM_A.1": {CDSStart: 5000, CDSEnd: 8000, Strand: 1},
		"NM_B.1": {CDSStart: 5012, CDSEnd: 8000, Strand: 1},
		"NM_C.1": {CDSStart: 4900, CDSEnd: 8000, Strand: 1},
	}
}

func TestClosestAlternativeStart_AbsoluteDistance(t *testing.T) {
	// NM_B is 12 bases downstream, NM_C is 100 bases upstream; the
	// smaller absolute offset wins regardless of direction.
	pos, found, err := closestAlternativeStart(cdsTable(), "NM_A.1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(5012), pos)
}

func TestClosestAlternativeStart_IgnoresOtherStrand(t *testing.T) {
	cds := cdsTable()
	cds["NM_B.1"] = annotation.CdsInfo{CDSStart: 5012, CDSEnd: 8000, Strand: -1}

	pos, found, err := closestAlternativeStart(cds, "NM_A.1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(4900), pos)
}

func TestClosestAlternativeStart_IgnoresSameStart(t *testing.T) {
	cds := map[string]annotation.CdsInfo{
		"NM_A.1": {CDSStart: 5000, Strand: 1},
		"NM_B.1": {CDSStart: 5000, Strand: 1},
	}

	_, found, err := closestAlternativeStart(cds, "NM_A.1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClosestAlternativeStart_MinusStrandUsesCdsEnd(t *testing.T) {
	cds := map[string]annotation.CdsInfo{
		"NM_A.1": {CDSStart: 5000, CDSEnd: 8000, Strand: -1},
		"NM_B.1": {CDSStart: 5000, CDSEnd: 8030, Strand: -1},
	}

	pos, found, err := closestAlternativeStart(cds, "NM_A.1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(8030), pos)
}

func TestClosestAlternativeStart_MissingPrimary(t *testing.T) {
	_, _, err := closestAlternativeStart(cdsTable(), "NM_X.1")
	assert.ErrorIs(t, err, ErrMissingData)
}

func TestUpstreamPathogenicVariants_StrandAwareFirstExon(t *testing.T) {
	f := &fakeSources{clin: annotation.RangeCounts{Pathogenic: 1, Total: 3}}
	e := newTestEngine(f)
	v := seqvar.Variant{Release: seqvar.GRCh38, Chrom: "17", Pos: 1001, Ref: "T", Alt: "C"}

	gt := threeExonGene("NM_0001.1")
	var ev Evidence
	found, err := e.upstreamPathogenicVariants(context.Background(), v, &gt, &ev)
	require.NoError(t, err)
	assert.True(t, found)

	f.clin = annotation.RangeCounts{Pathogenic: 0, Total: 3}
	found, err = e.upstreamPathogenicVariants(context.Background(), v, &gt, &ev)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpstreamPathogenicVariants_MissingData(t *testing.T) {
	e := newTestEngine(&fakeSources{})
	v := seqvar.Variant{Release: seqvar.GRCh38, Chrom: "17", Pos: 1001, Ref: "T", Alt: "C"}

	var ev Evidence
	_, err := e.upstreamPathogenicVariants(context.Background(), v, &annotation.GeneTranscript{Strand: 1}, &ev)
	assert.ErrorIs(t, err, ErrMissingData)
}
