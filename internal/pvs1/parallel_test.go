package pvs1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-acmg/internal/annotation"
	"github.com/inodb/vibe-acmg/internal/seqvar"
)

func TestParallelEvaluate_OrderedCollect(t *testing.T) {
	f := &fakeSources{
		vts: []annotation.VariantTranscript{{
			FeatureID:    "NM_0001.1",
			GeneID:       "HGNC:1100",
			HGVSp:        "p.Gln47Ter",
			Consequences: []string{"stop_gained"},
			Tags:         []string{annotation.TagManeSelect},
			TxPos:        140,
		}},
		gts: []annotation.GeneTranscript{threeExonGene("NM_0001.1")},
	}
	e := newTestEngine(f)

	const n = 25
	items := make(chan WorkItem, n)
	for i := 0; i < n; i++ {
		items <- WorkItem{Seq: i, Variant: seqvar.Variant{
			Release: seqvar.GRCh38, Chrom: "17", Pos: int64(2050 + i), Ref: "C", Alt: "T",
		}}
	}
	close(items)

	results := e.ParallelEvaluate(context.Background(), items, 4)

	var seen []int
	err := OrderedCollect(results, func(r WorkResult) error {
		seen = append(seen, r.Seq)
		assert.Equal(t, PathNF1, r.Result.Path)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, seen, n)
	for i, s := range seen {
		assert.Equal(t, i, s)
	}
}

func TestParallelEvaluate_FailuresIsolate(t *testing.T) {
	// Transcript lookup fails for every variant, so every result is a
	// failed evaluation, but the batch itself completes.
	f := &fakeSources{}
	e := newTestEngine(f)

	items := make(chan WorkItem, 3)
	for i := 0; i < 3; i++ {
		items <- WorkItem{Seq: i, Variant: nonsenseVariant()}
	}
	close(items)

	count := 0
	err := OrderedCollect(e.ParallelEvaluate(context.Background(), items, 2), func(r WorkResult) error {
		count++
		assert.Error(t, r.Result.Err)
		assert.Equal(t, StrengthUnsupported, r.Result.Strength)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
