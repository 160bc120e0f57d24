package store

import (
	"context"
	"sync"

	"github.com/inodb/vibe-acmg/internal/annotation"
	"github.com/inodb/vibe-acmg/internal/seqvar"
)

// rangeKey identifies a range-count query. Correlated variants in the
// same gene repeat the same altered-region and exon queries, so the
// counts are worth memoizing across evaluations.
type rangeKey struct {
	release    seqvar.GenomeRelease
	chrom      string
	start, end int64
}

// Memoized caches range-count query results in front of clinical and
// frequency sources. Entries are immutable once stored and writes are
// idempotent, so concurrent evaluations may race on population without
// harm: both compute the same value.
type Memoized struct {
	clinical  annotation.ClinicalSource
	frequency annotation.FrequencySource

	mu    sync.RWMutex
	clin  map[rangeKey]annotation.RangeCounts
	lof   map[rangeKey]annotation.LoFCounts
}

// NewMemoized wraps the given sources with a query memo.
func NewMemoized(clinical annotation.ClinicalSource, frequency annotation.FrequencySource) *Memoized {
	return &Memoized{
		clinical:  clinical,
		frequency: frequency,
		clin:      make(map[rangeKey]annotation.RangeCounts),
		lof:       make(map[rangeKey]annotation.LoFCounts),
	}
}

// CountVariantsInRange returns the memoized clinical counts for the
// range, querying the underlying source on a miss. Errors are not
// cached, so a transient failure does not poison the memo.
func (m *Memoized) CountVariantsInRange(ctx context.Context, v seqvar.Variant, start, end int64) (annotation.RangeCounts, error) {
	key := rangeKey{v.Release, v.Chrom, start, end}

	m.mu.RLock()
	counts, ok := m.clin[key]
	m.mu.RUnlock()
	if ok {
		return counts, nil
	}

	counts, err := m.clinical.CountVariantsInRange(ctx, v, start, end)
	if err != nil {
		return counts, err
	}

	m.mu.Lock()
	m.clin[key] = counts
	m.mu.Unlock()
	return counts, nil
}

// CountLoFVariantsInRange returns the memoized LoF counts for the
// range, querying the underlying source on a miss.
func (m *Memoized) CountLoFVariantsInRange(ctx context.Context, v seqvar.Variant, start, end int64) (annotation.LoFCounts, error) {
	key := rangeKey{v.Release, v.Chrom, start, end}

	m.mu.RLock()
	counts, ok := m.lof[key]
	m.mu.RUnlock()
	if ok {
		return counts, nil
	}

	counts, err := m.frequency.CountLoFVariantsInRange(ctx, v, start, end)
	if err != nil {
		return counts, err
	}

	m.mu.Lock()
	m.lof[key] = counts
	m.mu.Unlock()
	return counts, nil
}
