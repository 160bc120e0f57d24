package pvs1

import (
	"context"
	"runtime"
	"sync"

	"github.com/inodb/vibe-acmg/internal/seqvar"
)

// WorkItem holds a resolved variant queued for evaluation.
type WorkItem struct {
	Seq     int
	Variant seqvar.Variant
}

// WorkResult holds the evaluation outcome for a single variant. A
// failed evaluation is still a Result (see Result.Err); there is no
// separate error channel.
type WorkResult struct {
	Seq    int
	Result Result
}

// ParallelEvaluate evaluates work items using a pool of workers.
// Variants are independent, so each worker runs its own evaluations
// with no shared state beyond the engine's read-only collaborators.
// Results are sent to the returned channel in arrival order (not
// sequence order). Use OrderedCollect to consume results in
// sequence-number order. If workers is 0, runtime.NumCPU() is used.
func (e *Engine) ParallelEvaluate(ctx context.Context, items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				results <- WorkResult{
					Seq:    item.Seq,
					Result: e.Evaluate(ctx, item.Variant),
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order.
// It buffers out-of-order results in a pending map and emits them
// as soon as the next expected sequence number is available.
// Blocks until the results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
