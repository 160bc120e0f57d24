// Package pvs1 implements the ACMG PVS1 decision engine for sequence
// variants: a fixed branching tree over consequence class, NMD
// prediction, region criticality, population LoF frequency, protein
// truncation extent and splice disruption, terminating in one of the
// named decision paths with an auditable evidence trace.
package pvs1

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/inodb/vibe-acmg/internal/annotation"
	"github.com/inodb/vibe-acmg/internal/generule"
	"github.com/inodb/vibe-acmg/internal/seqvar"
)

// Thresholds are the numeric decision knobs, resolvable per gene via
// the rule overlay.
type Thresholds struct {
	CriticalRatio    float64 // pathogenic/total above which a region is critical
	LoFFrequentRatio float64 // frequent/total above which LoF is population-frequent
	ProteinFraction  float64 // removed fraction above which a truncation is large
}

var defaultThresholds = Thresholds{
	CriticalRatio:    0.05,
	LoFFrequentRatio: 0.10,
	ProteinFraction:  0.10,
}

// Engine evaluates the PVS1 criterion. It is stateless across
// evaluations apart from the read-only collaborators, so a single
// Engine is safe for concurrent use.
type Engine struct {
	transcripts annotation.TranscriptSource
	clinical    annotation.ClinicalSource
	frequency   annotation.FrequencySource
	sequences   annotation.SequenceSource
	rules       *generule.Overlay
	log         *zap.Logger
}

// NewEngine builds an engine over the given annotation sources. A nil
// rules overlay falls back to the built-in defaults.
func NewEngine(
	transcripts annotation.TranscriptSource,
	clinical annotation.ClinicalSource,
	frequency annotation.FrequencySource,
	sequences annotation.SequenceSource,
	rules *generule.Overlay,
) *Engine {
	if rules == nil {
		rules = generule.Defaults()
	}
	return &Engine{
		transcripts: transcripts,
		clinical:    clinical,
		frequency:   frequency,
		sequences:   sequences,
		rules:       rules,
		log:         zap.NewNop(),
	}
}

// SetLogger replaces the engine's logger, which defaults to a no-op.
func (e *Engine) SetLogger(log *zap.Logger) {
	e.log = log
}

// thresholds resolves the decision thresholds for a gene: the defaults
// with any non-zero overlay overrides applied.
func (e *Engine) thresholds(geneID string) Thresholds {
	th := defaultThresholds
	ov := e.rules.ThresholdOverrides(geneID)
	if ov.CriticalRatio > 0 {
		th.CriticalRatio = ov.CriticalRatio
	}
	if ov.LoFFrequentRatio > 0 {
		th.LoFFrequentRatio = ov.LoFFrequentRatio
	}
	if ov.ProteinFraction > 0 {
		th.ProteinFraction = ov.ProteinFraction
	}
	return th
}

// Evaluate runs the PVS1 decision tree for one variant and always
// returns a Result. Analyzer failures are caught here: the result then
// carries StrengthUnsupported with Err set and the failure recorded in
// the evidence trace, so one bad variant never disturbs others.
func (e *Engine) Evaluate(ctx context.Context, v seqvar.Variant) Result {
	res := Result{Variant: v, Strength: StrengthUnsupported, Path: PathNone}

	pair, err := e.resolveTranscript(ctx, v, &res)
	if err != nil {
		return e.fail(res, err)
	}
	res.Transcript = pair.Variant.FeatureID
	res.GeneID = pair.Variant.GeneID

	res.Consequence = ClassifyConsequence(pair.Variant.Consequences, pair.Variant.Fallback)
	e.log.Debug("consequence classified",
		zap.String("variant", v.String()),
		zap.String("class", res.Consequence.String()))

	var path Path
	switch res.Consequence {
	case ClassNonsenseOrFrameshift:
		path, err = e.evalNonsenseFrameshift(ctx, v, pair, &res.Evidence)
	case ClassSpliceSite:
		path, err = e.evalSpliceSite(ctx, v, pair, &res.Evidence)
	case ClassInitiationCodon:
		path, err = e.evalInitiationCodon(ctx, v, pair, &res.Evidence)
	default:
		res.Evidence.Addf("consequence class %s is not supported by PVS1", res.Consequence)
		return res
	}
	if err != nil {
		return e.fail(res, err)
	}

	res.Path = path
	res.Strength = path.StrengthFor()
	res.Evidence.Addf("decision path %s: %s", path, path.Description())
	return res
}

// fail converts an analyzer error into the terminal failed result.
func (e *Engine) fail(res Result, err error) Result {
	res.Strength = StrengthUnsupported
	res.Path = PathNone
	res.Err = err
	res.Evidence.Addf("evaluation failed: %v", err)
	e.log.Warn("pvs1 evaluation failed",
		zap.String("variant", res.Variant.String()),
		zap.Error(err))
	return res
}

// resolveTranscript fetches annotations and selects the representative
// transcript pair, building the gene-wide CDS table on the way.
func (e *Engine) resolveTranscript(ctx context.Context, v seqvar.Variant, res *Result) (evalPair, error) {
	vts, err := e.transcripts.Transcripts(ctx, v)
	if err != nil {
		return evalPair{}, fmt.Errorf("fetch variant transcripts: %w", err)
	}
	if len(vts) == 0 {
		return evalPair{}, ErrNoTranscript
	}

	gts, err := e.transcripts.GeneTranscripts(ctx, vts[0].GeneID, v.Release)
	if err != nil {
		return evalPair{}, fmt.Errorf("fetch gene transcripts: %w", err)
	}

	pair, err := SelectTranscript(vts, gts)
	if err != nil {
		return evalPair{}, err
	}
	res.Evidence.Addf("selected transcript %s for gene %s", pair.Variant.FeatureID, pair.Variant.GeneID)

	cds := make(map[string]annotation.CdsInfo, len(gts))
	for i := range gts {
		gt := &gts[i]
		cds[gt.ID] = annotation.CdsInfo{
			StartCodon: gt.StartCodon,
			StopCodon:  gt.StopCodon,
			CDSStart:   gt.CDSStart,
			CDSEnd:     gt.CDSEnd,
			Strand:     gt.Strand,
			Exons:      gt.Exons,
		}
	}
	return evalPair{TranscriptPair: pair, cds: cds}, nil
}

// evalPair is the selected transcript pair plus the gene-wide CDS
// table needed by the initiation codon branch.
type evalPair struct {
	TranscriptPair
	cds map[string]annotation.CdsInfo
}

// evalNonsenseFrameshift walks the nonsense/frameshift subtree.
func (e *Engine) evalNonsenseFrameshift(ctx context.Context, v seqvar.Variant, pair evalPair, ev *Evidence) (Path, error) {
	geneID := pair.Variant.GeneID
	th := e.thresholds(geneID)
	termination := TerminationPosition(pair.Variant.HGVSp)

	// Gene-specific early-truncation exception (PTEN-style cutoffs).
	if cutoff, ok := e.rules.TruncationCutoff(geneID); ok && termination > 0 && termination < cutoff {
		ev.Addf("gene %s: truncation at residue %d before cutoff %d", geneID, termination, cutoff)
		return PathGeneException, nil
	}

	relevant := pair.Variant.HasTag(annotation.TagManeSelect)

	nmd, err := e.undergoesNMD(pair.Variant.TxPos, geneID, pair.Gene, ev)
	if err != nil {
		return PathNone, err
	}
	if nmd {
		if relevant {
			return PathNF1, nil
		}
		return PathNF2, nil
	}

	critical, err := e.criticalRegion(ctx, v, pair.Gene, th, ev)
	if err != nil {
		return PathNone, err
	}
	if critical {
		return PathNF3, nil
	}

	frequent, err := e.lofFrequentInPopulation(ctx, v, pair.Gene, th, ev)
	if err != nil {
		return PathNone, err
	}
	if frequent || !relevant {
		return PathNF4, nil
	}

	large, err := removesLargeProteinFraction(termination, pair.Gene.CodingLength()/3, th, ev)
	if err != nil {
		return PathNone, err
	}
	if large {
		return PathNF5, nil
	}
	return PathNF6, nil
}

// evalSpliceSite walks the splice subtree.
func (e *Engine) evalSpliceSite(ctx context.Context, v seqvar.Variant, pair evalPair, ev *Evidence) (Path, error) {
	geneID := pair.Variant.GeneID
	th := e.thresholds(geneID)
	relevant := pair.Variant.HasTag(annotation.TagManeSelect)

	disrupts, err := e.spliceDisruption(ctx, v, pair.Gene, pair.Variant.Consequences, ev)
	if err != nil {
		return PathNone, err
	}

	if disrupts {
		nmd, err := e.undergoesNMD(pair.Variant.TxPos, geneID, pair.Gene, ev)
		if err != nil {
			return PathNone, err
		}
		if nmd {
			if relevant {
				return PathSS1, nil
			}
			return PathSS2, nil
		}

		critical, err := e.criticalRegion(ctx, v, pair.Gene, th, ev)
		if err != nil {
			return PathNone, err
		}
		if critical {
			return PathSS3, nil
		}

		frequent, err := e.lofFrequentInPopulation(ctx, v, pair.Gene, th, ev)
		if err != nil {
			return PathNone, err
		}
		if frequent || !relevant {
			return PathSS4, nil
		}

		large, err := removesLargeProteinFraction(TerminationPosition(pair.Variant.HGVSp), pair.Gene.CodingLength()/3, th, ev)
		if err != nil {
			return PathNone, err
		}
		if large {
			return PathSS5, nil
		}
		return PathSS6, nil
	}

	critical, err := e.criticalRegion(ctx, v, pair.Gene, th, ev)
	if err != nil {
		return PathNone, err
	}
	if critical {
		return PathSS10, nil
	}

	frequent, err := e.lofFrequentInPopulation(ctx, v, pair.Gene, th, ev)
	if err != nil {
		return PathNone, err
	}
	if frequent || !relevant {
		return PathSS7, nil
	}

	large, err := removesLargeProteinFraction(TerminationPosition(pair.Variant.HGVSp), pair.Gene.CodingLength()/3, th, ev)
	if err != nil {
		return PathNone, err
	}
	if large {
		return PathSS8, nil
	}
	return PathSS9, nil
}

// evalInitiationCodon walks the initiation codon subtree. An existing
// alternative start codon short-circuits to IC3 before any clinical
// lookup.
func (e *Engine) evalInitiationCodon(ctx context.Context, v seqvar.Variant, pair evalPair, ev *Evidence) (Path, error) {
	altStart, found, err := closestAlternativeStart(pair.cds, pair.Variant.FeatureID)
	if err != nil {
		return PathNone, err
	}
	if found {
		ev.Addf("alternative start codon at %d in sibling transcript", altStart)
		return PathIC3, nil
	}
	ev.Addf("no alternative start codon in sibling transcripts")

	upstream, err := e.upstreamPathogenicVariants(ctx, v, pair.Gene, ev)
	if err != nil {
		return PathNone, err
	}
	if upstream {
		return PathIC1, nil
	}
	return PathIC2, nil
}
