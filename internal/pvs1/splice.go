package pvs1

import (
	"context"
	"fmt"

	"github.com/inodb/vibe-acmg/internal/annotation"
	"github.com/inodb/vibe-acmg/internal/seqvar"
	"github.com/inodb/vibe-acmg/internal/splice"
)

const (
	// spliceSearchFlank is how far around the variant cryptic sites are
	// searched, in bases each direction.
	spliceSearchFlank = 20
	// spliceScoreCutoff is the absolute splice score above which a
	// candidate site is retained.
	spliceScoreCutoff = 3.0
	// splicePercentCutoff retains a candidate scoring at least this
	// fraction of the wild-type site's score.
	splicePercentCutoff = 0.7
	// spliceSkipUpstream/Downstream bound the window around an exon in
	// which a variant can trigger skipping of that exon: the maximal
	// donor and acceptor scoring windows.
	spliceSkipUpstream   = 9
	spliceSkipDownstream = 23
)

// spliceDisruption decides whether a splice-region variant disrupts the
// reading frame, by exon skipping or by activating a cryptic splice
// site.
//
// The skipped-exon check fires first: if the exon nearest the variant
// has a length that is not a multiple of three, skipping it shifts the
// frame. Otherwise candidate cryptic sites around the variant are
// scored; a retained site whose distance to the variant is not a
// multiple of three also shifts the frame.
func (e *Engine) spliceDisruption(ctx context.Context, v seqvar.Variant, gt *annotation.GeneTranscript, consequences []string, ev *Evidence) (bool, error) {
	if gt.Strand == 0 {
		return false, fmt.Errorf("splice: strand unavailable: %w", ErrMissingData)
	}

	exon := skippableExon(v.Pos, gt.Exons)
	if exon == nil {
		return false, fmt.Errorf("splice: no exon near position %d: %w", v.Pos, ErrMissingData)
	}
	if (exon.End-exon.Start)%3 != 0 {
		ev.Addf("exon %d length %d is not a multiple of 3: skipping disrupts frame",
			exon.Number, exon.End-exon.Start)
		return true, nil
	}
	ev.Addf("exon %d length %d is a multiple of 3: skipping preserves frame",
		exon.Number, exon.End-exon.Start)

	styp := splice.TypeFromConsequences(consequences)
	if styp == splice.TypeUnknown {
		ev.Addf("splice type not determinable from consequences: no cryptic site search")
		return false, nil
	}

	sp := &splicePredictor{seqs: e.sequences, variant: v, strand: gt.Strand, exons: gt.Exons, styp: styp}
	sites, err := sp.crypticSites(ctx)
	if err != nil {
		return false, fmt.Errorf("splice: %w", err)
	}
	for _, site := range sites {
		if diff := abs64(site.Pos - v.Pos); diff%3 != 0 {
			ev.Addf("cryptic %s site at %d (score %.2f) is %d bases from variant: disrupts frame",
				styp, site.Pos, site.Score, diff)
			return true, nil
		}
	}
	ev.Addf("no frame-shifting cryptic %s site in ±%d bases", styp, spliceSearchFlank)
	return false, nil
}

// skippableExon returns the exon whose skipping the variant could
// trigger: the one whose boundary window contains the variant.
func skippableExon(pos int64, exons []annotation.Exon) *annotation.Exon {
	for i := range exons {
		e := &exons[i]
		if e.Start-spliceSkipUpstream <= pos && pos <= e.End+spliceSkipDownstream {
			return e
		}
	}
	return nil
}

// crypticSite is a candidate splice site retained by the search.
type crypticSite struct {
	Pos     int64
	Context string
	Score   float64
}

// splicePredictor scores candidate splice windows around a variant
// against the wild-type site.
type splicePredictor struct {
	seqs    annotation.SequenceSource
	variant seqvar.Variant
	strand  int8
	exons   []annotation.Exon
	styp    splice.Type
}

// crypticSites scans every window start in the search flank and retains
// windows that score like real splice sites: consensus motif (GT donor,
// AG acceptor, or the wild-type site's own motif), score above 1, and
// either above the absolute cutoff or at 70% of the wild-type score.
func (p *splicePredictor) crypticSites(ctx context.Context) ([]crypticSite, error) {
	refMotif, refScore, err := p.referenceSite(ctx)
	if err != nil {
		return nil, err
	}

	var sites []crypticSite
	for offset := int64(-spliceSearchFlank); offset <= spliceSearchFlank; offset++ {
		pos := p.variant.Pos + offset
		window, err := p.window(ctx, pos)
		if err != nil {
			return nil, err
		}
		score := p.score(window)
		if !p.hasConsensusMotif(window, refMotif) || score <= 1 {
			continue
		}
		if score >= spliceScoreCutoff || (refScore > 0 && score/refScore >= splicePercentCutoff) {
			sites = append(sites, crypticSite{Pos: pos, Context: window, Score: score})
		}
	}
	return sites, nil
}

// window fetches the scoring window starting at the genomic position,
// mutated with the variant's alternate bases and oriented to the coding
// strand.
func (p *splicePredictor) window(ctx context.Context, start int64) (string, error) {
	n := int64(splice.DonorWindow)
	if p.styp == splice.TypeAcceptor {
		n = splice.AcceptorWindow
	}
	raw, err := p.seqs.Sequence(ctx, p.variant, start, start+n)
	if err != nil {
		return "", err
	}
	mutated := mutateWindow(raw, start, p.variant)
	if int64(len(mutated)) > n {
		mutated = mutated[:n]
	}
	if p.strand < 0 {
		mutated = splice.ReverseComplement(mutated)
	}
	return mutated, nil
}

// mutateWindow splices the variant's alternate bases into a plus-strand
// reference window. Positions outside the window leave it unchanged.
func mutateWindow(window string, windowStart int64, v seqvar.Variant) string {
	idx := v.Pos - windowStart
	if idx < 0 || idx >= int64(len(window)) {
		return window
	}
	end := idx + int64(len(v.Ref))
	if end > int64(len(window)) {
		end = int64(len(window))
	}
	return window[:idx] + v.Alt + window[end:]
}

func (p *splicePredictor) score(window string) float64 {
	if p.styp == splice.TypeAcceptor {
		return splice.Score3(window)
	}
	return splice.Score5(window)
}

// hasConsensusMotif checks the two-base splice consensus inside the
// window: GT at offsets 3-4 for donors, AG at offsets 18-19 for
// acceptors, or whatever motif the wild-type site carries there.
func (p *splicePredictor) hasConsensusMotif(window, refWindow string) bool {
	lo, hi, want := 3, 5, "GT"
	if p.styp == splice.TypeAcceptor {
		lo, hi, want = 18, 20, "AG"
	}
	if len(window) < hi {
		return false
	}
	motif := window[lo:hi]
	if motif == want {
		return true
	}
	return len(refWindow) >= hi && motif == refWindow[lo:hi]
}

// referenceSite locates the wild-type splice site the variant affects
// and returns its oriented window and score. A transcript without a
// locatable site yields an empty window and a zero score; the search
// then falls back to the absolute cutoff alone.
func (p *splicePredictor) referenceSite(ctx context.Context) (string, float64, error) {
	start, ok := p.referenceWindowStart()
	if !ok {
		return "", 0, nil
	}
	n := int64(splice.DonorWindow)
	if p.styp == splice.TypeAcceptor {
		n = splice.AcceptorWindow
	}
	raw, err := p.seqs.Sequence(ctx, p.variant, start, start+n)
	if err != nil {
		return "", 0, err
	}
	if p.strand < 0 {
		raw = splice.ReverseComplement(raw)
	}
	return raw, p.score(raw), nil
}

// referenceWindowStart returns the genomic start of the wild-type
// splice window nearest the variant, strand and type aware.
func (p *splicePredictor) referenceWindowStart() (int64, bool) {
	pos := p.variant.Pos
	if p.strand > 0 {
		if p.styp == splice.TypeDonor {
			// Donor at the end of the exon preceding the variant's intron.
			for i := 0; i+1 < len(p.exons); i++ {
				if p.exons[i].End <= pos && pos <= p.exons[i+1].Start {
					return p.exons[i].End - 2, true
				}
			}
		} else {
			// Acceptor at the start of the first exon at or after the variant.
			for i := range p.exons {
				if p.exons[i].Start >= pos {
					return p.exons[i].Start - 20, true
				}
			}
		}
		return 0, false
	}

	if p.styp == splice.TypeDonor {
		// Minus strand donor sits at the genomic start of the exon.
		for i := range p.exons {
			if p.exons[i].Start >= pos {
				return p.exons[i].Start - 6, true
			}
		}
	} else {
		for i := 0; i+1 < len(p.exons); i++ {
			if p.exons[i].End <= pos && pos <= p.exons[i+1].Start {
				return p.exons[i].End - 2, true
			}
		}
	}
	return 0, false
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
