package store

import (
	"strings"

	"github.com/inodb/vibe-acmg/internal/annotation"
	"github.com/inodb/vibe-acmg/internal/seqvar"
)

// PutVariantTranscript inserts one variant-level transcript annotation.
func (s *Store) PutVariantTranscript(v seqvar.Variant, vt annotation.VariantTranscript) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO variant_transcripts
		(assembly, chrom, pos, ref, alt, feature_id, gene_id, hgvs_p, hgvs_c,
		 consequences, fallback, tags, tx_pos)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Release.String(), v.Chrom, v.Pos, v.Ref, v.Alt,
		vt.FeatureID, vt.GeneID, vt.HGVSp, vt.HGVSc,
		strings.Join(vt.Consequences, ","), vt.Fallback, strings.Join(vt.Tags, ","), vt.TxPos)
	return err
}

// PutGeneTranscript inserts one gene-level transcript and its exons.
func (s *Store) PutGeneTranscript(release seqvar.GenomeRelease, gt annotation.GeneTranscript) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO gene_transcripts
		(assembly, transcript_id, gene_id, strand, cds_start, cds_end, start_codon, stop_codon)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		release.String(), gt.ID, gt.GeneID, gt.Strand, gt.CDSStart, gt.CDSEnd,
		gt.StartCodon, gt.StopCodon)
	if err != nil {
		return err
	}
	for _, e := range gt.Exons {
		if _, err := s.db.Exec(`INSERT OR REPLACE INTO transcript_exons
			(assembly, transcript_id, exon_number, start_pos, end_pos, cds_start, cds_end)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			release.String(), gt.ID, e.Number, e.Start, e.End, e.CDSStart, e.CDSEnd); err != nil {
			return err
		}
	}
	return nil
}

// PutClinvarVariant inserts one clinical variant observation.
func (s *Store) PutClinvarVariant(release seqvar.GenomeRelease, chrom string, pos int64, pathogenic bool) error {
	_, err := s.db.Exec(`INSERT INTO clinvar_variants (assembly, chrom, pos, pathogenic)
		VALUES (?, ?, ?, ?)`,
		release.String(), chrom, pos, pathogenic)
	return err
}

// PutLoFVariant inserts one population loss-of-function observation.
func (s *Store) PutLoFVariant(release seqvar.GenomeRelease, chrom string, pos int64, popmaxAF float64) error {
	_, err := s.db.Exec(`INSERT INTO gnomad_lof (assembly, chrom, pos, popmax_af)
		VALUES (?, ?, ?, ?)`,
		release.String(), chrom, pos, popmaxAF)
	return err
}

// PutReferenceContig inserts a reference sequence block starting at the
// given 1-based position.
func (s *Store) PutReferenceContig(release seqvar.GenomeRelease, chrom string, start int64, seq string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO reference_sequence
		(assembly, chrom, start_pos, seq)
		VALUES (?, ?, ?, ?)`,
		release.String(), chrom, start, seq)
	return err
}
