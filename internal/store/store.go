// Package store provides the local DuckDB-backed annotation store
// implementing the engine's collaborator interfaces: transcript and
// exon models, ClinVar pathogenicity counts, gnomAD loss-of-function
// frequency counts and reference sequence windows.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
	"go.uber.org/zap"

	"github.com/inodb/vibe-acmg/internal/annotation"
	"github.com/inodb/vibe-acmg/internal/seqvar"
)

// Store manages a DuckDB connection holding the annotation tables.
// It implements annotation.TranscriptSource, ClinicalSource,
// FrequencySource and SequenceSource.
type Store struct {
	db   *sql.DB
	path string
	log  *zap.Logger
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path, log: zap.NewNop()}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// SetLogger replaces the store's logger, which defaults to a no-op.
func (s *Store) SetLogger(log *zap.Logger) {
	s.log = log
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS variant_transcripts (
			assembly VARCHAR,
			chrom VARCHAR,
			pos BIGINT,
			ref VARCHAR,
			alt VARCHAR,
			feature_id VARCHAR,
			gene_id VARCHAR,
			hgvs_p VARCHAR,
			hgvs_c VARCHAR,
			consequences VARCHAR,
			fallback VARCHAR,
			tags VARCHAR,
			tx_pos BIGINT,
			PRIMARY KEY (assembly, chrom, pos, ref, alt, feature_id)
		)`,
		`CREATE TABLE IF NOT EXISTS gene_transcripts (
			assembly VARCHAR,
			transcript_id VARCHAR,
			gene_id VARCHAR,
			strand TINYINT,
			cds_start BIGINT,
			cds_end BIGINT,
			start_codon BIGINT,
			stop_codon BIGINT,
			PRIMARY KEY (assembly, transcript_id)
		)`,
		`CREATE TABLE IF NOT EXISTS transcript_exons (
			assembly VARCHAR,
			transcript_id VARCHAR,
			exon_number INTEGER,
			start_pos BIGINT,
			end_pos BIGINT,
			cds_start BIGINT,
			cds_end BIGINT,
			PRIMARY KEY (assembly, transcript_id, exon_number)
		)`,
		`CREATE TABLE IF NOT EXISTS clinvar_variants (
			assembly VARCHAR,
			chrom VARCHAR,
			pos BIGINT,
			pathogenic BOOLEAN
		)`,
		`CREATE TABLE IF NOT EXISTS gnomad_lof (
			assembly VARCHAR,
			chrom VARCHAR,
			pos BIGINT,
			popmax_af DOUBLE
		)`,
		`CREATE TABLE IF NOT EXISTS reference_sequence (
			assembly VARCHAR,
			chrom VARCHAR,
			start_pos BIGINT,
			seq VARCHAR,
			PRIMARY KEY (assembly, chrom, start_pos)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// frequentAFCutoff is the population allele frequency above which a
// single LoF variant counts as frequent.
const frequentAFCutoff = 0.001

// Transcripts returns the variant-level transcript annotations stored
// for a variant.
func (s *Store) Transcripts(ctx context.Context, v seqvar.Variant) ([]annotation.VariantTranscript, error) {
	return withRetry(ctx, s.log, "variant transcripts", func(ctx context.Context) ([]annotation.VariantTranscript, error) {
		rows, err := s.db.QueryContext(ctx, `SELECT
			feature_id, gene_id, hgvs_p, hgvs_c, consequences, fallback, tags, tx_pos
			FROM variant_transcripts
			WHERE assembly = ? AND chrom = ? AND pos = ? AND ref = ? AND alt = ?
			ORDER BY feature_id`,
			v.Release.String(), v.Chrom, v.Pos, v.Ref, v.Alt)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var out []annotation.VariantTranscript
		for rows.Next() {
			var vt annotation.VariantTranscript
			var consequences, tags string
			if err := rows.Scan(&vt.FeatureID, &vt.GeneID, &vt.HGVSp, &vt.HGVSc,
				&consequences, &vt.Fallback, &tags, &vt.TxPos); err != nil {
				return nil, err
			}
			vt.Consequences = splitList(consequences)
			vt.Tags = splitList(tags)
			out = append(out, vt)
		}
		return out, rows.Err()
	})
}

// GeneTranscripts returns all transcripts of a gene on an assembly,
// with exon lists attached in genomic order.
func (s *Store) GeneTranscripts(ctx context.Context, geneID string, release seqvar.GenomeRelease) ([]annotation.GeneTranscript, error) {
	return withRetry(ctx, s.log, "gene transcripts", func(ctx context.Context) ([]annotation.GeneTranscript, error) {
		rows, err := s.db.QueryContext(ctx, `SELECT
			transcript_id, gene_id, strand, cds_start, cds_end, start_codon, stop_codon
			FROM gene_transcripts
			WHERE assembly = ? AND gene_id = ?
			ORDER BY transcript_id`,
			release.String(), geneID)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var out []annotation.GeneTranscript
		for rows.Next() {
			var gt annotation.GeneTranscript
			if err := rows.Scan(&gt.ID, &gt.GeneID, &gt.Strand, &gt.CDSStart, &gt.CDSEnd,
				&gt.StartCodon, &gt.StopCodon); err != nil {
				return nil, err
			}
			out = append(out, gt)
		}
		if err := rows.Err(); err != nil {
			return nil, err
		}

		for i := range out {
			exons, err := s.transcriptExons(ctx, out[i].ID, release)
			if err != nil {
				return nil, err
			}
			out[i].Exons = exons
		}
		return out, nil
	})
}

func (s *Store) transcriptExons(ctx context.Context, transcriptID string, release seqvar.GenomeRelease) ([]annotation.Exon, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		exon_number, start_pos, end_pos, cds_start, cds_end
		FROM transcript_exons
		WHERE assembly = ? AND transcript_id = ?
		ORDER BY start_pos`,
		release.String(), transcriptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []annotation.Exon
	for rows.Next() {
		var e annotation.Exon
		if err := rows.Scan(&e.Number, &e.Start, &e.End, &e.CDSStart, &e.CDSEnd); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountVariantsInRange counts ClinVar variants in [start, end] on the
// variant's chromosome, split into pathogenic and total.
func (s *Store) CountVariantsInRange(ctx context.Context, v seqvar.Variant, start, end int64) (annotation.RangeCounts, error) {
	return withRetry(ctx, s.log, "clinvar range count", func(ctx context.Context) (annotation.RangeCounts, error) {
		var counts annotation.RangeCounts
		err := s.db.QueryRowContext(ctx, `SELECT
			count(*) FILTER (WHERE pathogenic), count(*)
			FROM clinvar_variants
			WHERE assembly = ? AND chrom = ? AND pos BETWEEN ? AND ?`,
			v.Release.String(), v.Chrom, start, end).
			Scan(&counts.Pathogenic, &counts.Total)
		return counts, err
	})
}

// CountLoFVariantsInRange counts loss-of-function variants in
// [start, end] on the variant's chromosome, split into those with a
// popmax allele frequency above the frequency cutoff and total.
func (s *Store) CountLoFVariantsInRange(ctx context.Context, v seqvar.Variant, start, end int64) (annotation.LoFCounts, error) {
	return withRetry(ctx, s.log, "gnomad lof count", func(ctx context.Context) (annotation.LoFCounts, error) {
		var counts annotation.LoFCounts
		err := s.db.QueryRowContext(ctx, `SELECT
			count(*) FILTER (WHERE popmax_af > ?), count(*)
			FROM gnomad_lof
			WHERE assembly = ? AND chrom = ? AND pos BETWEEN ? AND ?`,
			frequentAFCutoff, v.Release.String(), v.Chrom, start, end).
			Scan(&counts.Frequent, &counts.Total)
		return counts, err
	})
}

// Sequence returns the reference bases in [start, end) on the variant's
// chromosome, uppercase, plus strand. The containing contig row must
// cover the whole window.
func (s *Store) Sequence(ctx context.Context, v seqvar.Variant, start, end int64) (string, error) {
	return withRetry(ctx, s.log, "reference sequence", func(ctx context.Context) (string, error) {
		var seq string
		err := s.db.QueryRowContext(ctx, `SELECT
			upper(substr(seq, CAST(? - start_pos + 1 AS BIGINT), CAST(? AS BIGINT)))
			FROM reference_sequence
			WHERE assembly = ? AND chrom = ?
			  AND start_pos <= ? AND start_pos + length(seq) >= ?
			ORDER BY start_pos
			LIMIT 1`,
			start, end-start, v.Release.String(), v.Chrom, start, end).
			Scan(&seq)
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("no reference contig covers %s:%d-%d: %w", v.Chrom, start, end, sql.ErrNoRows)
		}
		return seq, err
	})
}

func splitList(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}
