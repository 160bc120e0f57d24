// Package generule provides the per-gene rule overlay: data-driven
// exceptions and threshold overrides consumed by the PVS1 engine in
// place of hard-coded gene conditionals.
package generule

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds are the numeric knobs of the decision tree. Zero values
// mean "use the engine default".
type Thresholds struct {
	CriticalRatio    float64 `yaml:"critical_ratio,omitempty"`     // pathogenic/total ratio above which a region is critical
	LoFFrequentRatio float64 `yaml:"lof_frequent_ratio,omitempty"` // frequent/total ratio above which LoF is common
	ProteinFraction  float64 `yaml:"protein_fraction,omitempty"`   // fraction of protein removed considered large
}

// Rule is the overlay record for a single gene.
type Rule struct {
	GeneID string `yaml:"gene_id"`
	// AlwaysNMD forces every premature stop in this gene to be treated
	// as undergoing nonsense-mediated decay.
	AlwaysNMD bool `yaml:"always_nmd,omitempty"`
	// TruncationCutoff grants full strength to any truncation starting
	// before this protein residue. 0 disables the exception.
	TruncationCutoff int64 `yaml:"truncation_cutoff,omitempty"`
	// Thresholds overrides the engine's numeric defaults for this gene.
	Thresholds Thresholds `yaml:"thresholds,omitempty"`
}

// Overlay is a read-only gene id to rule table. It is safe for
// concurrent reads once built.
type Overlay struct {
	rules map[string]Rule
}

// Defaults returns the built-in overlay: the hearing-loss guideline
// for GJB2 (every premature stop undergoes NMD) and the PTEN guideline
// (truncations before residue 374 are full strength).
func Defaults() *Overlay {
	return New([]Rule{
		{GeneID: "HGNC:4284", AlwaysNMD: true},
		{GeneID: "HGNC:9588", TruncationCutoff: 374},
	})
}

// New builds an overlay from a rule list. Later duplicates win.
func New(rules []Rule) *Overlay {
	m := make(map[string]Rule, len(rules))
	for _, r := range rules {
		m[r.GeneID] = r
	}
	return &Overlay{rules: m}
}

// Load reads an overlay from a YAML file and merges it over the
// built-in defaults. File entries replace default entries for the same
// gene.
func Load(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gene rules: %w", err)
	}

	var doc struct {
		Rules []Rule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse gene rules: %w", err)
	}
	for i, r := range doc.Rules {
		if r.GeneID == "" {
			return nil, fmt.Errorf("gene rules: entry %d has no gene_id", i)
		}
	}

	o := Defaults()
	for _, r := range doc.Rules {
		o.rules[r.GeneID] = r
	}
	return o, nil
}

// AlwaysNMD reports whether every premature stop in the gene is treated
// as undergoing NMD.
func (o *Overlay) AlwaysNMD(geneID string) bool {
	return o.rules[geneID].AlwaysNMD
}

// TruncationCutoff returns the gene's early-truncation residue cutoff
// and whether one is configured.
func (o *Overlay) TruncationCutoff(geneID string) (int64, bool) {
	r, ok := o.rules[geneID]
	if !ok || r.TruncationCutoff == 0 {
		return 0, false
	}
	return r.TruncationCutoff, true
}

// ThresholdOverrides returns the gene's threshold overrides. Zero
// fields mean no override.
func (o *Overlay) ThresholdOverrides(geneID string) Thresholds {
	return o.rules[geneID].Thresholds
}
