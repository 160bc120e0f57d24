package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-acmg/internal/generule"
	"github.com/inodb/vibe-acmg/internal/pvs1"
	"github.com/inodb/vibe-acmg/internal/report"
	"github.com/inodb/vibe-acmg/internal/seqvar"
	"github.com/inodb/vibe-acmg/internal/store"
)

func newClassifyCmd() *cobra.Command {
	var (
		assembly   string
		inputFile  string
		outputFile string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "classify [variant ...]",
		Short: "Evaluate the PVS1 criterion for variants",
		Long: "Evaluate PVS1 for one or more variants given as chrom-pos-ref-alt\n" +
			"specifications (e.g. 17-43082434-C-T), either as arguments or one per\n" +
			"line in an input file.",
		Example: `  vibe-acmg classify 17-43082434-C-T
  vibe-acmg classify --assembly GRCh37 chr13:32340301:G:A
  vibe-acmg classify --input variants.txt -o results.tsv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(args, assembly, inputFile, outputFile, workers)
		},
	}

	cmd.Flags().StringVar(&assembly, "assembly", "GRCh38", "Genome assembly: GRCh37 or GRCh38")
	cmd.Flags().StringVar(&inputFile, "input", "", "File with one variant spec per line ('-' for stdin)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker count (default: number of CPUs)")

	return cmd
}

func runClassify(args []string, assembly, inputFile, outputFile string, workers int) error {
	release, err := seqvar.ParseGenomeRelease(assembly)
	if err != nil {
		return err
	}

	specs, err := collectSpecs(args, inputFile)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return fmt.Errorf("no variants given: pass specs as arguments or use --input")
	}

	variants := make([]seqvar.Variant, 0, len(specs))
	for _, spec := range specs {
		v, err := seqvar.Parse(spec, release)
		if err != nil {
			return err
		}
		variants = append(variants, v)
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	engine, closeStore, err := buildEngine(log)
	if err != nil {
		return err
	}
	defer closeStore()

	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	tw := report.NewTabWriter(out)
	if err := tw.WriteHeader(); err != nil {
		return err
	}

	if workers == 0 {
		workers = viper.GetInt("workers")
	}

	ctx := contextWithSignals()
	items := make(chan pvs1.WorkItem)
	go func() {
		defer close(items)
		for i, v := range variants {
			items <- pvs1.WorkItem{Seq: i, Variant: v}
		}
	}()

	results := engine.ParallelEvaluate(ctx, items, workers)
	if err := pvs1.OrderedCollect(results, func(r pvs1.WorkResult) error {
		return tw.Write(&r.Result)
	}); err != nil {
		return err
	}
	return tw.Flush()
}

// buildEngine wires the annotation store, gene rules and engine from
// the configured paths. The returned func closes the store.
func buildEngine(log *zap.Logger) (*pvs1.Engine, func(), error) {
	storePath := viper.GetString("store.path")
	if storePath == "" {
		return nil, nil, fmt.Errorf("store.path is not configured (vibe-acmg config set store.path <path>)")
	}

	st, err := store.Open(storePath)
	if err != nil {
		return nil, nil, err
	}
	st.SetLogger(log)

	rules := generule.Defaults()
	if rulesPath := viper.GetString("generules.path"); rulesPath != "" {
		rules, err = generule.Load(rulesPath)
		if err != nil {
			st.Close()
			return nil, nil, err
		}
	}

	memo := store.NewMemoized(st, st)
	engine := pvs1.NewEngine(st, memo, memo, st, rules)
	engine.SetLogger(log)

	return engine, func() { st.Close() }, nil
}

// collectSpecs merges argument specs with the optional input file.
func collectSpecs(args []string, inputFile string) ([]string, error) {
	specs := append([]string(nil), args...)
	if inputFile == "" {
		return specs, nil
	}

	var r io.Reader
	if inputFile == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("open input file: %w", err)
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		specs = append(specs, line)
	}
	return specs, scanner.Err()
}
