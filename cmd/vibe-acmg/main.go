// Package main provides the vibe-acmg command-line tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vibe-acmg",
		Short: "Classify sequence variants against the ACMG PVS1 criterion",
		Long: "vibe-acmg evaluates the ACMG PVS1 (predicted loss of function) criterion\n" +
			"for sequence variants against a local annotation store, reporting the\n" +
			"evidence strength, the decision path taken and the supporting evidence.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Config file (default ~/.vibe-acmg.yaml)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	cobra.OnInitialize(func() {
		initConfig(root)
	})

	root.AddCommand(newClassifyCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func initConfig(root *cobra.Command) {
	if cfgFile, _ := root.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".vibe-acmg")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("VIBE_ACMG")
	viper.AutomaticEnv()

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()

	if level, _ := root.PersistentFlags().GetString("log-level"); level != "" {
		viper.Set("log.level", level)
	}
}

// newLogger builds a zap logger honoring the configured log level.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level := viper.GetString("log.level"); level != "" {
		parsed, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		cfg.Level = parsed
	}
	return cfg.Build()
}

// contextWithSignals returns a context cancelled on SIGINT or SIGTERM.
func contextWithSignals() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return ctx
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vibe-acmg version %s (%s) built %s\n", version, commit, date)
		},
	}
}
