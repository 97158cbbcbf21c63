package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsxtrace/inspector"
	"jsxtrace/repository"
	"jsxtrace/runner"
)

var analyzeWorkers int

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path>",
	Short: "Analyze a file or directory tree",
	Long: `Analyze a JSX-bearing file, or every inspectable file under a directory,
and emit per-element provenance candidates alongside the module graph.

Examples:
  jsxtrace analyze src/App.jsx
  jsxtrace analyze src --format=json
  jsxtrace analyze . --obfuscate`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", 0, "Worker pool size (default: one per CPU)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	workers := cfg.Runner.Workers
	if analyzeWorkers > 0 {
		workers = analyzeWorkers
	}

	r, err := runner.New(
		runner.WithWorkers(workers),
		runner.WithCacheSize(cfg.Runner.CacheSize),
		runner.WithLogger(logger),
		runner.WithInspector(inspector.NewInspector(&inspector.Config{
			SkipTests:         cfg.Inspect.SkipTests,
			RecursivePackages: cfg.Inspect.Recursive,
		})),
		runner.WithKeyResolver(repository.NewKeyResolver(cfg.Keys.Obfuscate)),
	)
	if err != nil {
		return err
	}

	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	var analyses []*inspector.FileAnalysis
	if info.IsDir() {
		analyses, err = r.Analyze(context.Background(), target)
	} else {
		var analysis *inspector.FileAnalysis
		analysis, err = r.AnalyzeFile(context.Background(), target)
		analyses = []*inspector.FileAnalysis{analysis}
	}
	if err != nil {
		return err
	}

	emitter := inspector.NewEmitter(cfg.Format)
	for _, analysis := range analyses {
		out, err := emitter.Emit(analysis)
		if err != nil {
			return fmt.Errorf("failed to emit %s: %w", analysis.Path, err)
		}
		fmt.Println(string(out))
	}
	return nil
}
