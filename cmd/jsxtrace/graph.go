package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsxtrace/inspector"
	"jsxtrace/repository"
)

var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Emit the module graph for one file",
	Long: `Parse a single file and emit only its module graph: imports, exports,
re-exports, top-level definitions, mutation sites, and the exported literal
index. Element traces are skipped.

Examples:
  jsxtrace graph src/App.jsx
  jsxtrace graph src/store.ts --format=json`,
	Args: cobra.ExactArgs(1),
	RunE: runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	analysis, err := inspector.NewInspector(nil).InspectFile(args[0])
	if err != nil {
		return err
	}
	analysis.FileKey = repository.NewKeyResolver(cfg.Keys.Obfuscate).Resolve(args[0])
	analysis.Elements = nil

	out, err := inspector.NewEmitter(cfg.Format).Emit(analysis)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
