package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"jsxtrace/config"
)

const version = "0.1.0"

var (
	formatFlag    string
	verboseFlag   bool
	obfuscateFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "jsxtrace",
	Short: "jsxtrace - JSX provenance and module graph analysis",
	Long: `jsxtrace statically analyzes JSX-bearing sources and reports, for every
JSX element, where its rendered values come from: literals, local bindings,
imports, environment reads, or call results. It also collects the per-module
import/export graph, top-level definitions, and mutation sites.`,
	Version: version,
}

func init() {
	rootCmd.SetVersionTemplate("jsxtrace version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Output format (yaml, json); overrides config")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&obfuscateFlag, "obfuscate", false, "Obfuscate file keys in output")
}

// newLogger builds the CLI logger; debug level when --verbose is set.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verboseFlag {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads .jsxtrace/config.yaml from the working directory and
// applies flag overrides. Flags win over file and environment values.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}
	if formatFlag != "" {
		cfg.Format = formatFlag
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if obfuscateFlag {
		cfg.Keys.Obfuscate = true
	}
	return cfg, nil
}
