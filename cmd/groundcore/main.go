// Command groundcore is the reference CLI for the grounding core: it
// loads a lifted planning description, drives semi-naive grounding to a
// fixed point, and reports or watches the result. It exists to exercise
// the library end to end from outside its own test suite, the way the
// pack's CLIs front their own library packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrlab-ai/groundcore/internal/config"
	"github.com/mrlab-ai/groundcore/internal/logging"
)

var (
	configPath string
	verbose    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "groundcore",
	Short: "Ground a lifted planning description into ground actions, axioms, and atoms",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if verbose {
			loaded.Logging.Level = "debug"
		}
		if err := logging.Init(loaded.Logging); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		cfg = loaded
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "groundcore.yaml", "path to a YAML config file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	rootCmd.AddCommand(groundCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
