package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"scribe/internal/config"
	"scribe/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg *config.Config
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "scribe - meeting-notes response pipeline",
	Long: `scribe normalizes raw responses from the meeting-notes agent into a
canonical document and tokenizes the result into renderable blocks.

It accepts every response shape the upstream has shipped over time (plain
JSON, fenced JSON, nested workstream JSON, markdown with a trailing JSON
block, bare text) and never fails: malformed input degrades to plain
markdown.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose || cfg.Logging.Debug {
			if err := logging.Enable(true); err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".scribe.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(askCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// readInput returns the named file's contents, or stdin when no argument
// was given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
