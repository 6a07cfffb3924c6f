// slipstick is the formula-catalog CLI: list and inspect formulas,
// evaluate them against named inputs, run the catalog's worked examples
// as regression fixtures, and serve the evaluator over MCP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slipstick/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "slipstick",
	Short: "Catalog-driven engineering-formula evaluator",
	Long: "Slipstick evaluates engineering formulas from a built-in catalog:\n" +
		"inputs are validated against declared ranges, results come with an\n" +
		"ordered derivation trace, advisory warnings and an accuracy score.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return logging.Init(rootFlags.logLevel, rootFlags.logFormat)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
