package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fuzzkit/fuzzmap/cmd/fuzzmap/commands"
	"github.com/fuzzkit/fuzzmap/errors"
	"github.com/fuzzkit/fuzzmap/logger"
)

var rootCmd = &cobra.Command{
	Use:   "fuzzmap",
	Short: "Fuzzy keypath lookup over nested data files",
	Long: `fuzzmap resolves dotted keypaths against nested JSON, YAML, or TOML
documents with fuzzy matching at every path segment.

A keypath segment that does not exactly match a key is matched against the
most similar key at that level, subject to a similarity threshold (0-100).
Exact matches always win.

Examples:
  fuzzmap get config.yaml person.name            # exact or fuzzy lookup
  fuzzmap get config.yaml persn.adress.city      # tolerates typos
  fuzzmap get config.yaml a.b --threshold 90     # stricter matching
  fuzzmap explain config.yaml persn.name         # show candidate scores
  fuzzmap version                                # build information`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(commands.GetCmd)
	rootCmd.AddCommand(commands.ExplainCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
