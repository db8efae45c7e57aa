package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fuzzkit/fuzzmap"
	"github.com/fuzzkit/fuzzmap/logger"
)

// GetCmd resolves a keypath in a data file
var GetCmd = &cobra.Command{
	Use:   "get <file> <keypath>",
	Short: "Resolve a keypath in a data file with fuzzy matching",
	Long: `Load a JSON, YAML, or TOML file and resolve a dotted keypath against it.

Each keypath segment matches the most similar key at its level, subject to
the similarity threshold. Exact segments always match directly. With
--exact, fuzzy matching is disabled and only literal keys resolve.

When resolution fails the command exits non-zero, unless --default supplies
a fallback value to print instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func init() {
	addLookupFlags(GetCmd)
	GetCmd.Flags().String("default", "", "Fallback value printed when resolution fails")
	GetCmd.Flags().Bool("exact", false, "Disable fuzzy matching")
	GetCmd.Flags().BoolP("json", "j", false, "Output the resolved value as JSON")
}

func runGet(cmd *cobra.Command, args []string) error {
	file, keypath := args[0], args[1]

	var extra []fuzzmap.Option
	if cmd.Flags().Changed("default") {
		fallback, _ := cmd.Flags().GetString("default")
		extra = append(extra, fuzzmap.WithDefaultFactory(func() any { return fallback }))
	}

	m, err := buildMap(cmd, file, extra...)
	if err != nil {
		return err
	}

	exact, _ := cmd.Flags().GetBool("exact")

	var value any
	if exact {
		value, err = m.Get(keypath)
	} else {
		value, err = m.FuzzyGet(keypath)
	}
	if err != nil {
		return err
	}

	if !exact {
		if path, pathErr := m.MatchPath(keypath); pathErr == nil && path != keypath {
			logger.Infow("fuzzy-matched keypath", "requested", keypath, "matched", path)
		}
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		output, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode value: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	}

	pterm.Println(value)
	return nil
}
