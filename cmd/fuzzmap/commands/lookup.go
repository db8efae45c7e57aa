package commands

import (
	"github.com/spf13/cobra"

	"github.com/fuzzkit/fuzzmap"
	"github.com/fuzzkit/fuzzmap/config"
	"github.com/fuzzkit/fuzzmap/decode"
	"github.com/fuzzkit/fuzzmap/errors"
	"github.com/fuzzkit/fuzzmap/logger"
	"github.com/fuzzkit/fuzzmap/score"
)

// addLookupFlags registers the flags shared by commands that resolve
// keypaths. Unset flags fall back to the loaded configuration.
func addLookupFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("threshold", "t", 0, "Minimum similarity score (0-100); overrides config")
	cmd.Flags().StringP("separator", "s", "", "Keypath separator; overrides config")
	cmd.Flags().String("scorer", "", "Similarity backend: wratio or levenshtein; overrides config")
}

// buildMap loads the data file and wraps it according to config and flags.
func buildMap(cmd *cobra.Command, path string, extra ...fuzzmap.Option) (*fuzzmap.Map, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	data, err := decode.File(path)
	if err != nil {
		return nil, err
	}

	threshold := cfg.Lookup.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold, _ = cmd.Flags().GetInt("threshold")
	}

	separator := cfg.Lookup.Separator
	if cmd.Flags().Changed("separator") {
		separator, _ = cmd.Flags().GetString("separator")
	}

	scorerName := cfg.Lookup.Scorer
	if cmd.Flags().Changed("scorer") {
		scorerName, _ = cmd.Flags().GetString("scorer")
	}
	scorer, ok := score.ByName(scorerName)
	if !ok {
		return nil, errors.Newf("unknown scorer %q (expected wratio or levenshtein)", scorerName)
	}

	logger.Debugw("lookup configured",
		"file", path,
		"threshold", threshold,
		"separator", separator,
		"scorer", scorerName)

	opts := append([]fuzzmap.Option{
		fuzzmap.WithThreshold(threshold),
		fuzzmap.WithSeparator(separator),
		fuzzmap.WithScorer(scorer),
	}, extra...)

	return fuzzmap.New(data, opts...)
}
