package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fuzzkit/fuzzmap"
	"github.com/fuzzkit/fuzzmap/errors"
)

// ExplainCmd shows how each keypath segment resolves
var ExplainCmd = &cobra.Command{
	Use:   "explain <file> <keypath>",
	Short: "Show per-segment match candidates and scores for a keypath",
	Long: `Resolve a keypath like 'get' does, but report every level's candidate
keys with their similarity scores and the key that was selected.

Useful for tuning thresholds: the output shows exactly how close the
losing candidates came.`,
	Args: cobra.ExactArgs(2),
	RunE: runExplain,
}

func init() {
	addLookupFlags(ExplainCmd)
	ExplainCmd.Flags().BoolP("json", "j", false, "Output the trace as JSON")
	ExplainCmd.Flags().BoolP("verbose", "v", false, "List every candidate at each level")
}

func runExplain(cmd *cobra.Command, args []string) error {
	file, keypath := args[0], args[1]

	m, err := buildMap(cmd, file)
	if err != nil {
		return err
	}

	trace, resolveErr := m.Explain(keypath)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		output, err := json.MarshalIndent(trace, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode trace: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return resolveErr
	}

	if len(trace) == 0 {
		pterm.Info.Println("Empty keypath resolves to the document root")
		return nil
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	renderTrace(trace, m.Threshold(), verbose)

	if resolveErr != nil {
		var kpErr *errors.KeyPathError
		if errors.As(resolveErr, &kpErr) && kpErr.BestKey != "" {
			pterm.Error.Printf("No match for %q: best candidate %q scored %d, below threshold %d\n",
				kpErr.Segment, kpErr.BestKey, kpErr.BestScore, m.Threshold())
		}
		return resolveErr
	}

	path, err := m.MatchPath(keypath)
	if err == nil {
		pterm.Success.Printf("Resolved to %s\n", path)
	}
	return nil
}

func renderTrace(trace []fuzzmap.SegmentMatch, threshold int, verbose bool) {
	tableData := pterm.TableData{{"#", "Segment", "Matched Key", "Score", "Match"}}
	for i, seg := range trace {
		kind := "fuzzy"
		if seg.Exact {
			kind = "exact"
		}
		if seg.Key == "" || (!seg.Exact && seg.Score < threshold) {
			kind = "none"
		}
		tableData = append(tableData, []string{
			strconv.Itoa(i),
			seg.Segment,
			seg.Key,
			strconv.Itoa(seg.Score),
			kind,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()

	if !verbose {
		return
	}
	for _, seg := range trace {
		if len(seg.Candidates) == 0 {
			continue
		}
		pterm.Printf("\nCandidates for %s:\n", pterm.Bold.Sprint(seg.Segment))
		for _, c := range seg.Candidates {
			marker := " "
			if c.Key == seg.Key {
				marker = pterm.LightGreen("→")
			}
			pterm.Printf("  %s %s (%d)\n", marker, c.Key, c.Score)
		}
	}
}
