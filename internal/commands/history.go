package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/balkashynov/blueprint/internal/tracker"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "Show saved workouts, newest first",
	Args:    cobra.NoArgs,
	RunE: withTracker(func(cmd *cobra.Command, _ []string, t *tracker.Tracker) error {
		entries := buildHistory(t.History(), t.Lookup(), historyLimit)
		if historyJSON {
			if entries == nil {
				entries = []historyEntry{}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}
		printHistory(cmd.OutOrStdout(), entries)
		return nil
	}),
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of sessions to show (0 for all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "JSON output")
}
