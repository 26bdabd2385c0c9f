package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/blueprint/internal/tracker"
	"github.com/balkashynov/blueprint/internal/tui"
)

var progressJSON bool

var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"week"},
	Short:   "Show this week's cardio minutes against the targets",
	Args:    cobra.NoArgs,
	RunE: withTracker(func(cmd *cobra.Command, _ []string, t *tracker.Tracker) error {
		p := t.WeeklyProgress()
		w := cmd.OutOrStdout()
		if progressJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}

		ledger := t.Ledger()
		header := fmt.Sprintf("Week of %s", ledger.WindowStart.Local().Format("Mon, Jan 2"))
		fmt.Fprintln(w, boxed(tui.HeaderStyle.Render(header)+"\n\n"+tui.RenderWeeklyProgress(p, 30)))
		return nil
	}),
}

func init() {
	progressCmd.Flags().BoolVar(&progressJSON, "json", false, "JSON output")
}
