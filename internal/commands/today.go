package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/blueprint/internal/models"
	"github.com/balkashynov/blueprint/internal/schedule"
	"github.com/balkashynov/blueprint/internal/tracker"
	"github.com/balkashynov/blueprint/internal/tui"
)

var (
	todayNoUI     bool
	todayStrength bool
	todayCardio   bool
)

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Open today's workout",
	Long: `Open today's workout in the interactive checklist.

Monday, Wednesday and Friday are strength days, Tuesday, Thursday and
Saturday cardio days, Sunday is rest. --strength or --cardio opens the
other checklist regardless of the weekday.`,
	Args: cobra.NoArgs,
	RunE: withTracker(runToday),
}

func runToday(cmd *cobra.Command, _ []string, t *tracker.Tracker) error {
	w := cmd.OutOrStdout()
	mode := schedule.Today(t.Now())

	kind, ok := mode.SessionKind()
	switch {
	case todayStrength:
		kind, ok = models.SessionStrength, true
	case todayCardio:
		kind, ok = models.SessionCardio, true
	}

	if !ok {
		fmt.Fprintln(w, tui.HeaderStyle.Render(mode.Label()))
		fmt.Fprintln(w, "Nothing planned today. Recover well.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, tui.RenderWeeklyProgress(t.WeeklyProgress(), 30))
		return nil
	}

	if todayNoUI || !terminalCheck() {
		printSession(w, t, kind)
		return nil
	}

	saved, err := tui.RunSessionTUI(cmd.Context(), t, kind)
	if err != nil {
		return err
	}
	if saved != nil {
		printSaved(w, *saved)
	}
	return nil
}

func init() {
	todayCmd.Flags().BoolVar(&todayNoUI, "no-ui", false, "print the checklist instead of opening the TUI")
	todayCmd.Flags().BoolVar(&todayStrength, "strength", false, "open the strength checklist")
	todayCmd.Flags().BoolVar(&todayCardio, "cardio", false, "open the cardio checklist")
	todayCmd.MarkFlagsMutuallyExclusive("strength", "cardio")
}
