package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/blueprint/internal/errors"
	"github.com/balkashynov/blueprint/internal/parser"
	"github.com/balkashynov/blueprint/internal/tracker"
	"github.com/balkashynov/blueprint/internal/tui"
)

var (
	timerVigorous bool
	timerAdd      string
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Time a cardio block and add it to today's minutes",
	Long: `Start a stopwatch for a cardio block. Stopping it with s adds the elapsed
minutes to today's zone 2 (or vigorous) total. --add skips the stopwatch and
adds a duration directly.`,
	Example: `  blueprint timer
  blueprint timer --vigorous
  blueprint timer --add 25m`,
	Args: cobra.NoArgs,
	RunE: withTracker(runTimer),
}

func runTimer(cmd *cobra.Command, _ []string, t *tracker.Tracker) error {
	zone := tracker.FieldZone2
	label := "zone 2"
	if timerVigorous {
		zone = tracker.FieldVigorous
		label = "vigorous"
	}
	w := cmd.OutOrStdout()

	var added float64
	switch {
	case cmd.Flags().Changed("add"):
		minutes, err := parser.ParseMinutes(timerAdd)
		if err != nil {
			return fmt.Errorf("%v: %w", err, errors.ErrValidation)
		}
		if err := tui.AddMinutes(cmd.Context(), t, zone, minutes); err != nil {
			return err
		}
		added = minutes
	case terminalCheck():
		minutes, err := tui.RunTimerTUI(cmd.Context(), t, zone)
		if err != nil {
			return err
		}
		added = minutes
	default:
		return fmt.Errorf("the stopwatch needs a terminal, use --add: %w", errors.ErrValidation)
	}

	if added == 0 {
		fmt.Fprintln(w, "No minutes added")
		return nil
	}
	// the TUI may have switched zones, so report both totals
	d := t.Draft()
	fmt.Fprintf(w, "Added %s min %s · today %s min zone 2 · %s min vigorous\n",
		parser.FormatMinutes(added), label,
		parser.FormatMinutes(d.Zone2Minutes), parser.FormatMinutes(d.VigorousMinutes))
	return nil
}

func init() {
	timerCmd.Flags().BoolVar(&timerVigorous, "vigorous", false, "count the block as vigorous instead of zone 2")
	timerCmd.Flags().StringVar(&timerAdd, "add", "", "add a duration without running the stopwatch")
}
