package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/blueprint/internal/errors"
	"github.com/balkashynov/blueprint/internal/models"
	"github.com/balkashynov/blueprint/internal/schedule"
	"github.com/balkashynov/blueprint/internal/tracker"
)

var (
	saveStrength bool
	saveCardio   bool
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save today's workout to history",
	Long: `Save the draft as a strength or cardio session. The kind follows the
weekday unless --strength or --cardio is given. Cardio minutes are added to
the weekly totals and the draft is cleared.`,
	Args: cobra.NoArgs,
	RunE: withTracker(runSave),
}

func runSave(cmd *cobra.Command, _ []string, t *tracker.Tracker) error {
	kind, ok := schedule.Today(t.Now()).SessionKind()
	switch {
	case saveStrength:
		kind, ok = models.SessionStrength, true
	case saveCardio:
		kind, ok = models.SessionCardio, true
	}
	if !ok {
		return fmt.Errorf("today is a rest day, pass --strength or --cardio: %w", errors.ErrValidation)
	}

	rec, err := t.SaveSession(cmd.Context(), kind)
	if err != nil {
		return err
	}
	printSaved(cmd.OutOrStdout(), rec)
	return nil
}

func init() {
	saveCmd.Flags().BoolVar(&saveStrength, "strength", false, "save as a strength session")
	saveCmd.Flags().BoolVar(&saveCardio, "cardio", false, "save as a cardio session")
	saveCmd.MarkFlagsMutuallyExclusive("strength", "cardio")
}
