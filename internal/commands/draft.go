package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/blueprint/internal/errors"
	"github.com/balkashynov/blueprint/internal/models"
	"github.com/balkashynov/blueprint/internal/parser"
	"github.com/balkashynov/blueprint/internal/tracker"
	"github.com/balkashynov/blueprint/internal/tui"
)

var (
	logWeight   string
	logReps     string
	unsubYes    bool
	cardioZone2 string
	cardioVig   string
	resetYes    bool
)

var checkCmd = &cobra.Command{
	Use:   "check <exercise>...",
	Short: "Mark exercises or cardio items as done",
	Long:  `Mark exercises or cardio items as done. Each argument is an id or a name.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: withTracker(func(cmd *cobra.Command, args []string, t *tracker.Tracker) error {
		return setCompleted(cmd, args, t, true)
	}),
}

var uncheckCmd = &cobra.Command{
	Use:   "uncheck <exercise>...",
	Short: "Mark exercises or cardio items as not done",
	Args:  cobra.MinimumNArgs(1),
	RunE: withTracker(func(cmd *cobra.Command, args []string, t *tracker.Tracker) error {
		return setCompleted(cmd, args, t, false)
	}),
}

func setCompleted(cmd *cobra.Command, args []string, t *tracker.Tracker, done bool) error {
	lookup := t.Lookup()
	for _, arg := range args {
		id, _, ok := resolveID(t, arg)
		if !ok {
			return fmt.Errorf("%q: %w", arg, errors.ErrUnknownExercise)
		}
		err := t.MutateDraft(cmd.Context(), tracker.Mutation{
			ID:    id,
			Field: tracker.FieldCompleted,
			Value: fmt.Sprint(done),
		})
		if err != nil {
			return err
		}
		name, _ := lookup.Name(id)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", checkbox(done), name)
	}
	return nil
}

var logCmd = &cobra.Command{
	Use:   "log <exercise> [set]",
	Short: "Log weight and reps for an exercise",
	Long: `Log weight and reps for a strength exercise and check it off.

The set can be written as "25x8", "25 kg x 8", "BW x 10" or as two
arguments "25 8". --weight and --reps set one side only.`,
	Example: `  blueprint log squat 100x5
  blueprint log "Chin-Ups" BW x 8
  blueprint log bench --reps 6`,
	Args: cobra.MinimumNArgs(1),
	RunE: withTracker(runLog),
}

func runLog(cmd *cobra.Command, args []string, t *tracker.Tracker) error {
	id, kind, ok := resolveID(t, args[0])
	if !ok {
		return fmt.Errorf("%q: %w", args[0], errors.ErrUnknownExercise)
	}
	if kind != models.CatalogStrength {
		return fmt.Errorf("%q is a cardio item and has no sets: %w", args[0], errors.ErrValidation)
	}

	var set parser.ParsedSet
	switch rest := args[1:]; len(rest) {
	case 0:
	case 2:
		set = parser.ParsedSet{Weight: rest[0], Reps: rest[1]}
	default:
		set = parser.ParseSet(strings.Join(rest, " "))
	}
	if cmd.Flags().Changed("weight") {
		set.Weight = logWeight
	}
	if cmd.Flags().Changed("reps") {
		set.Reps = logReps
	}
	if set.Weight == "" && set.Reps == "" {
		return fmt.Errorf("nothing to log for %q: %w", args[0], errors.ErrValidation)
	}

	muts := []tracker.Mutation{{ID: id, Field: tracker.FieldCompleted, Value: "true"}}
	if set.Weight != "" {
		muts = append(muts, tracker.Mutation{ID: id, Field: tracker.FieldWeight, Value: set.Weight})
	}
	if set.Reps != "" {
		muts = append(muts, tracker.Mutation{ID: id, Field: tracker.FieldReps, Value: set.Reps})
	}
	for _, m := range muts {
		if err := t.MutateDraft(cmd.Context(), m); err != nil {
			return err
		}
	}

	entry := t.Draft().Strength[id]
	name, _ := t.Lookup().Name(id)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", checkbox(true), name,
		models.LastValue{Weight: entry.Weight, Reps: entry.Reps})
	return nil
}

var subCmd = &cobra.Command{
	Use:     "sub <exercise> <substitute>",
	Short:   "Swap an exercise for another one today",
	Example: `  blueprint sub "Barbell Row" Ring rows`,
	Args:    cobra.MinimumNArgs(2),
	RunE: withTracker(func(cmd *cobra.Command, args []string, t *tracker.Tracker) error {
		id, kind, ok := resolveID(t, args[0])
		if !ok {
			return fmt.Errorf("%q: %w", args[0], errors.ErrUnknownExercise)
		}
		if kind != models.CatalogStrength {
			return fmt.Errorf("%q is a cardio item: %w", args[0], errors.ErrValidation)
		}
		name := strings.TrimSpace(strings.Join(args[1:], " "))
		if name == "" {
			return fmt.Errorf("substitute name is empty: %w", errors.ErrValidation)
		}
		err := t.MutateDraft(cmd.Context(), tracker.Mutation{ID: id, Field: tracker.FieldSubstitute, Value: name})
		if err != nil {
			return err
		}
		orig, _ := t.Lookup().Name(id)
		fmt.Fprintf(cmd.OutOrStdout(), "%s → %s\n", orig, tui.WarningStyle.Render(name))
		return nil
	}),
}

var unsubCmd = &cobra.Command{
	Use:   "unsub <exercise>",
	Short: "Go back to the planned exercise",
	Args:  cobra.ExactArgs(1),
	RunE: withTracker(func(cmd *cobra.Command, args []string, t *tracker.Tracker) error {
		id, _, ok := resolveID(t, args[0])
		if !ok {
			return fmt.Errorf("%q: %w", args[0], errors.ErrUnknownExercise)
		}
		w := cmd.OutOrStdout()
		sub, isSub := t.Draft().Strength[id].Substitution.Name()
		if !isSub {
			fmt.Fprintln(w, "No substitution to clear")
			return nil
		}

		ok, err := confirm(fmt.Sprintf("Clear substitution %q?", sub), "The planned exercise comes back.", unsubYes)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "Kept substitution")
			return nil
		}
		err = t.MutateDraft(cmd.Context(), tracker.Mutation{
			ID:        id,
			Field:     tracker.FieldSubstitute,
			Confirmed: true,
		})
		if err != nil {
			return err
		}
		name, _ := t.Lookup().Name(id)
		fmt.Fprintf(w, "Back to %s\n", name)
		return nil
	}),
}

var cardioCmd = &cobra.Command{
	Use:   "cardio [item]...",
	Short: "Check cardio items and set today's minutes",
	Long: `Check cardio checklist items and set today's zone 2 and vigorous minutes.

Minutes accept 45, 45.5, 45m, 1:10, 1h or 1h10m. The values replace the
draft totals; use "blueprint timer" to add to them instead.`,
	Example: `  blueprint cardio cardio-zone2 --zone2 45
  blueprint cardio --vigorous 1h10m`,
	RunE: withTracker(runCardio),
}

func runCardio(cmd *cobra.Command, args []string, t *tracker.Tracker) error {
	for _, arg := range args {
		id, kind, ok := resolveID(t, arg)
		if !ok {
			return fmt.Errorf("%q: %w", arg, errors.ErrUnknownExercise)
		}
		if kind != models.CatalogCardio {
			return fmt.Errorf("%q is a strength exercise: %w", arg, errors.ErrValidation)
		}
		err := t.MutateDraft(cmd.Context(), tracker.Mutation{ID: id, Field: tracker.FieldCompleted, Value: "true"})
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("zone2") {
		if err := t.MutateDraft(cmd.Context(), tracker.Mutation{Field: tracker.FieldZone2, Value: cardioZone2}); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("vigorous") {
		if err := t.MutateDraft(cmd.Context(), tracker.Mutation{Field: tracker.FieldVigorous, Value: cardioVig}); err != nil {
			return err
		}
	}

	printSession(cmd.OutOrStdout(), t, models.SessionCardio)
	return nil
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard today's unsaved input",
	Args:  cobra.NoArgs,
	RunE: withTracker(func(cmd *cobra.Command, _ []string, t *tracker.Tracker) error {
		w := cmd.OutOrStdout()
		if t.Draft().State() == models.DraftEmpty {
			fmt.Fprintln(w, "Nothing to reset")
			return nil
		}
		ok, err := confirm("Discard today's unsaved workout?", "Checks, sets, substitutions and minutes are cleared.", resetYes)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		t.ResetDraft(cmd.Context())
		fmt.Fprintln(w, "Draft cleared")
		return nil
	}),
}

func init() {
	logCmd.Flags().StringVar(&logWeight, "weight", "", "weight, e.g. 25, 25kg, BW")
	logCmd.Flags().StringVar(&logReps, "reps", "", "reps, e.g. 8 or 8/8")

	unsubCmd.Flags().BoolVarP(&unsubYes, "yes", "y", false, "skip the confirmation prompt")

	cardioCmd.Flags().StringVar(&cardioZone2, "zone2", "", "today's zone 2 minutes")
	cardioCmd.Flags().StringVar(&cardioVig, "vigorous", "", "today's vigorous minutes")

	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip the confirmation prompt")
}
