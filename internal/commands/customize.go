package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/balkashynov/blueprint/internal/errors"
	"github.com/balkashynov/blueprint/internal/models"
	"github.com/balkashynov/blueprint/internal/tracker"
	"github.com/balkashynov/blueprint/internal/tui"
)

var (
	customizeName string
	customizeSets string
)

var customizeCmd = &cobra.Command{
	Use:   "customize [exercise]",
	Short: "Rename an exercise or change its prescription",
	Long: `Rename a built-in exercise or cardio item, or change the sets and reps
shown next to an exercise. Saved history keeps working: records store ids,
not names. Without an argument the catalog is listed with ids.`,
	Example: `  blueprint customize squat --name "Front Squat" --sets "5x5"
  blueprint customize cardio-zone2 --name "Easy bike"`,
	Args: cobra.MaximumNArgs(1),
	RunE: withTracker(runCustomize),
}

func runCustomize(cmd *cobra.Command, args []string, t *tracker.Tracker) error {
	w := cmd.OutOrStdout()
	if len(args) == 0 {
		printCatalog(cmd, t)
		return nil
	}

	id, kind, ok := resolveID(t, args[0])
	if !ok {
		return fmt.Errorf("%q: %w", args[0], errors.ErrUnknownExercise)
	}

	var fields models.CustomizationFields
	if cmd.Flags().Changed("name") {
		fields.Name = &customizeName
	}
	if cmd.Flags().Changed("sets") {
		if kind == models.CatalogCardio {
			return fmt.Errorf("cardio items have no prescription: %w", errors.ErrValidation)
		}
		fields.Prescription = &customizeSets
	}

	if fields.IsEmpty() {
		if !terminalCheck() {
			return fmt.Errorf("pass --name or --sets: %w", errors.ErrValidation)
		}
		var err error
		fields, err = customizeForm(t, id, kind)
		if err != nil {
			return err
		}
		if fields.IsEmpty() {
			fmt.Fprintln(w, "Nothing changed")
			return nil
		}
	}

	if err := t.SetCustomization(cmd.Context(), id, kind, fields); err != nil {
		return err
	}
	name, _ := t.Lookup().Name(id)
	fmt.Fprintf(w, "%s %s %s\n", tui.SuccessStyle.Render("Saved"), name, tui.DisabledStyle.Render("["+id+"]"))
	return nil
}

// customizeForm prompts for the fields prefilled with the effective values
// and returns only the ones that changed
func customizeForm(t *tracker.Tracker, id string, kind models.CatalogKind) (models.CustomizationFields, error) {
	lookup := t.Lookup()
	var name, sets string
	fields := []huh.Field{}

	if kind == models.CatalogStrength {
		def, _ := lookup.Exercise(id)
		name, sets = def.Name, def.Prescription
		fields = append(fields,
			huh.NewInput().Title("Name").Value(&name).Validate(notBlank),
			huh.NewInput().Title("Sets and reps").Value(&sets).Validate(notBlank),
		)
	} else {
		item, _ := lookup.Cardio(id)
		name = item.Name
		fields = append(fields, huh.NewInput().Title("Name").Value(&name).Validate(notBlank))
	}
	origName, origSets := name, sets

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return models.CustomizationFields{}, nil
		}
		return models.CustomizationFields{}, err
	}

	var out models.CustomizationFields
	if name = strings.TrimSpace(name); name != origName {
		out.Name = &name
	}
	if sets = strings.TrimSpace(sets); kind == models.CatalogStrength && sets != origSets {
		out.Prescription = &sets
	}
	return out, nil
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("must not be blank")
	}
	return nil
}

func printCatalog(cmd *cobra.Command, t *tracker.Tracker) {
	w := cmd.OutOrStdout()
	overlay := t.Overlay()
	mark := func(custom bool) string {
		if custom {
			return tui.WarningStyle.Render(" *")
		}
		return ""
	}

	fmt.Fprintln(w, tui.HeaderStyle.Render("Strength"))
	for _, def := range t.EffectiveCatalog() {
		_, custom := overlay.Strength[def.ID]
		fmt.Fprintf(w, "  %-20s %s %s%s\n", def.ID, def.Name, tui.DisabledStyle.Render(def.Prescription), mark(custom))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.HeaderStyle.Render("Cardio"))
	for _, item := range t.EffectiveCardioChecklist() {
		_, custom := overlay.Cardio[item.ID]
		fmt.Fprintf(w, "  %-20s %s%s\n", item.ID, item.Name, mark(custom))
	}
}

func init() {
	customizeCmd.Flags().StringVar(&customizeName, "name", "", "new display name")
	customizeCmd.Flags().StringVar(&customizeSets, "sets", "", "new prescription, e.g. 3x8-10")
}
