package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/balkashynov/blueprint/internal/catalog"
	"github.com/balkashynov/blueprint/internal/models"
	"github.com/balkashynov/blueprint/internal/parser"
	"github.com/balkashynov/blueprint/internal/tracker"
	"github.com/balkashynov/blueprint/internal/tui"
)

// historyEntry is one saved session prepared for display
type historyEntry struct {
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Completed int       `json:"completed"`
	Lines     []string  `json:"lines"`
}

// buildHistory renders records newest first. Names come from the effective
// catalog; ids no longer in the catalog are skipped.
func buildHistory(records []models.SessionRecord, lookup catalog.Lookup, limit int) []historyEntry {
	var out []historyEntry
	for i := len(records) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		rec := records[i]
		entry := historyEntry{
			Date:      rec.Timestamp,
			Type:      string(rec.Kind),
			Completed: len(rec.CompletedIDs),
		}

		for _, id := range rec.CompletedIDs {
			name, ok := lookup.Name(id)
			if !ok {
				continue
			}
			if sub, ok := rec.Substitutes[id]; ok {
				name = fmt.Sprintf("%s (for %s)", sub, name)
			}
			if w, ok := rec.Weights[id]; ok {
				v := models.LastValue{Weight: w, Reps: rec.Reps[id]}
				name = fmt.Sprintf("%s: %s", name, v)
			}
			entry.Lines = append(entry.Lines, name)
		}

		if rec.CardioStats != nil {
			entry.Lines = append(entry.Lines, fmt.Sprintf("Zone 2: %s min · Vigorous: %s min",
				parser.FormatMinutes(rec.CardioStats.Zone2Minutes),
				parser.FormatMinutes(rec.CardioStats.VigorousMinutes)))
		}
		out = append(out, entry)
	}
	return out
}

func printHistory(w io.Writer, entries []historyEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No workouts saved yet")
		return
	}
	for _, e := range entries {
		header := fmt.Sprintf("%s · %s · %d completed", e.Date.Local().Format("Mon, Jan 2 2006 15:04"), e.Type, e.Completed)
		fmt.Fprintln(w, tui.HeaderStyle.Render(header))
		for _, line := range e.Lines {
			fmt.Fprintf(w, "  %s\n", line)
		}
		fmt.Fprintln(w)
	}
}

// printSession writes the day's checklist with draft values and last-value hints
func printSession(w io.Writer, t *tracker.Tracker, kind models.SessionKind) {
	d := t.Draft()

	if kind == models.SessionCardio {
		fmt.Fprintln(w, tui.HeaderStyle.Render("Cardio Day"))
		for _, item := range t.EffectiveCardioChecklist() {
			fmt.Fprintf(w, "  %s %s %s\n", checkbox(d.Cardio[item.ID].Completed), item.Name, tui.DisabledStyle.Render("["+item.ID+"]"))
		}
		fmt.Fprintf(w, "\nToday: %s min zone 2 · %s min vigorous\n\n",
			parser.FormatMinutes(d.Zone2Minutes), parser.FormatMinutes(d.VigorousMinutes))
		fmt.Fprintln(w, tui.RenderWeeklyProgress(t.WeeklyProgress(), 30))
		return
	}

	fmt.Fprintln(w, tui.HeaderStyle.Render("Strength Day"))
	var category models.Category
	for _, def := range t.EffectiveCatalog() {
		if def.Category != category {
			category = def.Category
			fmt.Fprintf(w, "\n%s\n", tui.AccentStyle.Bold(true).Render(category.Title()))
		}
		entry := d.Strength[def.ID]

		var b strings.Builder
		fmt.Fprintf(&b, "  %s %s %s", checkbox(entry.Completed), def.Name, tui.DisabledStyle.Render(def.Prescription))
		if name, ok := entry.Substitution.Name(); ok {
			fmt.Fprintf(&b, " → %s", tui.WarningStyle.Render(name))
		}
		if entry.Weight != "" || entry.Reps != "" {
			fmt.Fprintf(&b, " %s", tui.AccentStyle.Render(strings.TrimSpace(entry.Weight+" x "+entry.Reps)))
		} else if last, ok := t.LastValue(def.ID); ok {
			fmt.Fprintf(&b, " %s", tui.MutedStyle.Render("Last: "+last.String()))
		}
		fmt.Fprintf(&b, " %s", tui.DisabledStyle.Render("["+def.ID+"]"))
		fmt.Fprintln(w, b.String())
	}

	done, total := t.DraftProgress()
	fmt.Fprintf(w, "\n%d / %d exercises\n", done, total)
}

func printSaved(w io.Writer, rec models.SessionRecord) {
	msg := fmt.Sprintf("💪 Workout saved! %d completed", len(rec.CompletedIDs))
	if rec.CardioStats != nil {
		msg = fmt.Sprintf("🫀 Cardio saved! %s min zone 2 · %s min vigorous",
			parser.FormatMinutes(rec.CardioStats.Zone2Minutes),
			parser.FormatMinutes(rec.CardioStats.VigorousMinutes))
	}
	fmt.Fprintln(w, tui.SuccessStyle.Render(msg))
}

func checkbox(done bool) string {
	if done {
		return tui.SuccessStyle.Render("✓")
	}
	return tui.MutedStyle.Render("○")
}

// resolveID accepts a catalog id or a case-insensitive effective name
func resolveID(t *tracker.Tracker, arg string) (string, models.CatalogKind, bool) {
	lookup := t.Lookup()
	if kind, ok := lookup.Kind(arg); ok {
		return arg, kind, true
	}
	for _, def := range t.EffectiveCatalog() {
		if strings.EqualFold(def.Name, arg) {
			return def.ID, models.CatalogStrength, true
		}
	}
	for _, item := range t.EffectiveCardioChecklist() {
		if strings.EqualFold(item.Name, arg) {
			return item.ID, models.CatalogCardio, true
		}
	}
	return "", "", false
}

func boxed(content string) string {
	return tui.PanelStyle.Padding(0, 1).Render(content)
}
