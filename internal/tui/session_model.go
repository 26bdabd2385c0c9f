package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/blueprint/internal/errors"
	"github.com/balkashynov/blueprint/internal/models"
	"github.com/balkashynov/blueprint/internal/parser"
	"github.com/balkashynov/blueprint/internal/tracker"
)

// Focus represents what UI element has focus
type Focus int

const (
	FocusList Focus = iota
	FocusInput
	FocusConfirm
)

// inputTarget is what the text input is editing
type inputTarget int

const (
	inputSet inputTarget = iota
	inputSubstitute
	inputZone2
	inputVigorous
)

// row is one checklist line
type row struct {
	id           string
	name         string
	prescription string
	category     models.Category
	tracksWeight bool
}

// SessionModel is the interactive checklist for today's strength or cardio session
type SessionModel struct {
	ctx     context.Context
	tracker *tracker.Tracker
	kind    models.SessionKind

	width  int
	height int

	rows     []row
	selected int

	// Pagination
	page    int
	perPage int

	focus  Focus
	input  textinput.Model
	target inputTarget

	sweep *Sweep

	status    string
	statusErr bool

	saved *models.SessionRecord
}

// NewSessionModel builds the checklist for kind from the tracker's effective catalog
func NewSessionModel(ctx context.Context, t *tracker.Tracker, kind models.SessionKind) SessionModel {
	var rows []row
	if kind == models.SessionCardio {
		for _, item := range t.EffectiveCardioChecklist() {
			rows = append(rows, row{id: item.ID, name: item.Name})
		}
	} else {
		for _, def := range t.EffectiveCatalog() {
			rows = append(rows, row{
				id:           def.ID,
				name:         def.Name,
				prescription: def.Prescription,
				category:     def.Category,
				tracksWeight: def.TracksWeight,
			})
		}
	}

	input := textinput.New()
	input.CharLimit = 40
	input.Width = 30

	return SessionModel{
		ctx:     ctx,
		tracker: t,
		kind:    kind,
		rows:    rows,
		perPage: max(1, len(rows)),
		input:   input,
		sweep:   NewSweep(),
	}
}

// Saved returns the record written by the session, if it was saved
func (m SessionModel) Saved() *models.SessionRecord {
	return m.saved
}

// Init starts the selection sweep
func (m SessionModel) Init() tea.Cmd {
	return m.sweep.Tick()
}

// Update handles messages
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sweepTickMsg:
		if m.focus == FocusList && len(m.rows) > 0 {
			m.sweep.Advance(len([]rune(m.rows[m.selected].name)))
		}
		return m, m.sweep.Tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// header, progress, help and borders take the rest
		m.perPage = max(3, m.height-10)
		m.page = m.selected / m.perPage
		return m, nil

	case tea.KeyMsg:
		switch m.focus {
		case FocusInput:
			return m.handleInputKeys(msg)
		case FocusConfirm:
			return m.handleConfirmKeys(msg)
		}
		return m.handleListKeys(msg)
	}
	return m, nil
}

func (m SessionModel) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
			m.sweep.Reset()
		}
		m.page = m.selected / m.perPage

	case "down", "j":
		if m.selected < len(m.rows)-1 {
			m.selected++
			m.sweep.Reset()
		}
		m.page = m.selected / m.perPage

	case "left", "h":
		if m.page > 0 {
			m.page--
			m.selected = m.page * m.perPage
			m.sweep.Reset()
		}

	case "right", "l":
		if (m.page+1)*m.perPage < len(m.rows) {
			m.page++
			m.selected = m.page * m.perPage
			m.sweep.Reset()
		}

	case " ", "x", "enter":
		return m.toggleSelected(), nil

	case "w":
		if m.kind == models.SessionStrength {
			return m.openInput(inputSet)
		}

	case "u":
		if m.kind != models.SessionStrength {
			break
		}
		entry := m.tracker.Draft().Strength[m.currentID()]
		if entry.Substitution.IsSubstituted() {
			m.focus = FocusConfirm
			return m, nil
		}
		return m.openInput(inputSubstitute)

	case "z":
		if m.kind == models.SessionCardio {
			return m.openInput(inputZone2)
		}

	case "v":
		if m.kind == models.SessionCardio {
			return m.openInput(inputVigorous)
		}

	case "s":
		return m.save()
	}
	return m, nil
}

func (m SessionModel) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = FocusList
		m.input.Blur()
		return m, nil
	case "enter":
		m.focus = FocusList
		m.input.Blur()
		return m.commitInput(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SessionModel) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.focus = FocusList
	switch msg.String() {
	case "y", "Y":
		m = m.mutate(tracker.Mutation{ID: m.currentID(), Field: tracker.FieldSubstitute, Confirmed: true})
		if !m.statusErr {
			m.setStatus("Substitution cleared", false)
		}
	default:
		m.setStatus("Kept substitution", false)
	}
	return m, nil
}

func (m SessionModel) currentID() string {
	if len(m.rows) == 0 {
		return ""
	}
	return m.rows[m.selected].id
}

func (m SessionModel) toggleSelected() SessionModel {
	id := m.currentID()
	if id == "" {
		return m
	}
	d := m.tracker.Draft()
	done := d.Strength[id].Completed
	if m.kind == models.SessionCardio {
		done = d.Cardio[id].Completed
	}
	return m.mutate(tracker.Mutation{ID: id, Field: tracker.FieldCompleted, Value: fmt.Sprint(!done)})
}

func (m SessionModel) openInput(target inputTarget) (tea.Model, tea.Cmd) {
	d := m.tracker.Draft()
	entry := d.Strength[m.currentID()]

	m.target = target
	m.input.SetValue("")
	m.input.Placeholder = ""
	switch target {
	case inputSet:
		m.input.Prompt = "Set (weight x reps): "
		if entry.Weight != "" || entry.Reps != "" {
			m.input.SetValue(strings.TrimSpace(entry.Weight + " x " + entry.Reps))
		} else if last, ok := m.tracker.LastValue(m.currentID()); ok {
			m.input.Placeholder = last.String()
		} else {
			m.input.Placeholder = "25x8"
		}
	case inputSubstitute:
		m.input.Prompt = "Doing instead: "
		m.input.Placeholder = "e.g. Ring rows"
	case inputZone2:
		m.input.Prompt = "Zone 2 minutes: "
		m.input.SetValue(minutesValue(d.Zone2Minutes))
		m.input.Placeholder = "45 or 1h10m"
	case inputVigorous:
		m.input.Prompt = "Vigorous minutes: "
		m.input.SetValue(minutesValue(d.VigorousMinutes))
		m.input.Placeholder = "20"
	}
	m.focus = FocusInput
	cmd := m.input.Focus()
	return m, cmd
}

func minutesValue(v float64) string {
	if v == 0 {
		return ""
	}
	return parser.FormatMinutes(v)
}

func (m SessionModel) commitInput() SessionModel {
	value := strings.TrimSpace(m.input.Value())
	id := m.currentID()

	switch m.target {
	case inputSet:
		set := parser.ParseSet(value)
		m = m.mutate(tracker.Mutation{ID: id, Field: tracker.FieldWeight, Value: set.Weight})
		if !m.statusErr {
			m = m.mutate(tracker.Mutation{ID: id, Field: tracker.FieldReps, Value: set.Reps})
		}
	case inputSubstitute:
		if value == "" {
			return m
		}
		m = m.mutate(tracker.Mutation{ID: id, Field: tracker.FieldSubstitute, Value: value})
	case inputZone2:
		m = m.mutate(tracker.Mutation{Field: tracker.FieldZone2, Value: value})
	case inputVigorous:
		m = m.mutate(tracker.Mutation{Field: tracker.FieldVigorous, Value: value})
	}
	return m
}

func (m SessionModel) mutate(mut tracker.Mutation) SessionModel {
	if err := m.tracker.MutateDraft(m.ctx, mut); err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	m.setStatus("", false)
	return m
}

func (m SessionModel) save() (tea.Model, tea.Cmd) {
	rec, err := m.tracker.SaveSession(m.ctx, m.kind)
	if err != nil {
		if errors.Is(err, errors.ErrValidation) {
			m.setStatus("Complete at least one exercise first!", true)
		} else {
			m.setStatus(err.Error(), true)
		}
		return m, nil
	}
	m.saved = &rec
	return m, tea.Quit
}

func (m *SessionModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// View renders the TUI
func (m SessionModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth - 1

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderChecklist(leftWidth),
		" ",
		m.renderDetails(rightWidth),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		content,
		"",
		m.renderFooter(),
	)
}

func (m SessionModel) renderChecklist(width int) string {
	var b strings.Builder
	d := m.tracker.Draft()

	title := "Strength Day"
	if m.kind == models.SessionCardio {
		title = "Cardio Day"
	}
	b.WriteString(HeaderStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(DisabledStyle.Italic(true).Render("Nothing to do today"))
		return PanelStyle.Width(width).Render(b.String())
	}

	start := m.page * m.perPage
	end := min(start+m.perPage, len(m.rows))
	var lastCategory models.Category
	for i := start; i < end; i++ {
		r := m.rows[i]
		if r.category != "" && r.category != lastCategory {
			if lastCategory != "" {
				b.WriteString("\n")
			}
			b.WriteString(AccentStyle.Bold(true).Render(r.category.Title()))
			b.WriteString("\n")
			lastCategory = r.category
		}

		done := d.Strength[r.id].Completed
		if m.kind == models.SessionCardio {
			done = d.Cardio[r.id].Completed
		}
		box := MutedStyle.Render("○")
		if done {
			box = SuccessStyle.Render("✓")
		}

		name := r.name
		if i == m.selected {
			name = m.sweep.Render(name)
		}
		line := fmt.Sprintf("%s %s", box, name)
		if r.prescription != "" {
			line += " " + DisabledStyle.Render(r.prescription)
		}
		if e := d.Strength[r.id]; e.Weight != "" || e.Reps != "" {
			line += " " + AccentStyle.Render(strings.TrimSpace(e.Weight+" x "+e.Reps))
		}

		if i == m.selected {
			b.WriteString(SelectedBorder.Render(line))
		} else {
			b.WriteString(" " + line)
		}
		b.WriteString("\n")
	}

	if m.perPage < len(m.rows) {
		totalPages := (len(m.rows) + m.perPage - 1) / m.perPage
		b.WriteString(HelpStyle.MarginTop(1).Render(fmt.Sprintf("Page %d/%d", m.page+1, totalPages)))
	}

	return PanelStyle.Width(width).Render(b.String())
}

func (m SessionModel) renderDetails(width int) string {
	var b strings.Builder
	if len(m.rows) == 0 {
		return PanelStyle.Width(width).Render("")
	}

	r := m.rows[m.selected]
	d := m.tracker.Draft()

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText)).Width(width - 2).Render(r.name))
	b.WriteString("\n")
	if r.prescription != "" {
		b.WriteString(MutedStyle.Render(r.prescription))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.kind == models.SessionCardio {
		b.WriteString(fmt.Sprintf("Today: %s zone 2 · %s vigorous\n\n",
			parser.FormatMinutes(d.Zone2Minutes), parser.FormatMinutes(d.VigorousMinutes)))
		b.WriteString(RenderWeeklyProgress(m.tracker.WeeklyProgress(), max(10, width-6)))
		return PanelStyle.Width(width).Render(b.String())
	}

	if last, ok := m.tracker.LastValue(r.id); ok {
		b.WriteString("Last: ")
		b.WriteString(AccentStyle.Render(last.String()))
		b.WriteString("\n")
	} else if r.tracksWeight {
		b.WriteString(DisabledStyle.Render("No weight recorded yet"))
		b.WriteString("\n")
	}

	if name, ok := d.Strength[r.id].Substitution.Name(); ok {
		b.WriteString("Doing instead: ")
		b.WriteString(WarningStyle.Render(name))
		b.WriteString("\n")
	}

	return PanelStyle.Width(width).Render(b.String())
}

func (m SessionModel) renderFooter() string {
	var lines []string

	if m.kind == models.SessionStrength {
		done, total := m.tracker.DraftProgress()
		lines = append(lines, MutedStyle.Render(fmt.Sprintf("%d / %d exercises", done, total)))
	}

	switch m.focus {
	case FocusInput:
		lines = append(lines, m.input.View())
	case FocusConfirm:
		lines = append(lines, WarningStyle.Render("Clear the substitution for this exercise? (y/n)"))
	}

	if m.status != "" {
		style := MutedStyle
		if m.statusErr {
			style = ErrorStyle
		}
		lines = append(lines, style.Render(m.status))
	}

	help := "↑/↓ nav · space check · w weight/reps · u substitute · s save · q quit"
	if m.kind == models.SessionCardio {
		help = "↑/↓ nav · space check · z zone 2 · v vigorous · s save · q quit"
	}
	lines = append(lines, HelpStyle.Width(m.width).Align(lipgloss.Center).Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RunSessionTUI runs the checklist and returns the saved record, or nil if
// the user quit without saving. The draft is checkpointed on every edit
// either way.
func RunSessionTUI(ctx context.Context, t *tracker.Tracker, kind models.SessionKind) (*models.SessionRecord, error) {
	p := tea.NewProgram(NewSessionModel(ctx, t, kind), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(SessionModel).Saved(), nil
}
