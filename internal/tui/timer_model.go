package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/blueprint/internal/parser"
	"github.com/balkashynov/blueprint/internal/tracker"
)

// TimerModel is a stopwatch for a cardio block. Stopping it adds the elapsed
// minutes to today's draft under the selected zone.
type TimerModel struct {
	width  int
	height int

	zone tracker.Field // FieldZone2 or FieldVigorous

	startedAt time.Time
	banked    time.Duration // time from earlier runs before a pause
	paused    bool
	elapsed   time.Duration

	stopping bool
	exiting  bool
}

// timerTickMsg is sent every second to update the clock
type timerTickMsg struct{}

// NewTimerModel returns a running timer for zone
func NewTimerModel(zone tracker.Field) TimerModel {
	if zone != tracker.FieldVigorous {
		zone = tracker.FieldZone2
	}
	return TimerModel{zone: zone, startedAt: time.Now()}
}

// Init starts the ticker
func (m TimerModel) Init() tea.Cmd {
	return timerTick()
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.elapsed = m.total(time.Now())
		if m.stopping || m.exiting {
			return m, nil
		}
		return m, timerTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			m.elapsed = m.total(time.Now())
			m.stopping = true
			return m, tea.Quit
		case "p", " ":
			now := time.Now()
			if m.paused {
				m.startedAt = now
			} else {
				m.banked += now.Sub(m.startedAt)
			}
			m.paused = !m.paused
			m.elapsed = m.total(now)
			return m, nil
		case "tab", "z", "v":
			if m.zone == tracker.FieldZone2 {
				m.zone = tracker.FieldVigorous
			} else {
				m.zone = tracker.FieldZone2
			}
			return m, nil
		case "ctrl+c", "esc", "q":
			m.exiting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m TimerModel) total(now time.Time) time.Duration {
	if m.paused {
		return m.banked
	}
	return m.banked + now.Sub(m.startedAt)
}

// Minutes returns the elapsed time in minutes, rounded to a tenth
func (m TimerModel) Minutes() float64 {
	return math.Round(m.elapsed.Minutes()*10) / 10
}

// View renders the timer
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	zoneLabel := "ZONE 2"
	if m.zone == tracker.FieldVigorous {
		zoneLabel = "VIGOROUS"
	}
	state := "running"
	if m.paused {
		state = "paused"
	}

	center := lipgloss.NewStyle().Align(lipgloss.Center).Width(m.width)
	components := []string{
		center.Inherit(HeaderStyle).Render(zoneLabel),
		center.Render(renderSegmentClock(m.elapsed)),
		center.Inherit(MutedStyle).Italic(true).Render(fmt.Sprintf("%s · started %s", state, m.startedAt.Format("15:04"))),
	}

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(max(1, m.height-2)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(components, "\n\n"))

	help := HelpStyle.Width(m.width).Align(lipgloss.Center).
		Render("s stop & add minutes · p pause · tab switch zone · q discard")
	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

// segment glyphs, three rows per character
var segmentGlyphs = map[rune][3]string{
	'0': {"┏━┓", "┃ ┃", "┗━┛"},
	'1': {"  ╻", "  ┃", "  ╹"},
	'2': {"╺━┓", "┏━┛", "┗━╸"},
	'3': {"╺━┓", " ━┫", "╺━┛"},
	'4': {"╻ ╻", "┗━┫", "  ╹"},
	'5': {"┏━╸", "┗━┓", "╺━┛"},
	'6': {"┏━╸", "┣━┓", "┗━┛"},
	'7': {"╺━┓", "  ┃", "  ╹"},
	'8': {"┏━┓", "┣━┫", "┗━┛"},
	'9': {"┏━┓", "┗━┫", "╺━┛"},
	':': {" ", "╏", " "},
}

func renderSegmentClock(d time.Duration) string {
	h := int(d.Hours())
	mnt := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60

	text := fmt.Sprintf("%02d:%02d", mnt, sec)
	if h > 0 {
		text = fmt.Sprintf("%d:%02d:%02d", h, mnt, sec)
	}

	var rows [3]strings.Builder
	for _, r := range text {
		g := segmentGlyphs[r]
		for i := range rows {
			rows[i].WriteString(g[i])
			rows[i].WriteString(" ")
		}
	}
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	return style.Render(strings.Join([]string{rows[0].String(), rows[1].String(), rows[2].String()}, "\n"))
}

// RunTimerTUI runs the cardio timer. When stopped with s, the elapsed
// minutes are added to the draft's minutes for the selected zone and the
// new draft total is returned.
func RunTimerTUI(ctx context.Context, t *tracker.Tracker, zone tracker.Field) (added float64, err error) {
	p := tea.NewProgram(NewTimerModel(zone), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return 0, err
	}

	m := final.(TimerModel)
	if !m.stopping || m.Minutes() <= 0 {
		return 0, nil
	}
	if err := AddMinutes(ctx, t, m.zone, m.Minutes()); err != nil {
		return 0, err
	}
	return m.Minutes(), nil
}

// AddMinutes adds minutes to the draft's total for zone
func AddMinutes(ctx context.Context, t *tracker.Tracker, zone tracker.Field, minutes float64) error {
	d := t.Draft()
	current := d.Zone2Minutes
	if zone == tracker.FieldVigorous {
		current = d.VigorousMinutes
	}
	return t.MutateDraft(ctx, tracker.Mutation{
		Field: zone,
		Value: parser.FormatMinutes(current + minutes),
	})
}
