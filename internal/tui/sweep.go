package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	sweepInterval   = 90 * time.Millisecond
	sweepBand       = 4  // highlighted glyphs
	sweepPauseTicks = 12 // ticks to hold between passes
)

// sweepTickMsg advances the highlight
type sweepTickMsg struct{}

// Sweep is a band of light that slides across the selected exercise name.
// With colors disabled it renders a static highlight and never ticks.
type Sweep struct {
	pos     int
	paused  int
	enabled bool
}

// NewSweep returns a sweep positioned before the start of the text
func NewSweep() *Sweep {
	return &Sweep{pos: -sweepBand, enabled: HasColorSupport()}
}

// Tick schedules the next frame
func (s *Sweep) Tick() tea.Cmd {
	if !s.enabled {
		return nil
	}
	return tea.Tick(sweepInterval, func(time.Time) tea.Msg {
		return sweepTickMsg{}
	})
}

// Advance moves the band one glyph forward, pausing after each pass
func (s *Sweep) Advance(textLen int) {
	if s.paused > 0 {
		s.paused--
		return
	}
	s.pos++
	if s.pos > textLen {
		s.pos = -sweepBand
		s.paused = sweepPauseTicks
	}
}

// Reset restarts the pass, used when the selection moves
func (s *Sweep) Reset() {
	s.pos = -sweepBand
	s.paused = 0
}

// Render draws text with the band highlighted
func (s *Sweep) Render(text string) string {
	base := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
	if !s.enabled {
		return HeaderStyle.Render(text)
	}
	glow := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))

	runes := []rune(text)
	start := clamp(s.pos, 0, len(runes))
	end := clamp(s.pos+sweepBand, 0, len(runes))

	var b strings.Builder
	b.WriteString(base.Render(string(runes[:start])))
	b.WriteString(glow.Render(string(runes[start:end])))
	b.WriteString(base.Render(string(runes[end:])))
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
