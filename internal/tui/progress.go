package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/blueprint/internal/models"
	"github.com/balkashynov/blueprint/internal/parser"
)

// HasColorSupport reports whether colored output is allowed (NO_COLOR unset)
func HasColorSupport() bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	return !noColor
}

// NewProgressBar returns a static bar in the theme's teal gradient, or a
// solid grey fill when colors are disabled
func NewProgressBar(width int) progress.Model {
	if !HasColorSupport() {
		return progress.New(progress.WithWidth(width), progress.WithSolidFill("#808080"), progress.WithoutPercentage())
	}
	return progress.New(
		progress.WithWidth(width),
		progress.WithScaledGradient(ColorAccentMain, ColorAccentBright),
		progress.WithoutPercentage(),
	)
}

// RenderWeeklyProgress renders both aerobic targets as labeled bars
func RenderWeeklyProgress(p models.WeeklyProgress, width int) string {
	bar := NewProgressBar(width)
	line := func(label string, minutes, target, percent float64) string {
		style := MutedStyle
		if percent >= 100 {
			style = SuccessStyle
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			fmt.Sprintf("%s %s",
				lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText)).Render(label),
				style.Render(fmt.Sprintf("%s / %s min (%.0f%%)", parser.FormatMinutes(minutes), parser.FormatMinutes(target), percent))),
			bar.ViewAs(percent/100),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		line("Zone 2", p.Zone2Minutes, p.Zone2Target, p.Zone2Percent),
		"",
		line("Vigorous", p.VigorousMinutes, p.VigorousTarget, p.VigorousPercent),
	)
}
