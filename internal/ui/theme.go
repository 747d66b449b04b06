// Package ui renders reports and runs the interactive pieces (branch
// chooser, text prompts, command menu). Nothing in here talks to git.
package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Johannes-Berggren/branchgoblin/internal/models"
)

// Theme holds the styles for one output stream.
type Theme struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Info      lipgloss.Style
	Warn      lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Cursor    lipgloss.Style

	Local    lipgloss.Style
	Remote   lipgloss.Style
	Current  lipgloss.Style
	Disabled lipgloss.Style

	Staged    lipgloss.Style
	Untracked lipgloss.Style
	Modified  lipgloss.Style

	Good lipgloss.Style
	Bad  lipgloss.Style
	Hint lipgloss.Style
}

// NewTheme builds styles bound to out. With color off, or when out is not
// a color terminal, every style renders as plain text.
func NewTheme(out io.Writer, color bool) *Theme {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Theme{
		Title:     r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Separator: r.NewStyle().Foreground(lipgloss.Color("240")),
		Info:      r.NewStyle().Foreground(lipgloss.Color("12")),
		Warn:      r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Error:     r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Muted:     r.NewStyle().Foreground(lipgloss.Color("241")),
		Cursor:    r.NewStyle().Background(lipgloss.Color("238")),

		Local:    r.NewStyle().Foreground(lipgloss.Color("15")),
		Remote:   r.NewStyle().Foreground(lipgloss.Color("196")),
		Current:  r.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		Disabled: r.NewStyle().Foreground(lipgloss.Color("240")),

		Staged:    r.NewStyle().Foreground(lipgloss.Color("34")),
		Untracked: r.NewStyle().Foreground(lipgloss.Color("11")),
		Modified:  r.NewStyle().Foreground(lipgloss.Color("196")),

		Good: r.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		Bad:  r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Hint: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	}
}

func (t *Theme) Category(c models.Category) lipgloss.Style {
	switch c {
	case models.CategoryCurrent:
		return t.Current
	case models.CategoryRemote:
		return t.Remote
	case models.CategoryDisabled:
		return t.Disabled
	default:
		return t.Local
	}
}

func (t *Theme) Path(c models.PathCategory) lipgloss.Style {
	switch c {
	case models.PathStaged:
		return t.Staged
	case models.PathUntracked:
		return t.Untracked
	default:
		return t.Modified
	}
}

func (t *Theme) Divergence(s models.DivergenceState) lipgloss.Style {
	switch s {
	case models.Equal:
		return t.Good
	case models.Ahead:
		return t.Hint
	default:
		return t.Bad
	}
}
