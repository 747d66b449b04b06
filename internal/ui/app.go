package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/Johannes-Berggren/branchgoblin/internal/logging"
)

// QuitItem is the menu value that ends the menu loop.
const QuitItem = "quit"

type MenuItem struct {
	Name        string
	Description string
}

// Menu picks one command to run.
type Menu struct {
	Completed bool
	Cancelled bool
	form      *huh.Form
	selected  string
}

func NewMenu(header string, items []MenuItem, theme *Theme) *Menu {
	m := &Menu{}

	options := make([]huh.Option[string], 0, len(items)+1)
	for _, item := range items {
		label := item.Name
		if item.Description != "" {
			label += "  " + theme.Muted.Render(item.Description)
		}
		options = append(options, huh.NewOption(label, item.Name))
	}
	options = append(options, huh.NewOption("Quit", QuitItem))

	if len(items) > 0 {
		m.selected = items[0].Name
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(header).
				Options(options...).
				Height(min(len(options)+2, 16)).
				Value(&m.selected),
		),
	).WithShowHelp(false)

	return m
}

func (m *Menu) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" || keyMsg.String() == "q" {
			m.Cancelled = true
			m.Completed = true
			return m, tea.Quit
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.Completed = true
		logging.Logger.Info("Menu selection", "command", m.selected)
		return m, tea.Quit
	}

	return m, cmd
}

func (m *Menu) View() string {
	if m.Completed {
		return ""
	}
	return m.form.View()
}

// Selected is the picked command, QuitItem when the menu was left.
func (m *Menu) Selected() string {
	if m.Cancelled {
		return QuitItem
	}
	return m.selected
}
