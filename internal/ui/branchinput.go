package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Johannes-Berggren/branchgoblin/internal/git"
)

// BranchInput asks for a new branch name. Submitting an empty name or
// pressing esc aborts.
type BranchInput struct {
	textInput textinput.Model
	theme     *Theme
	value     string
	err       error
	done      bool
}

func NewBranchInput(theme *Theme) *BranchInput {
	ti := textinput.New()
	ti.Placeholder = "abc#123-short-name"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	return &BranchInput{
		textInput: ti,
		theme:     theme,
	}
}

func (b *BranchInput) Init() tea.Cmd {
	return textinput.Blink
}

func (b *BranchInput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			name := strings.TrimSpace(b.textInput.Value())
			if name != "" {
				if err := git.ValidateRefName(name); err != nil {
					b.err = err
					return b, nil
				}
			}
			b.value = name
			b.done = true
			return b, tea.Quit

		case "esc", "ctrl+c":
			b.value = ""
			b.done = true
			return b, tea.Quit
		}
	}

	b.err = nil
	b.textInput, cmd = b.textInput.Update(msg)
	return b, cmd
}

func (b *BranchInput) View() string {
	if b.done {
		return ""
	}

	t := b.theme
	view := "\n" + t.Title.Render("New branch name: ") + b.textInput.View() + "\n"
	if b.err != nil {
		view += t.Error.Render(b.err.Error()) + "\n"
	}
	return view + "\n" + t.Muted.Render("enter to create • esc to cancel")
}

func (b *BranchInput) Value() string {
	return b.value
}
