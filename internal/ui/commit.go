package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// CommitInput asks for a commit message.
type CommitInput struct {
	textarea textarea.Model
	theme    *Theme
	value    string
	err      error
	done     bool
}

func NewCommitInput(theme *Theme) *CommitInput {
	ta := textarea.New()
	ta.Placeholder = "Commit message..."
	ta.Focus()
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(5)

	return &CommitInput{
		textarea: ta,
		theme:    theme,
	}
}

func (c *CommitInput) Init() tea.Cmd {
	return textarea.Blink
}

func (c *CommitInput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			c.value = ""
			c.done = true
			return c, tea.Quit

		case "ctrl+d":
			message := strings.TrimSpace(c.textarea.Value())
			if message == "" {
				c.err = fmt.Errorf("commit message cannot be empty")
				return c, nil
			}
			c.value = message
			c.done = true
			return c, tea.Quit
		}

	case tea.WindowSizeMsg:
		c.textarea.SetWidth(min(msg.Width, 80))
	}

	c.textarea, cmd = c.textarea.Update(msg)
	return c, cmd
}

func (c *CommitInput) View() string {
	if c.done {
		return ""
	}

	t := c.theme
	var b strings.Builder
	b.WriteString(t.Title.Render("Commit all tracked changes") + "\n")
	if c.err != nil {
		b.WriteString(t.Error.Render(fmt.Sprintf("Error: %v", c.err)) + "\n")
	}
	b.WriteString(c.textarea.View() + "\n")
	b.WriteString(t.Muted.Render("ctrl+d: commit • esc: cancel"))
	return b.String()
}

func (c *CommitInput) Value() string {
	return c.value
}
