package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Johannes-Berggren/branchgoblin/internal/models"
)

// ChoiceList is the interactive branch chooser. Disabled rows are shown
// with their reason but the cursor never stops on them.
type ChoiceList struct {
	title   string
	choices []models.ChoiceAnnotation
	theme   *Theme
	cursor  int
	offset  int
	height  int
	value   string
	done    bool
}

// NewChoiceList puts the cursor on the enabled row selecting def, or on
// the first enabled row.
func NewChoiceList(title string, choices []models.ChoiceAnnotation, def string, theme *Theme) *ChoiceList {
	l := &ChoiceList{
		title:   title,
		choices: choices,
		theme:   theme,
		cursor:  -1,
	}
	for i, c := range choices {
		if c.Disabled() {
			continue
		}
		if l.cursor < 0 {
			l.cursor = i
		}
		if def != "" && c.SelectValue == def {
			l.cursor = i
			break
		}
	}
	return l
}

func (l *ChoiceList) Init() tea.Cmd {
	return nil
}

func (l *ChoiceList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down", "tab":
			l.move(1)

		case "k", "up", "shift+tab":
			l.move(-1)

		case "g", "home":
			l.jump(0, 1)

		case "G", "end":
			l.jump(len(l.choices)-1, -1)

		case "enter":
			if l.cursor >= 0 {
				l.value = l.choices[l.cursor].SelectValue
			}
			l.done = true
			return l, tea.Quit

		case "esc", "q", "ctrl+c":
			l.value = ""
			l.done = true
			return l, tea.Quit
		}

	case tea.WindowSizeMsg:
		l.height = msg.Height
	}

	l.scroll()
	return l, nil
}

// move steps the cursor to the next enabled row in direction dir.
func (l *ChoiceList) move(dir int) {
	if l.cursor < 0 {
		return
	}
	for i := l.cursor + dir; i >= 0 && i < len(l.choices); i += dir {
		if !l.choices[i].Disabled() {
			l.cursor = i
			return
		}
	}
}

// jump puts the cursor on the first enabled row from start in direction dir.
func (l *ChoiceList) jump(start, dir int) {
	if l.cursor < 0 {
		return
	}
	for i := start; i >= 0 && i < len(l.choices); i += dir {
		if !l.choices[i].Disabled() {
			l.cursor = i
			return
		}
	}
}

func (l *ChoiceList) visibleRows() int {
	// title and help line
	rows := l.height - 3
	if l.height == 0 || rows > len(l.choices) {
		return len(l.choices)
	}
	return max(rows, 1)
}

func (l *ChoiceList) scroll() {
	rows := l.visibleRows()
	if l.cursor < l.offset {
		l.offset = max(l.cursor, 0)
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
}

func (l *ChoiceList) View() string {
	if l.done {
		return ""
	}

	t := l.theme
	var out strings.Builder
	out.WriteString(t.Title.Render(l.title) + "\n")

	if l.cursor < 0 {
		out.WriteString(t.Muted.Render("no branch can be selected") + "\n")
	}

	end := min(l.offset+l.visibleRows(), len(l.choices))
	for i := l.offset; i < end; i++ {
		c := l.choices[i]
		line := t.Category(c.Category()).Render(c.DisplayName)
		if c.Disabled() {
			line += " " + t.Muted.Render(fmt.Sprintf("(%s)", c.DisabledReason))
		}

		if i == l.cursor {
			line = t.Cursor.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		out.WriteString(line + "\n")
	}

	out.WriteString(t.Muted.Render("↑/↓ move • enter select • esc abort"))
	return out.String()
}

// Value is the picked SelectValue, "" when aborted.
func (l *ChoiceList) Value() string {
	return l.value
}

func (l *ChoiceList) Done() bool {
	return l.done
}
