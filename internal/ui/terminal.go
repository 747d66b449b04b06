package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/Johannes-Berggren/branchgoblin/internal/flow"
	"github.com/Johannes-Berggren/branchgoblin/internal/models"
)

// ErrNotTerminal is returned by interactive prompts when stdin is not a
// terminal, e.g. in scripts and pipes.
var ErrNotTerminal = errors.New("interactive input needs a terminal, pass the name as an argument")

// Terminal runs the bubbletea prompts on the given streams.
type Terminal struct {
	in    io.Reader
	out   io.Writer
	theme *Theme
}

var (
	_ flow.Selector = (*Terminal)(nil)
	_ flow.Prompter = (*Terminal)(nil)
)

func NewTerminal(in io.Reader, out io.Writer, theme *Theme) *Terminal {
	return &Terminal{in: in, out: out, theme: theme}
}

// Interactive reports whether stdin is attached to a terminal.
func (t *Terminal) Interactive() bool {
	f, ok := t.in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (t *Terminal) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	if !t.Interactive() {
		return nil, ErrNotTerminal
	}
	p := tea.NewProgram(model,
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run prompt: %w", err)
	}
	return final, nil
}

func (t *Terminal) Select(ctx context.Context, title string, choices []models.ChoiceAnnotation, def string) (string, error) {
	final, err := t.run(ctx, NewChoiceList(title, choices, def, t.theme))
	if err != nil {
		return "", err
	}
	return final.(*ChoiceList).Value(), nil
}

func (t *Terminal) BranchName(ctx context.Context) (string, error) {
	final, err := t.run(ctx, NewBranchInput(t.theme))
	if err != nil {
		return "", err
	}
	return final.(*BranchInput).Value(), nil
}

func (t *Terminal) CommitMessage(ctx context.Context) (string, error) {
	final, err := t.run(ctx, NewCommitInput(t.theme))
	if err != nil {
		return "", err
	}
	return final.(*CommitInput).Value(), nil
}

// Menu shows the command menu and returns the picked command name.
func (t *Terminal) Menu(ctx context.Context, header string, items []MenuItem) (string, error) {
	final, err := t.run(ctx, NewMenu(header, items, t.theme))
	if err != nil {
		return "", err
	}
	return final.(*Menu).Selected(), nil
}
