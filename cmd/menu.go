package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Johannes-Berggren/branchgoblin/internal/flow"
	"github.com/Johannes-Berggren/branchgoblin/internal/logging"
	"github.com/Johannes-Berggren/branchgoblin/internal/ui"
)

// menuCommands are the commands reachable from the menu and the list.
func menuCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, c := range root.Commands() {
		if c.Hidden || !c.IsAvailableCommand() || c.RunE == nil {
			continue
		}
		switch c.Name() {
		case "help", "completion", "menu", "list":
			continue
		}
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List all commands with their aliases",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmds := menuCommands(cmd.Root())

			nameWidth, aliasWidth := 0, 0
			for _, c := range cmds {
				nameWidth = max(nameWidth, len(c.Name()))
				aliasWidth = max(aliasWidth, len(strings.Join(c.Aliases, ", ")))
			}
			for _, c := range cmds {
				a.printer.Line(fmt.Sprintf("%-*s  %-*s  %s", nameWidth, c.Name(), aliasWidth, strings.Join(c.Aliases, ", "), c.Short))
			}
			return nil
		},
	}
}

func (a *app) newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Pick commands from a menu until quit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd)
		},
	}
}

// runMenu shows the menu, runs the picked command with its defaults and
// comes back, until the user quits. Failures of a picked command are
// printed and do not end the menu.
func (a *app) runMenu(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cmds := menuCommands(cmd.Root())

	items := make([]ui.MenuItem, 0, len(cmds))
	byName := make(map[string]*cobra.Command, len(cmds))
	for _, c := range cmds {
		items = append(items, ui.MenuItem{Name: c.Name(), Description: c.Short})
		byName[c.Name()] = c
	}

	for {
		snap := a.flow.Session().RefreshStatus(ctx, a.status)
		picked, err := a.term.Menu(ctx, ui.Header(&snap), items)
		if err != nil {
			return err
		}
		if picked == ui.QuitItem {
			return nil
		}

		logging.Logger.Debug("Running menu command", "command", picked)
		c := byName[picked]
		c.SetContext(ctx)
		err = c.RunE(c, nil)
		switch {
		case err == nil:
		case errors.Is(err, flow.ErrAborted):
			a.printer.Notice(err.Error())
		default:
			a.printer.Error(err)
		}
	}
}
