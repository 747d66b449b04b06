package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Johannes-Berggren/branchgoblin/internal/flow"
)

func (a *app) newBranchCmd() *cobra.Command {
	var extra bool

	cmd := &cobra.Command{
		Use:     "branch",
		Aliases: []string{"b"},
		Short:   "List local and remote branches",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			choices, err := a.flow.Choices(cmd.Context())
			if err != nil {
				return err
			}
			a.printer.Branches(choices, extra)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&extra, "extra", "e", false, "split ticket branches into prefix, number and short name")
	return cmd
}

func (a *app) newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "current",
		Aliases: []string{"cb"},
		Short:   "Print the current branch",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.printer.CurrentBranch(a.flow.Session().RefreshBranch(cmd.Context(), a.status))
			return nil
		},
	}
}

func (a *app) newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "checkout [branch]",
		Aliases: []string{"co"},
		Short:   "Check out a branch, choosing from all branches when none is given",
		Long: `Check out a branch. Without a name, remote branches are fetched and every
branch is offered. Picking a remote branch creates a local tracking branch;
the current branch, the remote HEAD and remote branches that already exist
locally are shown but cannot be picked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.flow.Checkout(cmd.Context(), firstArg(args), a.opts())
		},
	}
}

func (a *app) newCreateBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "create-branch [name]",
		Aliases: []string{"cr"},
		Short:   "Create a branch from HEAD and publish it",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.flow.CreateBranch(cmd.Context(), firstArg(args), a.opts())
		},
	}
}

func (a *app) newDeleteBranchCmd() *cobra.Command {
	var del flow.DeleteOptions

	cmd := &cobra.Command{
		Use:     "delete-branch [name]",
		Aliases: []string{"del"},
		Short:   "Delete a branch locally and on the remote",
		Long: `Delete a branch locally and on the remote. Without a name, local branches
are offered, leaving out the default branch and the current branch unless
asked for. A branch that was never pushed is only deleted locally.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.flow.DeleteBranch(cmd.Context(), firstArg(args), del, a.opts())
		},
	}
	cmd.Flags().BoolVar(&del.IncludeDefault, "default", false, "offer the default branch")
	cmd.Flags().BoolVar(&del.IncludeCurrent, "current", false, "offer the current branch")
	cmd.Flags().BoolVarP(&del.Force, "force", "f", false, "delete even if not merged")
	return cmd
}

func (a *app) newNextTicketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next-ticket",
		Short: "Print the next free ticket number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			next, err := a.flow.NextTicket(cmd.Context(), flow.Options{Verbose: false})
			if err != nil {
				return err
			}
			a.printer.Line(next)
			return nil
		},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
