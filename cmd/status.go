package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Johannes-Berggren/branchgoblin/internal/git"
	"github.com/Johannes-Berggren/branchgoblin/internal/ui"
)

func (a *app) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"s"},
		Short:   "Show changed paths",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := a.status.Worktree(cmd.Context())
			if git.IsNotRepository(err) {
				a.printer.Notice(ui.NotInRepository)
				return nil
			}
			a.printer.Paths(paths, a.opts())
			return nil
		},
	}
}

func (a *app) newLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"lg"},
		Short:   "Show recent commits of the current branch",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max-count") {
				limit = a.cfg.Status.MaxCommits
			}
			a.printer.Commits(a.status.RecentCommits(cmd.Context(), limit))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "max-count", "n", 0, "number of commits, 0 for all (default status.max_commits)")
	return cmd
}

func (a *app) newGraphCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "graph",
		Aliases: []string{"gr"},
		Short:   "Show the commit graph",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max-count") {
				limit = a.cfg.Status.MaxGraphLines
			}
			a.printer.Graph(a.status.Graph(cmd.Context(), limit))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "max-count", "n", 0, "number of commits, 0 for all (default status.max_graph_lines)")
	return cmd
}

func (a *app) newAdvanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "advance [branch]",
		Aliases: []string{"adv"},
		Short:   "Show commits behind and ahead of the upstream",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			branch := firstArg(args)
			if branch == "" {
				branch = a.flow.Session().RefreshBranch(cmd.Context(), a.status)
			}
			a.printer.Divergence(branch, a.status.Divergence(cmd.Context(), branch), a.opts())
			return nil
		},
	}
}

func (a *app) newStatusFullCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status-full",
		Aliases: []string{"sf"},
		Short:   "Show branch, recent commits, changed paths and upstream state",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.flow.Report(cmd.Context(), a.opts())
			return nil
		},
	}
}
