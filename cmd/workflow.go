package cmd

import (
	"github.com/spf13/cobra"
)

func (a *app) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add",
		Aliases: []string{"a"},
		Short:   "Stage every change",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.flow.Add(cmd.Context(), a.opts())
		},
	}
}

func (a *app) newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "commit [message]",
		Aliases: []string{"cm"},
		Short:   "Commit all tracked changes",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.flow.Commit(cmd.Context(), firstArg(args), a.opts())
		},
	}
}

func (a *app) newAmendCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "amend",
		Aliases: []string{"am"},
		Short:   "Add the staged changes to the last commit",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.flow.Amend(cmd.Context(), a.opts())
		},
	}
}

func (a *app) newPushCmd() *cobra.Command {
	var setUpstream bool

	cmd := &cobra.Command{
		Use:     "push",
		Aliases: []string{"ph"},
		Short:   "Push the current branch",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.flow.Push(cmd.Context(), setUpstream, a.opts())
		},
	}
	cmd.Flags().BoolVarP(&setUpstream, "set-upstream", "u", false, "publish the branch and track it")
	return cmd
}

func (a *app) newFetchCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "fetch",
		Aliases: []string{"f"},
		Short:   "Fetch remote branches",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.flow.Fetch(cmd.Context(), all, a.opts())
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "fetch every remote")
	return cmd
}

func (a *app) newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "pull",
		Aliases: []string{"pl"},
		Short:   "Pull the current branch",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.flow.Pull(cmd.Context(), a.opts())
		},
	}
}

func (a *app) newRebaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rebase [branch]",
		Aliases: []string{"r"},
		Short:   "Rebase the current branch, on the remote default branch unless chosen otherwise",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.flow.Rebase(cmd.Context(), firstArg(args), a.opts())
		},
	}
}

func (a *app) newRebaseLocalCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rebase-local [branch]",
		Aliases: []string{"rl"},
		Short:   "Rebase the current branch on its fork point with another branch",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.flow.RebaseLocal(cmd.Context(), firstArg(args), a.opts())
		},
	}
}

func (a *app) newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "merge [branch]",
		Aliases: []string{"m"},
		Short:   "Merge a branch into the current branch",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.flow.Merge(cmd.Context(), firstArg(args), a.opts())
		},
	}
}
