package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/Johannes-Berggren/branchgoblin/internal/branch"
	"github.com/Johannes-Berggren/branchgoblin/internal/logging"
)

var errNoBranch = errors.New("not on a branch")

// Add stages every change and lists what is now in the working tree.
func (o *Orchestrator) Add(ctx context.Context, opts Options) error {
	o.report.Info("Add all changes to the index", opts)
	out, err := o.git.AddAll(ctx)
	o.output(out, opts)
	if err != nil {
		return err
	}
	o.report.Paths(o.status.WorkingTreeStatus(ctx), opts)
	return nil
}

// Commit commits all tracked changes, asking for a message when none is
// given.
func (o *Orchestrator) Commit(ctx context.Context, message string, opts Options) error {
	if message == "" {
		var err error
		message, err = o.prompter.CommitMessage(ctx)
		if err != nil {
			return err
		}
		if message == "" {
			return aborted("commit")
		}
	}

	out, err := o.git.CommitAll(ctx, message)
	o.output(out, opts)
	if err != nil {
		return err
	}
	o.Report(ctx, opts)
	return nil
}

func (o *Orchestrator) Amend(ctx context.Context, opts Options) error {
	o.report.Info("Amend the last commit", opts)
	out, err := o.git.Amend(ctx)
	o.output(out, opts)
	if err != nil {
		return err
	}
	o.Report(ctx, opts)
	return nil
}

// Push pushes the current branch and shows how it now compares with its
// upstream.
func (o *Orchestrator) Push(ctx context.Context, setUpstream bool, opts Options) error {
	current := o.session.RefreshBranch(ctx, o.status)
	if setUpstream && current == "" {
		return errNoBranch
	}

	o.report.Info(fmt.Sprintf("Push branch %s", current), opts)
	out, err := o.git.Push(ctx, setUpstream, o.parser.Remote(), current)
	o.output(out, opts)
	if err != nil {
		return err
	}
	o.report.Divergence(current, o.status.Divergence(ctx, current), opts)
	return nil
}

func (o *Orchestrator) Fetch(ctx context.Context, all bool, opts Options) error {
	o.report.Info("Fetch remote branches", opts)
	out, err := o.git.Fetch(ctx, all, false)
	o.output(out, opts)
	if err != nil {
		return err
	}
	o.Report(ctx, opts)
	return nil
}

func (o *Orchestrator) Pull(ctx context.Context, opts Options) error {
	o.report.Info("Pull current branch", opts)
	out, err := o.git.Pull(ctx)
	o.output(out, opts)
	if err != nil {
		return err
	}
	o.Report(ctx, opts)
	return nil
}

// Rebase rebases the current branch on target, by default the remote's
// default branch.
func (o *Orchestrator) Rebase(ctx context.Context, target string, opts Options) error {
	target, err := o.chooseOther(ctx, target, "Select branch to rebase on", "rebase")
	if err != nil {
		return err
	}

	o.report.Info(fmt.Sprintf("Rebase on %s", target), opts)
	out, err := o.git.Rebase(ctx, target)
	o.output(out, opts)
	if err != nil {
		return err
	}
	o.Report(ctx, opts)
	return nil
}

// RebaseLocal replays the current branch onto its fork point with target,
// which lets the user rework local commits without moving the base.
func (o *Orchestrator) RebaseLocal(ctx context.Context, target string, opts Options) error {
	target, err := o.chooseOther(ctx, target, "Select branch to find the fork point with", "rebase")
	if err != nil {
		return err
	}
	current := o.session.CurrentBranch
	if current == "" {
		current = o.session.RefreshBranch(ctx, o.status)
	}
	if current == "" {
		return errNoBranch
	}

	fork, err := o.git.MergeBase(ctx, current, target)
	if err != nil {
		return err
	}

	o.report.Info(fmt.Sprintf("Rebase on fork point %s with %s", fork, target), opts)
	out, err := o.git.Rebase(ctx, fork)
	o.output(out, opts)
	if err != nil {
		return err
	}
	o.Report(ctx, opts)
	return nil
}

func (o *Orchestrator) Merge(ctx context.Context, source string, opts Options) error {
	source, err := o.chooseOther(ctx, source, "Select branch to merge", "merge")
	if err != nil {
		return err
	}

	o.report.Info(fmt.Sprintf("Merge %s", source), opts)
	out, err := o.git.Merge(ctx, source)
	o.output(out, opts)
	if err != nil {
		return err
	}
	o.Report(ctx, opts)
	return nil
}

// chooseOther returns target, or asks for one among every branch except
// the current one.
func (o *Orchestrator) chooseOther(ctx context.Context, target, title, action string) (string, error) {
	if target != "" {
		return target, nil
	}

	choices, err := o.Choices(ctx)
	if err != nil {
		return "", err
	}
	choices = branch.SortLocalFirst(branch.Others(choices))

	def := o.parser.Remote() + "/" + o.DefaultBranch(ctx)
	value, err := o.selector.Select(ctx, title, choices, def)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", aborted(action)
	}
	return value, nil
}

// NextTicket returns the number after the highest ticket seen in branch
// names or in the default branch history.
func (o *Orchestrator) NextTicket(ctx context.Context, opts Options) (string, error) {
	refs, err := o.git.Branches(ctx)
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}

	ref := o.parser.Remote() + "/" + o.DefaultBranch(ctx)
	subjects, err := o.git.Subjects(ctx, ref)
	if err != nil {
		logging.Logger.Debug("Ignoring history for ticket numbers", "ref", ref, "error", err)
	}

	next, err := branch.FormatTicket(o.parser.HighestTicket(names, subjects) + 1)
	if err != nil {
		return "", err
	}
	o.report.Info(fmt.Sprintf("Next ticket number is %s", next), opts)
	return next, nil
}
