package flow

import (
	"context"
	"fmt"

	"github.com/Johannes-Berggren/branchgoblin/internal/branch"
)

// Checkout switches to target. Without a target it refreshes remote refs
// and lets the user pick from every branch; remote picks create a local
// tracking branch under their candidate name.
func (o *Orchestrator) Checkout(ctx context.Context, target string, opts Options) error {
	if target != "" {
		o.report.Info(fmt.Sprintf("Checkout branch %s", target), opts)
		out, err := o.git.Checkout(ctx, target)
		o.output(out, opts)
		if err != nil {
			return err
		}
		o.Report(ctx, opts)
		return nil
	}

	// Classify against fresh remote refs; offline keeps the last fetch.
	if _, err := o.git.Fetch(ctx, false, true); err != nil {
		o.report.Warn(fmt.Sprintf("Could not refresh remote branches: %v", err))
	}

	choices, err := o.Choices(ctx)
	if err != nil {
		return err
	}

	value, err := o.selector.Select(ctx, "Select branch to checkout", choices, o.DefaultBranch(ctx))
	if err != nil {
		return err
	}
	if value == "" {
		return aborted("checkout")
	}

	choice, ok := branch.Find(choices, value)
	if !ok {
		return fmt.Errorf("%s cannot be checked out", value)
	}

	var out string
	if choice.IsRemote() {
		o.report.Info(fmt.Sprintf("Checkout %s as new local branch %s", choice.Classification.Name, value), opts)
		out, err = o.git.CheckoutTracking(ctx, value, choice.Classification.Name)
	} else {
		o.report.Info(fmt.Sprintf("Checkout branch %s", value), opts)
		out, err = o.git.Checkout(ctx, value)
	}
	o.output(out, opts)
	if err != nil {
		return err
	}

	o.Report(ctx, opts)
	return nil
}

// CreateBranch creates name from HEAD and always publishes it to the
// remote with upstream tracking.
func (o *Orchestrator) CreateBranch(ctx context.Context, name string, opts Options) error {
	if name == "" {
		var err error
		name, err = o.prompter.BranchName(ctx)
		if err != nil {
			return err
		}
		if name == "" {
			return aborted("create branch")
		}
	}

	o.report.Info(fmt.Sprintf("Create branch %s", name), opts)
	out, err := o.git.CreateBranch(ctx, name)
	o.output(out, opts)
	if err != nil {
		return err
	}

	out, pubErr := o.git.Publish(ctx, o.parser.Remote(), name)
	o.output(out, opts)

	o.Report(ctx, opts)
	return pubErr
}

// DeleteOptions widen the delete chooser and the delete itself.
type DeleteOptions struct {
	IncludeDefault bool
	IncludeCurrent bool
	Force          bool
}

// DeleteBranch deletes name locally and on the remote. A branch that was
// never published only loses its local copy and that still counts as done.
func (o *Orchestrator) DeleteBranch(ctx context.Context, name string, del DeleteOptions, opts Options) error {
	if name == "" {
		choices, err := o.Choices(ctx)
		if err != nil {
			return err
		}
		choices = branch.Local(choices, branch.LocalFilter{
			DefaultBranch:  o.DefaultBranch(ctx),
			IncludeDefault: del.IncludeDefault,
			IncludeCurrent: del.IncludeCurrent,
		})

		name, err = o.selector.Select(ctx, "Select branch to delete", choices, "")
		if err != nil {
			return err
		}
		if name == "" {
			return aborted("delete branch")
		}
	}

	o.report.Info(fmt.Sprintf("Delete branch %s", name), opts)
	out, err := o.git.DeleteBranch(ctx, name, del.Force)
	o.output(out, opts)
	if err != nil {
		return err
	}

	remote := o.parser.Remote()
	out, err = o.git.DeleteRemoteBranch(ctx, remote, name)
	if err != nil {
		o.report.Warn(fmt.Sprintf("Remote branch %s/%s not deleted: %v", remote, name, err))
	} else {
		o.output(out, opts)
	}
	o.report.Info(fmt.Sprintf("Branch %s deleted", name), opts)

	o.Report(ctx, opts)
	return nil
}
