// Package flow wires user intent (checkout, create, delete, ...) to git
// commands and reports the resulting repository state after every change.
package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/Johannes-Berggren/branchgoblin/internal/branch"
	"github.com/Johannes-Berggren/branchgoblin/internal/git"
	"github.com/Johannes-Berggren/branchgoblin/internal/logging"
	"github.com/Johannes-Berggren/branchgoblin/internal/models"
	"github.com/Johannes-Berggren/branchgoblin/internal/status"
)

// ErrAborted is returned when the user leaves a chooser or prompt empty.
// It is a normal outcome, not a failure.
var ErrAborted = errors.New("Abort")

func aborted(action string) error {
	logging.Logger.Info("User aborted", "action", action)
	return fmt.Errorf("%w => do not %s.", ErrAborted, action)
}

// fallbackDefaultBranch is used when the default branch is neither
// configured nor detectable.
const fallbackDefaultBranch = "master"

// Options are per-call output settings.
type Options struct {
	// Verbose prints git output and progress lines. Errors and warnings
	// are printed regardless.
	Verbose bool
}

// DefaultOptions prints everything.
func DefaultOptions() Options {
	return Options{Verbose: true}
}

// Selector shows annotated choices and returns the picked SelectValue, or
// "" when the user aborted.
type Selector interface {
	Select(ctx context.Context, title string, choices []models.ChoiceAnnotation, defaultValue string) (string, error)
}

// Prompter asks for free text; "" means the user aborted.
type Prompter interface {
	BranchName(ctx context.Context) (string, error)
	CommitMessage(ctx context.Context) (string, error)
}

// Reporter renders results for the user.
type Reporter interface {
	Output(text string, opts Options)
	Info(msg string, opts Options)
	Warn(msg string)
	FullStatus(snap models.StatusSnapshot, opts Options)
	Paths(paths []models.PathEntry, opts Options)
	Divergence(branch string, d models.Divergence, opts Options)
}

type Config struct {
	Remote        string
	DefaultBranch string // "" detects it from the remote
}

// Orchestrator runs the interactive flows. It is not safe for concurrent
// use; one git command runs at a time.
type Orchestrator struct {
	git      *git.Client
	status   *status.Aggregator
	parser   branch.Parser
	selector Selector
	prompter Prompter
	report   Reporter
	cfg      Config
	session  Session
}

func New(client *git.Client, agg *status.Aggregator, selector Selector, prompter Prompter, report Reporter, cfg Config) *Orchestrator {
	return &Orchestrator{
		git:      client,
		status:   agg,
		parser:   branch.NewParser(cfg.Remote),
		selector: selector,
		prompter: prompter,
		report:   report,
		cfg:      cfg,
	}
}

func (o *Orchestrator) Session() *Session {
	return &o.session
}

// DefaultBranch returns the configured default branch, detecting and
// remembering it on first use.
func (o *Orchestrator) DefaultBranch(ctx context.Context) string {
	if o.cfg.DefaultBranch != "" {
		return o.cfg.DefaultBranch
	}
	name, err := o.git.DefaultBranch(ctx, o.parser.Remote())
	if err != nil {
		logging.Logger.Debug("Using fallback default branch", "error", err)
		name = fallbackDefaultBranch
	}
	o.cfg.DefaultBranch = name
	return name
}

// Choices lists all branches annotated for checkout against the freshly
// queried current branch.
func (o *Orchestrator) Choices(ctx context.Context) ([]models.ChoiceAnnotation, error) {
	refs, err := o.git.Branches(ctx)
	if err != nil {
		return nil, err
	}
	current := o.session.RefreshBranch(ctx, o.status)
	return o.parser.Classify(refs, current), nil
}

// Report re-runs the full status query and prints it.
func (o *Orchestrator) Report(ctx context.Context, opts Options) models.StatusSnapshot {
	snap := o.session.RefreshStatus(ctx, o.status)
	o.report.FullStatus(snap, opts)
	return snap
}

func (o *Orchestrator) output(text string, opts Options) {
	if text != "" {
		o.report.Output(text, opts)
	}
}
