// Package status gathers working-tree, history and upstream state from git.
// Every query degrades to an empty or default result instead of failing,
// including outside a repository.
package status

import (
	"bufio"
	"context"
	"strconv"
	"strings"

	"github.com/Johannes-Berggren/branchgoblin/internal/git"
	"github.com/Johannes-Berggren/branchgoblin/internal/logging"
	"github.com/Johannes-Berggren/branchgoblin/internal/models"
)

type Aggregator struct {
	runner git.Runner
	remote string
	// CommitLimit caps the commits FullStatus collects; 0 means all.
	CommitLimit int
}

func New(r git.Runner, remote string) *Aggregator {
	return &Aggregator{runner: r, remote: remote}
}

// CurrentBranch returns the checked-out branch, or "" when there is none
// (outside a repository, or detached HEAD).
func (a *Aggregator) CurrentBranch(ctx context.Context) string {
	output, err := a.runner.Output(ctx, git.CurrentBranchArgs()...)
	if err != nil {
		logging.Logger.Debug("No current branch", "error", err)
		return ""
	}
	line, _, _ := strings.Cut(output, "\n")
	return strings.TrimSpace(line)
}

// WorkingTreeStatus lists changed paths in porcelain order. An empty result
// means there is nothing to commit.
func (a *Aggregator) WorkingTreeStatus(ctx context.Context) []models.PathEntry {
	paths, _ := a.Worktree(ctx)
	return paths
}

// Worktree is WorkingTreeStatus that also returns the git failure, so a
// caller can tell "outside a repository" from a clean tree.
func (a *Aggregator) Worktree(ctx context.Context) ([]models.PathEntry, error) {
	output, err := a.runner.Output(ctx, git.StatusArgs()...)
	if err != nil {
		logging.Logger.Debug("Failed to get status", "error", err)
		return nil, err
	}
	return parseStatus(output), nil
}

// RecentCommits returns one rendered line per commit, newest first.
// limit <= 0 returns the whole history.
func (a *Aggregator) RecentCommits(ctx context.Context, limit int) []string {
	return a.lines(ctx, git.LogArgs(limit, false))
}

// Graph is RecentCommits with the ascii commit graph in front of each line.
func (a *Aggregator) Graph(ctx context.Context, limit int) []string {
	return a.lines(ctx, git.LogArgs(limit, true))
}

func (a *Aggregator) lines(ctx context.Context, args []string) []string {
	output, err := a.runner.Output(ctx, args...)
	if err != nil {
		logging.Logger.Debug("Failed to read log", "error", err)
		return nil
	}

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Divergence counts commits behind and ahead of <remote>/<branch>. Anything
// other than exactly two counts means no upstream.
func (a *Aggregator) Divergence(ctx context.Context, branch string) models.Divergence {
	if branch == "" {
		return models.Divergence{}
	}

	output, err := a.runner.Output(ctx, git.LeftRightCountArgs(a.remote, branch)...)
	if err != nil {
		logging.Logger.Debug("No upstream", "branch", branch, "error", err)
		return models.Divergence{}
	}

	d, ok := parseDivergence(output)
	if !ok {
		logging.Logger.Debug("Unexpected rev-list output", "branch", branch, "output", output)
	}
	return d
}

func parseDivergence(output string) (models.Divergence, bool) {
	parts := strings.Fields(output)
	if len(parts) != 2 {
		return models.Divergence{}, false
	}

	behind, err := strconv.Atoi(parts[0])
	if err != nil || behind < 0 {
		return models.Divergence{}, false
	}
	ahead, err := strconv.Atoi(parts[1])
	if err != nil || ahead < 0 {
		return models.Divergence{}, false
	}

	return models.Tracked(behind, ahead), true
}

// FullStatus composes the queries above. Without a current branch it
// returns the empty snapshot without asking git anything else.
func (a *Aggregator) FullStatus(ctx context.Context) models.StatusSnapshot {
	branch := a.CurrentBranch(ctx)
	if branch == "" {
		return models.StatusSnapshot{}
	}

	return models.StatusSnapshot{
		Branch:     branch,
		Paths:      a.WorkingTreeStatus(ctx),
		Commits:    a.RecentCommits(ctx, a.CommitLimit),
		Divergence: a.Divergence(ctx, branch),
	}
}
