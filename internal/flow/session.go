package flow

import (
	"context"

	"github.com/Johannes-Berggren/branchgoblin/internal/models"
	"github.com/Johannes-Berggren/branchgoblin/internal/status"
)

// Session is the state one invocation knows about the repository. It is
// only ever updated by an explicit refresh; "" means not known yet.
type Session struct {
	CurrentBranch string
	LastStatus    *models.StatusSnapshot
}

// RefreshBranch re-queries the current branch.
func (s *Session) RefreshBranch(ctx context.Context, agg *status.Aggregator) string {
	s.CurrentBranch = agg.CurrentBranch(ctx)
	return s.CurrentBranch
}

// RefreshStatus re-runs the full status query, which also refreshes the
// current branch.
func (s *Session) RefreshStatus(ctx context.Context, agg *status.Aggregator) models.StatusSnapshot {
	snap := agg.FullStatus(ctx)
	s.CurrentBranch = snap.Branch
	s.LastStatus = &snap
	return snap
}
