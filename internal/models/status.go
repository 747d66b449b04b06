package models

// DivergenceState is the presentational bucket of a divergence.
type DivergenceState int

const (
	NoUpstream DivergenceState = iota
	Equal
	Diverged
	Behind
	Ahead
)

func (s DivergenceState) String() string {
	switch s {
	case Equal:
		return "equal"
	case Diverged:
		return "diverged"
	case Behind:
		return "behind"
	case Ahead:
		return "ahead"
	default:
		return "no upstream"
	}
}

// Divergence is the behind/ahead commit count against an upstream. The zero
// value means no upstream could be determined, which is not the same as
// being level with it.
type Divergence struct {
	Behind  int
	Ahead   int
	Tracked bool
}

func Tracked(behind, ahead int) Divergence {
	return Divergence{Behind: behind, Ahead: ahead, Tracked: true}
}

// State checks diverged before behind.
func (d Divergence) State() DivergenceState {
	switch {
	case !d.Tracked:
		return NoUpstream
	case d.Behind == 0 && d.Ahead == 0:
		return Equal
	case d.Behind > 0 && d.Ahead > 0:
		return Diverged
	case d.Behind > 0:
		return Behind
	default:
		return Ahead
	}
}

// StatusSnapshot is the repository state gathered by one full status query.
// An empty Branch means the working directory is not inside a repository.
type StatusSnapshot struct {
	Branch     string
	Paths      []PathEntry
	Commits    []string
	Divergence Divergence
}

func (s StatusSnapshot) InRepository() bool {
	return s.Branch != ""
}

func (s StatusSnapshot) Clean() bool {
	return len(s.Paths) == 0
}

func (s StatusSnapshot) Counts() PathCounts {
	return CountPaths(s.Paths)
}
