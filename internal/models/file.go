package models

type PathCategory int

const (
	PathModified PathCategory = iota
	PathStaged
	PathUntracked
)

func (c PathCategory) String() string {
	switch c {
	case PathStaged:
		return "staged"
	case PathUntracked:
		return "untracked"
	default:
		return "modified"
	}
}

// PathEntry is one line of a porcelain status listing: XY PATH
// X = index status, Y = working tree status
type PathEntry struct {
	Index    byte
	Worktree byte
	Path     string
	OrigPath string // source path of a rename or copy
}

func (p PathEntry) IsUntracked() bool {
	return p.Index == '?' && p.Worktree == '?'
}

// Category buckets the entry for dashboard counts. Untracked wins over
// staged because its index column is not blank either.
func (p PathEntry) Category() PathCategory {
	if p.IsUntracked() {
		return PathUntracked
	}
	if p.Index != ' ' && p.Index != 0 {
		return PathStaged
	}
	return PathModified
}

func (p PathEntry) DisplayStatus() string {
	return string([]byte{nonZero(p.Index), nonZero(p.Worktree)})
}

func nonZero(b byte) byte {
	if b == 0 {
		return ' '
	}
	return b
}

type PathCounts struct {
	Staged    int
	Untracked int
	Modified  int
}

func CountPaths(paths []PathEntry) PathCounts {
	var c PathCounts
	for _, p := range paths {
		switch p.Category() {
		case PathStaged:
			c.Staged++
		case PathUntracked:
			c.Untracked++
		default:
			c.Modified++
		}
	}
	return c
}
