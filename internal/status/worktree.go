package status

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/Johannes-Berggren/branchgoblin/internal/models"
)

// parseStatus parses git status --porcelain=v1 output
// Format: XY PATH, or XY ORIG -> PATH for renames and copies
func parseStatus(output string) []models.PathEntry {
	var paths []models.PathEntry
	scanner := bufio.NewScanner(strings.NewReader(output))

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 4 {
			continue
		}

		entry := models.PathEntry{
			Index:    line[0],
			Worktree: line[1],
			Path:     line[3:],
		}

		if entry.Index == 'R' || entry.Index == 'C' {
			if orig, path, ok := strings.Cut(entry.Path, " -> "); ok {
				entry.OrigPath = unquote(orig)
				entry.Path = path
			}
		}
		entry.Path = unquote(entry.Path)

		paths = append(paths, entry)
	}

	return paths
}

// unquote undoes git's C-style quoting of unusual path names
func unquote(path string) string {
	if len(path) < 2 || path[0] != '"' {
		return path
	}
	if s, err := strconv.Unquote(path); err == nil {
		return s
	}
	return path
}
