package branch

import (
	"sort"

	"github.com/Johannes-Berggren/branchgoblin/internal/models"
)

// LocalFilter widens the local-branch chooser used by delete.
type LocalFilter struct {
	DefaultBranch  string
	IncludeDefault bool
	IncludeCurrent bool
}

// Local keeps local refs only, dropping the default branch and the current
// branch unless the filter includes them. An included current branch is
// made selectable.
func Local(choices []models.ChoiceAnnotation, f LocalFilter) []models.ChoiceAnnotation {
	var out []models.ChoiceAnnotation
	for _, c := range choices {
		if c.IsRemote() {
			continue
		}
		if !f.IncludeDefault && f.DefaultBranch != "" && c.Classification.Name == f.DefaultBranch {
			continue
		}
		if c.DisabledReason == models.ReasonCurrentBranch {
			if !f.IncludeCurrent {
				continue
			}
			c.DisabledReason = ""
		}
		out = append(out, c)
	}
	return out
}

// Others keeps every branch except the current one and the remote HEAD
// pointer, each selecting its own ref name. Used by rebase and merge, which
// operate on refs as they are rather than on checkout candidates.
func Others(choices []models.ChoiceAnnotation) []models.ChoiceAnnotation {
	var out []models.ChoiceAnnotation
	for _, c := range choices {
		if c.DisabledReason == models.ReasonCurrentBranch || c.Classification.IsHead {
			continue
		}
		c.DisabledReason = ""
		c.SelectValue = c.Classification.Name
		out = append(out, c)
	}
	return out
}

// SortLocalFirst returns a copy with local refs before remote ones, each
// group alphabetical.
func SortLocalFirst(choices []models.ChoiceAnnotation) []models.ChoiceAnnotation {
	out := append([]models.ChoiceAnnotation(nil), choices...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].IsRemote(), out[j].IsRemote()
		if ri != rj {
			return !ri
		}
		return out[i].DisplayName < out[j].DisplayName
	})
	return out
}

// Find returns the enabled choice selecting value.
func Find(choices []models.ChoiceAnnotation, value string) (models.ChoiceAnnotation, bool) {
	for _, c := range choices {
		if !c.Disabled() && c.SelectValue == value {
			return c, true
		}
	}
	return models.ChoiceAnnotation{}, false
}
