package branch

import (
	"github.com/Johannes-Berggren/branchgoblin/internal/models"
)

// Classify annotates refs for a chooser, in input order, with one
// annotation per ref. Disable rules, first match wins:
//  1. the current branch
//  2. the remote HEAD pointer
//  3. a remote ref whose candidate local name already exists locally
//
// A selectable remote ref selects its candidate local name. A
// remote-tracking ref of any other remote is marked remote and disabled.
func (p Parser) Classify(refs []models.BranchRef, currentBranch string) []models.ChoiceAnnotation {
	classes := make([]models.BranchClassification, len(refs))
	foreign := make([]bool, len(refs))
	locals := make(map[string]struct{}, len(refs))
	for i, ref := range refs {
		classes[i] = p.Parse(ref.Name)
		if ref.Scope == models.ScopeRemote && !classes[i].IsRemote {
			classes[i].IsRemote = true
			foreign[i] = true
		}
		if !classes[i].IsRemote {
			locals[classes[i].CandidateLocalName] = struct{}{}
		}
	}

	out := make([]models.ChoiceAnnotation, len(refs))
	for i, c := range classes {
		a := models.ChoiceAnnotation{
			DisplayName:    c.Name,
			SelectValue:    c.Name,
			Classification: c,
		}

		_, mirrored := locals[c.CandidateLocalName]
		switch {
		case c.Name == currentBranch:
			a.DisabledReason = models.ReasonCurrentBranch
		case c.IsHead, foreign[i]:
			a.DisabledReason = models.ReasonIntegrity
		case c.IsRemote && mirrored:
			a.DisabledReason = models.ReasonAlreadyLocal
		case c.IsRemote:
			a.SelectValue = c.CandidateLocalName
		}

		out[i] = a
	}

	return out
}

// Classify annotates refs against DefaultRemote.
func Classify(refs []models.BranchRef, currentBranch string) []models.ChoiceAnnotation {
	return NewParser(DefaultRemote).Classify(refs, currentBranch)
}
