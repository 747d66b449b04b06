// Package branch classifies branch names against the team naming convention
// <remote>/<prefix>#<number>-<name> and builds annotated choice lists for the
// interactive choosers. Everything here is pure: no git calls, no styling.
package branch

import (
	"regexp"

	"github.com/Johannes-Berggren/branchgoblin/internal/models"
)

// DefaultRemote is the remote assumed by Parse and Classify.
const DefaultRemote = "origin"

// ticketPattern matches the optional ticket segment of a name with the
// remote prefix already removed: 3 letters/digits, '#', 3 digits, '-'.
// The remainder is greedy so anything after the segment is the short name.
var ticketPattern = regexp.MustCompile(`^([A-Za-z0-9]{3})#([0-9]{3})-(.+)$`)

// Parser parses ref names for one remote.
type Parser struct {
	remote string
}

func NewParser(remote string) Parser {
	if remote == "" {
		remote = DefaultRemote
	}
	return Parser{remote: remote}
}

func (p Parser) Remote() string {
	return p.remote
}

// Parse never fails: a name that does not follow the convention is
// returned with no ticket and its whole (remote-stripped) text as short name.
func (p Parser) Parse(ref string) models.BranchClassification {
	c := models.BranchClassification{Name: ref}

	rest := ref
	prefix := p.remote + "/"
	if len(ref) > len(prefix) && ref[:len(prefix)] == prefix {
		c.IsRemote = true
		rest = ref[len(prefix):]
	}
	c.IsHead = ref == prefix+"HEAD"

	c.ShortName = rest
	c.CandidateLocalName = rest
	if m := ticketPattern.FindStringSubmatch(rest); m != nil {
		c.TicketPrefix = m[1]
		c.TicketNumber = m[2]
		c.ShortName = m[3]
		c.CandidateLocalName = m[1] + "#" + m[2] + "-" + m[3]
	}

	return c
}

// Parse parses ref against DefaultRemote.
func Parse(ref string) models.BranchClassification {
	return NewParser(DefaultRemote).Parse(ref)
}
