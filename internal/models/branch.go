package models

// Scope tells whether a ref lives in the local repository or is a
// remote-tracking ref.
type Scope int

const (
	ScopeLocal Scope = iota
	ScopeRemote
)

func (s Scope) String() string {
	if s == ScopeRemote {
		return "remote"
	}
	return "local"
}

// BranchRef is one entry of a branch listing, e.g. "master" or
// "origin/abc#123-feature".
type BranchRef struct {
	Name  string
	Scope Scope
}

// BranchClassification is the parse result of a single ref name.
type BranchClassification struct {
	Name         string
	IsRemote     bool
	IsHead       bool   // only the remote symbolic pointer, e.g. origin/HEAD
	TicketPrefix string // "abc" in abc#123-feature
	TicketNumber string // "123" in abc#123-feature
	ShortName    string // "feature" in abc#123-feature
	// CandidateLocalName is the local branch a checkout of this ref would
	// create. Equal to Name for local refs.
	CandidateLocalName string
}

func (c BranchClassification) HasTicket() bool {
	return c.TicketPrefix != ""
}

func (c BranchClassification) Scope() Scope {
	if c.IsRemote {
		return ScopeRemote
	}
	return ScopeLocal
}

// Category is the presentational bucket of a choice.
type Category int

const (
	CategoryLocal Category = iota
	CategoryRemote
	CategoryCurrent
	CategoryDisabled
)

// Reasons attached to choices that cannot be picked.
const (
	ReasonCurrentBranch = "current branch"
	ReasonIntegrity     = "not allowed for integrity reason"
	ReasonAlreadyLocal  = "already in local repo"
)

// ChoiceAnnotation is one row of an interactive branch chooser.
type ChoiceAnnotation struct {
	DisplayName    string
	SelectValue    string
	DisabledReason string // empty when the row can be picked
	Classification BranchClassification
}

func (a ChoiceAnnotation) Disabled() bool {
	return a.DisabledReason != ""
}

func (a ChoiceAnnotation) IsRemote() bool {
	return a.Classification.IsRemote
}

func (a ChoiceAnnotation) Category() Category {
	switch {
	case a.DisabledReason == ReasonCurrentBranch:
		return CategoryCurrent
	case a.Disabled():
		return CategoryDisabled
	case a.Classification.IsRemote:
		return CategoryRemote
	default:
		return CategoryLocal
	}
}
