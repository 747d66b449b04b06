package branch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johannes-Berggren/branchgoblin/internal/models"
)

func refs(names ...string) []models.BranchRef {
	out := make([]models.BranchRef, len(names))
	for i, n := range names {
		out[i] = models.BranchRef{Name: n}
	}
	return out
}

type row struct {
	value  string
	reason string
}

func rows(choices []models.ChoiceAnnotation) []row {
	out := make([]row, len(choices))
	for i, c := range choices {
		out[i] = row{c.SelectValue, c.DisabledReason}
	}
	return out
}

func TestClassifyCheckoutListing(t *testing.T) {
	got := Classify(refs("master", "origin/master", "origin/abc#007-login"), "master")

	assert.Equal(t, []row{
		{"master", models.ReasonCurrentBranch},
		{"origin/master", models.ReasonAlreadyLocal},
		{"abc#007-login", ""},
	}, rows(got))
	assert.Equal(t, "origin/abc#007-login", got[2].DisplayName)
}

func TestClassifyRulePrecedence(t *testing.T) {
	listing := refs("abc#123-x", "origin/abc#123-x", "origin/HEAD", "dev")

	got := Classify(listing, "dev")
	assert.Equal(t, []row{
		{"abc#123-x", ""},
		{"origin/abc#123-x", models.ReasonAlreadyLocal},
		{"origin/HEAD", models.ReasonIntegrity},
		{"dev", models.ReasonCurrentBranch},
	}, rows(got))

	got = Classify(listing, "abc#123-x")
	assert.Equal(t, models.ReasonCurrentBranch, got[0].DisabledReason)
	assert.Equal(t, models.ReasonAlreadyLocal, got[1].DisabledReason)
	assert.Equal(t, "", got[3].DisabledReason)
}

func TestClassifyIsPureAndOrderPreserving(t *testing.T) {
	listing := refs("origin/zzz", "aaa", "origin/abc#001-x", "origin/HEAD")

	first := Classify(listing, "aaa")
	second := Classify(listing, "aaa")
	assert.Equal(t, first, second)

	require.Len(t, first, len(listing))
	for i, ref := range listing {
		assert.Equal(t, ref.Name, first[i].DisplayName)
	}
}

func TestClassifyEmpty(t *testing.T) {
	assert.Empty(t, Classify(nil, ""))
}

func TestCategories(t *testing.T) {
	got := Classify(refs("master", "feature", "origin/master", "origin/other"), "master")

	assert.Equal(t, models.CategoryCurrent, got[0].Category())
	assert.Equal(t, models.CategoryLocal, got[1].Category())
	assert.Equal(t, models.CategoryDisabled, got[2].Category())
	assert.Equal(t, models.CategoryRemote, got[3].Category())
}

func TestClassifyOtherRemote(t *testing.T) {
	listing := []models.BranchRef{
		{Name: "main", Scope: models.ScopeLocal},
		{Name: "origin/abc#001-x", Scope: models.ScopeRemote},
		{Name: "upstream/feature", Scope: models.ScopeRemote},
	}

	got := Classify(listing, "main")
	assert.Equal(t, []row{
		{"main", models.ReasonCurrentBranch},
		{"abc#001-x", ""},
		{"upstream/feature", models.ReasonIntegrity},
	}, rows(got))
	assert.True(t, got[2].IsRemote())

	_, ok := Find(got, "upstream/feature")
	assert.False(t, ok, "checkout chooser")

	deletable := Local(got, LocalFilter{DefaultBranch: "main", IncludeCurrent: true, IncludeDefault: true})
	require.Len(t, deletable, 1)
	assert.Equal(t, "main", deletable[0].SelectValue)

	others := Others(got)
	require.Len(t, others, 2)
	assert.Equal(t, "upstream/feature", others[1].SelectValue)
}
