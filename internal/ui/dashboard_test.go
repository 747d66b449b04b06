package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Johannes-Berggren/branchgoblin/internal/branch"
	"github.com/Johannes-Berggren/branchgoblin/internal/flow"
	"github.com/Johannes-Berggren/branchgoblin/internal/models"
)

func newTestPrinter() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewPrinter(&out, &errOut, NewTheme(&out, false)), &out, &errOut
}

func TestFullStatusReport(t *testing.T) {
	p, out, _ := newTestPrinter()

	p.FullStatus(models.StatusSnapshot{
		Branch:  "abc#007-login",
		Commits: []string{"1a2b3c4 add login form"},
		Paths: []models.PathEntry{
			{Index: 'A', Worktree: ' ', Path: "login.go"},
			{Index: '?', Worktree: '?', Path: "notes.txt"},
		},
		Divergence: models.Tracked(2, 1),
	}, flow.DefaultOptions())

	want := "─────────────────────────────────────────\n" +
		"Current branch is abc#007-login\n" +
		"Commits log of the branch :\n" +
		"1a2b3c4 add login form\n" +
		"Differences between HEAD, index and working tree :\n" +
		"A  login.go\n" +
		"?? notes.txt\n" +
		"Commits behind - ahead / upstream :\n" +
		"diverged  2 - 1\n"
	assert.Equal(t, want, out.String())
}

func TestFullStatusCleanWithoutUpstream(t *testing.T) {
	p, out, _ := newTestPrinter()

	p.FullStatus(models.StatusSnapshot{Branch: "master"}, flow.DefaultOptions())

	assert.Contains(t, out.String(), "nothing to commit\n")
	assert.Contains(t, out.String(), "no upstream\n")
}

func TestFullStatusOutsideRepository(t *testing.T) {
	p, out, _ := newTestPrinter()

	p.FullStatus(models.StatusSnapshot{}, flow.Options{Verbose: false})

	assert.Equal(t, NotInRepository+"\n", out.String())
}

func TestPathsShowsRenames(t *testing.T) {
	p, out, _ := newTestPrinter()

	p.Paths([]models.PathEntry{{Index: 'R', Worktree: ' ', Path: "new.go", OrigPath: "old.go"}}, flow.DefaultOptions())

	assert.Equal(t, "R  old.go -> new.go\n", out.String())
}

func TestDivergenceLine(t *testing.T) {
	tests := []struct {
		d    models.Divergence
		want string
	}{
		{models.Tracked(0, 0), "master equal  0 - 0\n"},
		{models.Tracked(2, 0), "master behind  2 - 0\n"},
		{models.Tracked(0, 3), "master ahead  0 - 3\n"},
		{models.Divergence{}, "master no upstream\n"},
	}
	for _, tt := range tests {
		p, out, _ := newTestPrinter()
		p.Divergence("master", tt.d, flow.DefaultOptions())
		assert.Equal(t, tt.want, out.String())
	}
}

func TestVerbosity(t *testing.T) {
	p, out, errOut := newTestPrinter()
	quiet := flow.Options{Verbose: false}

	p.Info("Checkout branch wip", quiet)
	p.Output("Switched to branch 'wip'\n", quiet)
	assert.Empty(t, out.String())

	p.Warn("Remote branch origin/wip not deleted")
	p.Error(errors.New("failed to delete branch"))
	assert.Equal(t, "Remote branch origin/wip not deleted\nfailed to delete branch\n", errOut.String())

	p.Info("Checkout branch wip", flow.DefaultOptions())
	p.Output("Switched to branch 'wip'\n", flow.DefaultOptions())
	assert.Equal(t, "Checkout branch wip\nSwitched to branch 'wip'\n", out.String())
}

func TestBranchesPlain(t *testing.T) {
	p, out, _ := newTestPrinter()

	p.Branches(sampleChoices(), false)

	assert.Equal(t, "master\norigin/HEAD\norigin/master\norigin/abc#007-login\nwip\n", out.String())
}

func TestBranchesExtraColumns(t *testing.T) {
	p, out, _ := newTestPrinter()
	choices := branch.Classify([]models.BranchRef{
		{Name: "abc#007-login"},
		{Name: "origin/xyz#042-fix/nested", Scope: models.ScopeRemote},
		{Name: "master"},
	}, "master")

	p.Branches(choices, true)

	want := "prefix  number  short name  scope\n" +
		"abc     007     login       local\n" +
		"xyz     042     fix/nested  remote\n" +
		"                master      local\n"
	assert.Equal(t, want, out.String())
}

func TestHeader(t *testing.T) {
	snap := &models.StatusSnapshot{
		Branch: "master",
		Paths: []models.PathEntry{
			{Index: '?', Worktree: '?', Path: "a"},
			{Index: ' ', Worktree: 'M', Path: "b"},
			{Index: ' ', Worktree: 'M', Path: "c"},
		},
		Divergence: models.Tracked(1, 0),
	}

	assert.Equal(t, "on local branch master  1U 2M 0S 1↓ 0↑", Header(snap))
	assert.Equal(t, "on local branch ??  ??U ??M ??S ??↓ ??↑", Header(nil))

	snap.Divergence = models.Divergence{}
	assert.Equal(t, "on local branch master  1U 2M 0S ??↓ ??↑", Header(snap))
}

func TestGraphLines(t *testing.T) {
	p, out, _ := newTestPrinter()

	p.Graph([]string{"* 1a2b3c4 merge", "|\\", "| * 5d6e7f8 topic"})

	assert.Equal(t, "* 1a2b3c4 merge\n|\\\n| * 5d6e7f8 topic\n", out.String())
}

func TestSplitGraph(t *testing.T) {
	graph, rest := splitGraph("| * 5d6e7f8 topic")
	assert.Equal(t, "| * ", graph)
	assert.Equal(t, "5d6e7f8 topic", rest)
}
