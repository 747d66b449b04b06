package cmd

import (
	"os"
	"strings"
	"testing"

	"4d63.com/testcli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGit(t *testing.T) {
	dir := testcli.MkdirTemp(t)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("GOBLIN_DEBUG", "")
	testcli.Exec(t, "git config --global user.email 'tests@example.com'")
	testcli.Exec(t, "git config --global user.name 'Tests'")
	testcli.Exec(t, "git config --global init.defaultBranch main")
}

func writeFile(t *testing.T, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(name, data, 0o644))
}

func gitExec(t *testing.T, command string) string {
	_, stdout, _ := testcli.Exec(t, command)
	return strings.TrimSpace(stdout)
}

// setupRepo creates a repository with one commit in a new directory and
// changes into it.
func setupRepo(t *testing.T) string {
	dir := testcli.MkdirTemp(t)
	testcli.Chdir(t, dir)
	testcli.Exec(t, "git init")
	writeFile(t, "file1", []byte("content"))
	testcli.Exec(t, "git add .")
	testcli.Exec(t, "git commit -m 'Initial commit'")
	return dir
}

// setupRemote adds a bare repository as origin and publishes main to it.
func setupRemote(t *testing.T, name string) string {
	dir := setupRepo(t)

	remote := testcli.MkdirTemp(t)
	testcli.Chdir(t, remote)
	testcli.Exec(t, "git init --bare")

	testcli.Chdir(t, dir)
	testcli.Exec(t, "git remote add "+name+" "+remote)
	testcli.Exec(t, "git push -u "+name+" main")
	return remote
}

func TestCurrentOutsideRepository(t *testing.T) {
	setupGit(t)
	testcli.Chdir(t, testcli.MkdirTemp(t))

	exitCode, stdout, stderr := testcli.Main(t, []string{"goblin", "current"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "", stderr)
	assert.Equal(t, "Not in a git repository\n", stdout)
}

func TestStatusFullOutsideRepository(t *testing.T) {
	setupGit(t)
	testcli.Chdir(t, testcli.MkdirTemp(t))

	exitCode, stdout, stderr := testcli.Main(t, []string{"goblin", "sf"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "", stderr)
	assert.Equal(t, "Not in a git repository\n", stdout)
}

func TestBranchOutsideRepositoryFails(t *testing.T) {
	setupGit(t)
	testcli.Chdir(t, testcli.MkdirTemp(t))

	exitCode, stdout, stderr := testcli.Main(t, []string{"goblin", "branch"}, nil, Run)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "", stdout)
	assert.Contains(t, stderr, "failed to get branches: git branch: fatal: not a git repository")
}

func TestCurrent(t *testing.T) {
	setupGit(t)
	setupRepo(t)

	exitCode, stdout, stderr := testcli.Main(t, []string{"goblin", "current"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "", stderr)
	assert.Equal(t, "main\n", stdout)
}

func TestStatus(t *testing.T) {
	setupGit(t)
	setupRepo(t)
	writeFile(t, "file1", []byte("changed"))
	writeFile(t, "file2", []byte("new"))
	writeFile(t, "file3", []byte("staged"))
	testcli.Exec(t, "git add file3")

	exitCode, stdout, stderr := testcli.Main(t, []string{"goblin", "status"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "", stderr)
	assert.Equal(t, " M file1\nA  file3\n?? file2\n", stdout)
}

func TestStatusClean(t *testing.T) {
	setupGit(t)
	setupRepo(t)

	exitCode, stdout, _ := testcli.Main(t, []string{"goblin", "s"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "nothing to commit\n", stdout)
}

func TestStatusOutsideRepository(t *testing.T) {
	setupGit(t)
	testcli.Chdir(t, testcli.MkdirTemp(t))

	exitCode, stdout, _ := testcli.Main(t, []string{"goblin", "status"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "Not in a git repository\n", stdout)
}

func TestStatusDetachedHead(t *testing.T) {
	setupGit(t)
	setupRepo(t)
	testcli.Exec(t, "git checkout --detach")

	exitCode, stdout, _ := testcli.Main(t, []string{"goblin", "status"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "nothing to commit\n", stdout)
}

func TestStatusFull(t *testing.T) {
	setupGit(t)
	setupRepo(t)
	writeFile(t, "file2", []byte("new"))

	exitCode, stdout, stderr := testcli.Main(t, []string{"goblin", "status-full"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "", stderr)
	assert.Contains(t, stdout, "Current branch is main\n")
	assert.Contains(t, stdout, "Commits log of the branch :\n")
	assert.Contains(t, stdout, "Initial commit")
	assert.Contains(t, stdout, "Differences between HEAD, index and working tree :\n?? file2\n")
	assert.Contains(t, stdout, "Commits behind - ahead / upstream :\nno upstream\n")
}

func TestLogRespectsMaxCount(t *testing.T) {
	setupGit(t)
	setupRepo(t)
	writeFile(t, "file2", []byte("two"))
	testcli.Exec(t, "git add .")
	testcli.Exec(t, "git commit -m 'Second commit'")

	exitCode, stdout, _ := testcli.Main(t, []string{"goblin", "log", "-n", "1"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "Second commit")
	assert.NotContains(t, stdout, "Initial commit")
	assert.Equal(t, 1, strings.Count(stdout, "\n"))
}

func TestGraph(t *testing.T) {
	setupGit(t)
	setupRepo(t)

	exitCode, stdout, _ := testcli.Main(t, []string{"goblin", "graph"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.True(t, strings.HasPrefix(stdout, "* "), stdout)
	assert.Contains(t, stdout, "Initial commit")
}

func TestBranchExtra(t *testing.T) {
	setupGit(t)
	setupRepo(t)
	testcli.Exec(t, "git branch abc#001-login")

	exitCode, stdout, stderr := testcli.Main(t, []string{"goblin", "branch", "--extra"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "", stderr)
	assert.Equal(t, "prefix  number  short name  scope\n"+
		"abc     001     login       local\n"+
		"                main        local\n", stdout)
}

func TestBranchListsRemotes(t *testing.T) {
	setupGit(t)
	setupRemote(t, "origin")

	exitCode, stdout, _ := testcli.Main(t, []string{"goblin", "b"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "main\norigin/main\n", stdout)
}

func TestAdvanceWithoutUpstream(t *testing.T) {
	setupGit(t)
	setupRepo(t)

	exitCode, stdout, _ := testcli.Main(t, []string{"goblin", "advance"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "main no upstream\n", stdout)
}

func TestAdvanceAhead(t *testing.T) {
	setupGit(t)
	setupRemote(t, "origin")
	writeFile(t, "file2", []byte("two"))
	testcli.Exec(t, "git add .")
	testcli.Exec(t, "git commit -m 'Second commit'")

	exitCode, stdout, _ := testcli.Main(t, []string{"goblin", "adv"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "main ahead  0 - 1\n", stdout)
}

func TestCreateBranchWithoutRemoteFails(t *testing.T) {
	setupGit(t)
	setupRepo(t)

	exitCode, stdout, stderr := testcli.Main(t, []string{"goblin", "create-branch", "feature"}, nil, Run)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "failed to publish branch")
	assert.Contains(t, stdout, "Create branch feature\n")
	assert.Contains(t, stdout, "Current branch is feature\n")
	assert.Equal(t, "feature", gitExec(t, "git branch --show-current"))
}

func TestCreateAndDeleteBranch(t *testing.T) {
	setupGit(t)
	remote := setupRemote(t, "origin")

	exitCode, _, stderr := testcli.Main(t, []string{"goblin", "cr", "abc#002-signup"}, nil, Run)
	require.Equal(t, 0, exitCode, stderr)
	assert.Contains(t, gitExec(t, "git ls-remote --heads "+remote), "refs/heads/abc#002-signup")
	assert.Equal(t, "origin/abc#002-signup", gitExec(t, "git rev-parse --abbrev-ref abc#002-signup@{upstream}"))

	exitCode, _, stderr = testcli.Main(t, []string{"goblin", "--silent", "checkout", "main"}, nil, Run)
	require.Equal(t, 0, exitCode, stderr)

	exitCode, stdout, stderr := testcli.Main(t, []string{"goblin", "del", "abc#002-signup"}, nil, Run)
	require.Equal(t, 0, exitCode, stderr)
	assert.Contains(t, stdout, "Branch abc#002-signup deleted\n")
	assert.NotContains(t, gitExec(t, "git branch"), "abc#002-signup")
	assert.NotContains(t, gitExec(t, "git ls-remote --heads "+remote), "abc#002-signup")
}

func TestDeleteUnpublishedBranchWarns(t *testing.T) {
	setupGit(t)
	setupRemote(t, "origin")
	testcli.Exec(t, "git branch wip")

	exitCode, stdout, stderr := testcli.Main(t, []string{"goblin", "delete-branch", "wip"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stderr, "Remote branch origin/wip not deleted")
	assert.Contains(t, stdout, "Branch wip deleted\n")
}

func TestDeleteInvalidName(t *testing.T) {
	setupGit(t)
	setupRepo(t)

	exitCode, _, stderr := testcli.Main(t, []string{"goblin", "delete-branch", "--", "-rf"}, nil, Run)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "invalid branch name")
}

func TestSilentSuppressesProgress(t *testing.T) {
	setupGit(t)
	setupRepo(t)
	testcli.Exec(t, "git branch wip")

	exitCode, stdout, _ := testcli.Main(t, []string{"goblin", "--silent", "checkout", "wip"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.NotContains(t, stdout, "Checkout branch wip")
	assert.NotContains(t, stdout, "Switched to branch")
	assert.Contains(t, stdout, "Current branch is wip\n")
}

func TestRemoteFromEnvironment(t *testing.T) {
	setupGit(t)
	remote := setupRemote(t, "upstream")
	t.Setenv("GOBLIN_REMOTE", "upstream")

	exitCode, _, stderr := testcli.Main(t, []string{"goblin", "create-branch", "feature"}, nil, Run)

	require.Equal(t, 0, exitCode, stderr)
	assert.Contains(t, gitExec(t, "git ls-remote --heads "+remote), "refs/heads/feature")
}

func TestConfigFile(t *testing.T) {
	setupGit(t)
	setupRepo(t)
	writeFile(t, "goblin.yaml", []byte("verbose: false\nstatus:\n  max_commits: 1\n"))
	testcli.Exec(t, "git commit --allow-empty -m 'Second commit'")

	exitCode, stdout, _ := testcli.Main(t, []string{"goblin", "--config", "goblin.yaml", "log"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, 1, strings.Count(stdout, "\n"))
	assert.Contains(t, stdout, "Second commit")
}

func TestVerboseFlagOverridesConfigFile(t *testing.T) {
	setupGit(t)
	setupRepo(t)
	testcli.Exec(t, "git branch wip")
	writeFile(t, "goblin.yaml", []byte("verbose: false\n"))

	exitCode, stdout, _ := testcli.Main(t, []string{"goblin", "--config", "goblin.yaml", "checkout", "wip"}, nil, Run)
	require.Equal(t, 0, exitCode)
	assert.NotContains(t, stdout, "Checkout branch wip")

	exitCode, stdout, _ = testcli.Main(t, []string{"goblin", "--config", "goblin.yaml", "--verbose", "checkout", "main"}, nil, Run)
	require.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "Checkout branch main")
}

func TestVerboseHasNoShorthand(t *testing.T) {
	setupGit(t)

	exitCode, _, stderr := testcli.Main(t, []string{"goblin", "-v", "list"}, nil, Run)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "unknown shorthand flag: 'v'")
}

func TestInvalidConfig(t *testing.T) {
	setupGit(t)
	setupRepo(t)
	t.Setenv("GOBLIN_LOG_LEVEL", "loud")

	exitCode, _, stderr := testcli.Main(t, []string{"goblin", "current"}, nil, Run)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "invalid configuration")
}

func TestCheckoutChooserNeedsTerminal(t *testing.T) {
	setupGit(t)
	setupRepo(t)

	exitCode, _, stderr := testcli.Main(t, []string{"goblin", "checkout"}, strings.NewReader(""), Run)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "interactive input needs a terminal")
}

func TestCommitWithMessage(t *testing.T) {
	setupGit(t)
	setupRepo(t)
	writeFile(t, "file1", []byte("changed"))

	exitCode, stdout, stderr := testcli.Main(t, []string{"goblin", "commit", "abc#003 update file1"}, nil, Run)

	require.Equal(t, 0, exitCode, stderr)
	assert.Contains(t, stdout, "nothing to commit\n")
	assert.Equal(t, "abc#003 update file1", gitExec(t, "git log -1 --pretty=%s"))
}

func TestNextTicket(t *testing.T) {
	setupGit(t)
	setupRepo(t)
	testcli.Exec(t, "git branch abc#004-one")
	testcli.Exec(t, "git branch abc#011-two")

	exitCode, stdout, _ := testcli.Main(t, []string{"goblin", "next-ticket"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "012\n", stdout)
}

func TestList(t *testing.T) {
	setupGit(t)

	exitCode, stdout, _ := testcli.Main(t, []string{"goblin", "list"}, nil, Run)

	assert.Equal(t, 0, exitCode)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "add "), lines[0])
	assert.Regexp(t, `(?m)^checkout\s+co\s+Check out a branch`, stdout)
	assert.Regexp(t, `(?m)^status-full\s+sf\s+`, stdout)
	assert.NotContains(t, stdout, "menu")
}

func TestUnknownCommand(t *testing.T) {
	setupGit(t)

	exitCode, _, stderr := testcli.Main(t, []string{"goblin", "frobnicate"}, nil, Run)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "unknown command")
}
