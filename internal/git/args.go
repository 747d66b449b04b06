package git

import (
	"fmt"
	"strconv"
)

// Argument lists for every git invocation. Nothing here goes through a
// shell, so names need validating (see ValidateRefName) but never quoting.

const (
	localRefPrefix  = "refs/heads/"
	remoteRefPrefix = "refs/remotes/"

	// hash, subject padded/truncated to column 40, date, committer
	onelineFormat = "--pretty=format:%h %<|(40,trunc)%s %cd %cN"
	dateFormat    = "--date=format:%x %X"
)

func ListBranchesArgs() []string {
	return []string{"branch", "-a", "--format=%(refname)"}
}

func CurrentBranchArgs() []string {
	return []string{"symbolic-ref", "--short", "HEAD"}
}

func StatusArgs() []string {
	return []string{"status", "--porcelain=v1"}
}

// LogArgs renders one line per commit. limit <= 0 means no limit.
func LogArgs(limit int, graph bool) []string {
	args := []string{"log", dateFormat, "--full-history", "--decorate", onelineFormat}
	if graph {
		args = append(args, "--graph")
	}
	if limit > 0 {
		args = append(args, "-n", strconv.Itoa(limit))
	}
	return args
}

// LeftRightCountArgs counts <remote>/<branch>...HEAD; the left number is
// behind, the right one ahead.
func LeftRightCountArgs(remote, branch string) []string {
	return []string{"rev-list", "--count", "--left-right", fmt.Sprintf("%s/%s...HEAD", remote, branch)}
}

func CheckoutArgs(name string) []string {
	return []string{"checkout", name}
}

func CheckoutTrackingArgs(local, remoteRef string) []string {
	return []string{"checkout", "-b", local, "--track", remoteRef}
}

func CreateBranchArgs(name string) []string {
	return []string{"checkout", "-b", name}
}

func PublishArgs(remote, name string) []string {
	return []string{"push", "-u", remote, name}
}

func DeleteBranchArgs(name string, force bool) []string {
	flag := "-d"
	if force {
		flag = "-D"
	}
	return []string{"branch", flag, name}
}

func DeleteRemoteBranchArgs(remote, name string) []string {
	return []string{"push", remote, "--delete", name}
}

func FetchArgs(all, prune bool) []string {
	args := []string{"fetch"}
	if all {
		args = append(args, "--all")
	}
	if prune {
		args = append(args, "--prune")
	}
	return args
}

func RemoteHeadArgs(remote string) []string {
	return []string{"symbolic-ref", "--short", "refs/remotes/" + remote + "/HEAD"}
}

func RemoteShowArgs(remote string) []string {
	return []string{"remote", "show", remote}
}

func VerifyRefArgs(ref string) []string {
	return []string{"rev-parse", "--verify", "--quiet", ref}
}

func AddAllArgs() []string {
	return []string{"add", "-v", "."}
}

func CommitAllArgs(message string) []string {
	return []string{"commit", "-am", message}
}

func AmendArgs() []string {
	return []string{"commit", "--amend", "--no-edit"}
}

// PushArgs pushes the current branch, setting its upstream on remote when
// setUpstream is true.
func PushArgs(setUpstream bool, remote, branch string) []string {
	if setUpstream {
		return []string{"push", "-u", remote, branch}
	}
	return []string{"push"}
}

func PullArgs() []string {
	return []string{"pull"}
}

func RebaseArgs(onto string) []string {
	return []string{"rebase", onto}
}

func MergeArgs(branch string) []string {
	return []string{"merge", branch}
}

func MergeBaseArgs(a, b string) []string {
	return []string{"merge-base", a, b}
}

func SubjectsArgs(ref string) []string {
	return []string{"log", ref, "--pretty=format:%s"}
}
