package git

import (
	"context"
	"fmt"
	"strings"
)

// AddAll stages everything under the working directory
func (c *Client) AddAll(ctx context.Context) (string, error) {
	output, err := c.runner.CombinedOutput(ctx, AddAllArgs()...)
	if err != nil {
		return output, fmt.Errorf("failed to stage changes: %w", err)
	}
	return output, nil
}

// CommitAll commits all tracked changes with message
func (c *Client) CommitAll(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("commit message cannot be empty")
	}
	output, err := c.runner.CombinedOutput(ctx, CommitAllArgs(message)...)
	if err != nil {
		return output, fmt.Errorf("commit failed: %w", err)
	}
	return output, nil
}

// Amend folds the index into the last commit, keeping its message
func (c *Client) Amend(ctx context.Context) (string, error) {
	output, err := c.runner.CombinedOutput(ctx, AmendArgs()...)
	if err != nil {
		return output, fmt.Errorf("amend failed: %w", err)
	}
	return output, nil
}

func (c *Client) Push(ctx context.Context, setUpstream bool, remote, branch string) (string, error) {
	if setUpstream {
		if err := ValidateRefName(branch); err != nil {
			return "", err
		}
	}
	output, err := c.runner.CombinedOutput(ctx, PushArgs(setUpstream, remote, branch)...)
	if err != nil {
		return output, fmt.Errorf("push failed: %w", err)
	}
	return output, nil
}

func (c *Client) Pull(ctx context.Context) (string, error) {
	output, err := c.runner.CombinedOutput(ctx, PullArgs()...)
	if err != nil {
		return output, fmt.Errorf("pull failed: %w", err)
	}
	return output, nil
}

func (c *Client) Rebase(ctx context.Context, onto string) (string, error) {
	if err := validateRevision(onto); err != nil {
		return "", err
	}
	output, err := c.runner.CombinedOutput(ctx, RebaseArgs(onto)...)
	if err != nil {
		return output, fmt.Errorf("rebase failed: %w", err)
	}
	return output, nil
}

func (c *Client) Merge(ctx context.Context, branch string) (string, error) {
	if err := ValidateRefName(branch); err != nil {
		return "", err
	}
	output, err := c.runner.CombinedOutput(ctx, MergeArgs(branch)...)
	if err != nil {
		return output, fmt.Errorf("merge failed: %w", err)
	}
	return output, nil
}

// MergeBase returns the commit at which a and b forked
func (c *Client) MergeBase(ctx context.Context, a, b string) (string, error) {
	for _, ref := range []string{a, b} {
		if err := ValidateRefName(ref); err != nil {
			return "", err
		}
	}
	output, err := c.runner.Output(ctx, MergeBaseArgs(a, b)...)
	if err != nil {
		return "", fmt.Errorf("failed to find fork point: %w", err)
	}
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
	return "", fmt.Errorf("no fork point between %s and %s", a, b)
}

// Subjects returns the commit subjects reachable from ref
func (c *Client) Subjects(ctx context.Context, ref string) ([]string, error) {
	if err := ValidateRefName(ref); err != nil {
		return nil, err
	}
	output, err := c.runner.Output(ctx, SubjectsArgs(ref)...)
	if err != nil {
		return nil, fmt.Errorf("failed to read log of %s: %w", ref, err)
	}
	var subjects []string
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			subjects = append(subjects, line)
		}
	}
	return subjects, nil
}

// validateRevision accepts branch names and hex commit ids
func validateRevision(rev string) error {
	if isHex(rev) {
		return nil
	}
	return ValidateRefName(rev)
}

func isHex(s string) bool {
	if len(s) < 4 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
