package git

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/Johannes-Berggren/branchgoblin/internal/models"
)

// Client wraps a Runner with the branch and commit commands the flows need.
type Client struct {
	runner Runner
}

func NewClient(r Runner) *Client {
	return &Client{runner: r}
}

// Branches returns every local and remote-tracking branch in the order git
// lists them. The remote symbolic pointer is reported as "<remote>/HEAD".
func (c *Client) Branches(ctx context.Context) ([]models.BranchRef, error) {
	output, err := c.runner.Output(ctx, ListBranchesArgs()...)
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	return parseBranches(output), nil
}

func parseBranches(output string) []models.BranchRef {
	var branches []models.BranchRef
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(strings.NewReader(output))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		var ref models.BranchRef
		switch {
		case strings.HasPrefix(line, localRefPrefix):
			ref = models.BranchRef{Name: strings.TrimPrefix(line, localRefPrefix), Scope: models.ScopeLocal}
		case strings.HasPrefix(line, remoteRefPrefix):
			ref = models.BranchRef{Name: strings.TrimPrefix(line, remoteRefPrefix), Scope: models.ScopeRemote}
		default:
			// blank lines and detached HEAD entries
			continue
		}

		if ref.Name == "" || seen[ref.Name] {
			continue
		}
		seen[ref.Name] = true
		branches = append(branches, ref)
	}

	return branches
}

// Checkout checks out an existing branch
func (c *Client) Checkout(ctx context.Context, name string) (string, error) {
	if err := ValidateRefName(name); err != nil {
		return "", err
	}
	output, err := c.runner.CombinedOutput(ctx, CheckoutArgs(name)...)
	if err != nil {
		return output, fmt.Errorf("failed to switch branch: %w", err)
	}
	return output, nil
}

// CheckoutTracking creates local from remoteRef and sets it as upstream
func (c *Client) CheckoutTracking(ctx context.Context, local, remoteRef string) (string, error) {
	if err := ValidateRefName(local); err != nil {
		return "", err
	}
	if err := ValidateRefName(remoteRef); err != nil {
		return "", err
	}
	output, err := c.runner.CombinedOutput(ctx, CheckoutTrackingArgs(local, remoteRef)...)
	if err != nil {
		return output, fmt.Errorf("failed to check out %s: %w", remoteRef, err)
	}
	return output, nil
}

// CreateBranch creates a new branch from HEAD and switches to it
func (c *Client) CreateBranch(ctx context.Context, name string) (string, error) {
	if err := ValidateRefName(name); err != nil {
		return "", err
	}
	output, err := c.runner.CombinedOutput(ctx, CreateBranchArgs(name)...)
	if err != nil {
		return output, fmt.Errorf("failed to create branch: %w", err)
	}
	return output, nil
}

// Publish pushes name to remote and tracks it
func (c *Client) Publish(ctx context.Context, remote, name string) (string, error) {
	if err := ValidateRefName(name); err != nil {
		return "", err
	}
	output, err := c.runner.CombinedOutput(ctx, PublishArgs(remote, name)...)
	if err != nil {
		return output, fmt.Errorf("failed to publish branch: %w", err)
	}
	return output, nil
}

// DeleteBranch deletes a local branch
func (c *Client) DeleteBranch(ctx context.Context, name string, force bool) (string, error) {
	if err := ValidateRefName(name); err != nil {
		return "", err
	}
	output, err := c.runner.CombinedOutput(ctx, DeleteBranchArgs(name, force)...)
	if err != nil {
		return output, fmt.Errorf("failed to delete branch: %w", err)
	}
	return output, nil
}

// DeleteRemoteBranch deletes the branch on remote
func (c *Client) DeleteRemoteBranch(ctx context.Context, remote, name string) (string, error) {
	if err := ValidateRefName(name); err != nil {
		return "", err
	}
	output, err := c.runner.CombinedOutput(ctx, DeleteRemoteBranchArgs(remote, name)...)
	if err != nil {
		return output, fmt.Errorf("failed to delete remote branch: %w", err)
	}
	return output, nil
}

// Fetch refreshes remote-tracking refs
func (c *Client) Fetch(ctx context.Context, all, prune bool) (string, error) {
	output, err := c.runner.CombinedOutput(ctx, FetchArgs(all, prune)...)
	if err != nil {
		return output, fmt.Errorf("failed to fetch: %w", err)
	}
	return output, nil
}

// DefaultBranch detects the repository's default branch
func (c *Client) DefaultBranch(ctx context.Context, remote string) (string, error) {
	// Method 1: symbolic-ref (fastest, most reliable if set)
	output, err := c.runner.Output(ctx, RemoteHeadArgs(remote)...)
	if err == nil {
		name := strings.TrimSpace(output)
		if name != "" {
			return strings.TrimPrefix(name, remote+"/"), nil
		}
	}

	// Method 2: git remote show <remote>
	output, err = c.runner.Output(ctx, RemoteShowArgs(remote)...)
	if err == nil {
		scanner := bufio.NewScanner(strings.NewReader(output))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if name, ok := strings.CutPrefix(line, "HEAD branch:"); ok {
				name = strings.TrimSpace(name)
				if name != "" && name != "(unknown)" {
					return name, nil
				}
			}
		}
	}

	// Method 3: common default branch names
	for _, name := range []string{"main", "master", "dev", "develop"} {
		if _, err := c.runner.Output(ctx, VerifyRefArgs(remote+"/"+name)...); err == nil {
			return name, nil
		}
	}

	return "", fmt.Errorf("could not detect default branch")
}
