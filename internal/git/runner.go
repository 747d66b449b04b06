package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/Johannes-Berggren/branchgoblin/internal/logging"
)

// Runner executes git subcommands. Output returns stdout only and is meant
// for queries; CombinedOutput interleaves stderr and is meant for commands
// whose progress messages the user should see.
type Runner interface {
	Output(ctx context.Context, args ...string) (string, error)
	CombinedOutput(ctx context.Context, args ...string) (string, error)
}

// CLI runs the git binary found on PATH.
type CLI struct {
	Binary string
	Dir    string // empty runs in the process working directory
}

var _ Runner = (*CLI)(nil)

func NewCLI(dir string) *CLI {
	return &CLI{Binary: "git", Dir: dir}
}

func (c *CLI) Output(ctx context.Context, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	err := c.run(ctx, args, &stdout, &stderr)
	if err != nil {
		return stdout.String(), newCommandError(args, stderr.String(), err)
	}
	return stdout.String(), nil
}

func (c *CLI) CombinedOutput(ctx context.Context, args ...string) (string, error) {
	var out bytes.Buffer
	err := c.run(ctx, args, &out, &out)
	if err != nil {
		return out.String(), newCommandError(args, out.String(), err)
	}
	return out.String(), nil
}

func (c *CLI) run(ctx context.Context, args []string, stdout, stderr *bytes.Buffer) error {
	bin := c.Binary
	if bin == "" {
		bin = "git"
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = c.Dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	start := time.Now()
	err := cmd.Run()
	logging.Logger.Debug("git command finished",
		"args", args,
		"duration", time.Since(start),
		"exit_code", cmd.ProcessState.ExitCode(),
		"error", err)
	return err
}

// CommandError is a git invocation that exited non-zero.
type CommandError struct {
	Args     []string
	Stderr   string
	ExitCode int
	Err      error
}

func newCommandError(args []string, stderr string, err error) *CommandError {
	ce := &CommandError{
		Args:     args,
		Stderr:   strings.TrimSpace(stderr),
		ExitCode: -1,
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		ce.ExitCode = exitErr.ExitCode()
	}
	return ce
}

// Error is a single line: the first meaningful line git printed, or the
// process error when git printed nothing.
func (e *CommandError) Error() string {
	name := "git"
	if len(e.Args) > 0 {
		name = "git " + e.Args[0]
	}
	for _, line := range strings.Split(e.Stderr, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return name + ": " + line
		}
	}
	return name + ": " + e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// IsNotRepository reports whether err is git refusing to run outside a
// work tree.
func IsNotRepository(err error) bool {
	var ce *CommandError
	return errors.As(err, &ce) && strings.Contains(ce.Stderr, "not a git repository")
}
