// Package cmd is the goblin command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Johannes-Berggren/branchgoblin/internal/config"
	"github.com/Johannes-Berggren/branchgoblin/internal/flow"
	"github.com/Johannes-Berggren/branchgoblin/internal/git"
	"github.com/Johannes-Berggren/branchgoblin/internal/logging"
	"github.com/Johannes-Berggren/branchgoblin/internal/status"
	"github.com/Johannes-Berggren/branchgoblin/internal/ui"
)

// app is everything one invocation needs. It is built fresh by Run so the
// command tree can be executed repeatedly in one process.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	v       *viper.Viper
	cfg     *config.Config
	cfgFile string
	noColor bool
	silent  bool
	clear   bool
	debug   bool

	printer *ui.Printer
	term    *ui.Terminal
	status  *status.Aggregator
	flow    *flow.Orchestrator
	closer  io.Closer
}

// Run executes the command line in args and returns the exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		v:      viper.New(),
	}

	rootCmd := a.newRootCmd()
	rootCmd.SetArgs(args[1:])
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(context.Background())
	if a.closer != nil {
		if cerr := a.closer.Close(); cerr != nil {
			logging.Logger.Debug("Failed to close log file", "error", cerr)
		}
	}
	return a.exitCode(err)
}

func (a *app) exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flow.ErrAborted):
		if a.printer != nil {
			a.printer.Notice(err.Error())
		} else {
			fmt.Fprintln(a.stdout, err)
		}
		return 0
	}

	logging.Logger.Error("Command failed", "error", err)
	if a.printer != nil {
		a.printer.Error(err)
	} else {
		fmt.Fprintln(a.stderr, "Error:", err)
	}
	return 1
}

func (a *app) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "goblin",
		Short: "A terminal git helper for ticket branches",
		Long: `goblin wraps the everyday git branch workflow: pick a branch to check out from
an annotated list, create and publish ticket branches, clean up merged ones,
and see where the current branch stands after every change.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.term.Interactive() {
				return cmd.Help()
			}
			return a.runMenu(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Bool("verbose", true, "print git output and progress")
	flags.BoolVar(&a.silent, "silent", false, "only print results and errors")
	flags.BoolVarP(&a.noColor, "no-color", "C", false, "disable colors")
	flags.BoolVar(&a.clear, "clear", false, "clear the screen before output")
	flags.BoolVar(&a.debug, "debug", false, "write debug logs")
	flags.StringVar(&a.cfgFile, "config", "", "config file (default "+config.ConfigDir()+"/config.yaml)")

	rootCmd.AddCommand(
		a.newBranchCmd(),
		a.newCurrentCmd(),
		a.newCheckoutCmd(),
		a.newCreateBranchCmd(),
		a.newDeleteBranchCmd(),
		a.newNextTicketCmd(),
		a.newStatusCmd(),
		a.newLogCmd(),
		a.newGraphCmd(),
		a.newAdvanceCmd(),
		a.newStatusFullCmd(),
		a.newAddCmd(),
		a.newCommitCmd(),
		a.newAmendCmd(),
		a.newPushCmd(),
		a.newFetchCmd(),
		a.newPullCmd(),
		a.newRebaseCmd(),
		a.newRebaseLocalCmd(),
		a.newMergeCmd(),
		a.newListCmd(),
		a.newMenuCmd(),
	)

	return rootCmd
}

// setup loads configuration and builds the collaborators shared by every
// command.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	config.Prepare(a.v, a.cfgFile)
	if err := a.v.BindPFlag("verbose", cmd.Root().PersistentFlags().Lookup("verbose")); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	if err := config.Read(a.v); err != nil {
		return err
	}

	if a.noColor {
		a.v.Set("color", false)
	}
	if a.silent {
		a.v.Set("verbose", false)
	}
	if a.debug {
		a.v.Set("log.debug", true)
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	closer, err := logging.Initialize(logging.Options{
		Debug:  cfg.Log.Debug,
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Stderr: a.stderr,
	})
	if err != nil {
		return err
	}
	a.closer = closer
	logging.Logger.Debug("Starting", "command", cmd.CommandPath(), "args", args, "config", a.v.ConfigFileUsed())

	theme := ui.NewTheme(a.stdout, cfg.Color)
	a.printer = ui.NewPrinter(a.stdout, a.stderr, theme)
	a.term = ui.NewTerminal(a.stdin, a.stdout, theme)

	runner := git.NewCLI("")
	a.status = status.New(runner, cfg.Remote)
	a.status.CommitLimit = cfg.Status.MaxCommits
	a.flow = flow.New(git.NewClient(runner), a.status, a.term, a.term, a.printer, flow.Config{
		Remote:        cfg.Remote,
		DefaultBranch: cfg.DefaultBranch,
	})

	if a.clear {
		termenv.NewOutput(a.stdout).ClearScreen()
	}
	return nil
}

func (a *app) opts() flow.Options {
	return flow.Options{Verbose: a.cfg.Verbose}
}
