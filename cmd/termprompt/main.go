// cmd/termprompt/main.go
//
// Entry point for the termprompt CLI, a thin shell over the prompt helpers.
// Each subcommand maps to one helper so scripts can ask a question and read
// the validated answer from stdout.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/kingrea/termprompt/internal/config"
	"github.com/kingrea/termprompt/internal/logging"
	"github.com/kingrea/termprompt/internal/prompt"
	"github.com/kingrea/termprompt/internal/tui"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitNo      = 1
	ExitUsage   = 2
	ExitIO      = 3
)

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	os.Exit(a.run(os.Args[1:]))
}

// app holds the streams and the state shared by every subcommand.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	logPath    string
	useTUI     bool

	cfg     *config.Config
	logger  *logging.Logger
	console *prompt.Console
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{in: in, out: out, errOut: errOut}
}

func (a *app) run(args []string) int {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	err := root.Execute()
	a.close()
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(a.errOut, "Error: %v\n", ee.err)
		}
		return ee.code
	}
	fmt.Fprintf(a.errOut, "Error: %v\n", err)
	return ExitUsage
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "termprompt",
		Short: "termprompt - ask validated questions on the console",
		Long: `termprompt asks questions on the terminal and keeps asking until the
answer is valid, then prints the answer to stdout.

Examples:
  # Ask for an integer
  termprompt int --message "How many workers?"

  # Ask a yes/no question (exit code 1 means "no")
  termprompt confirm "Deploy now?"

  # Ask a question defined in .termprompt.yaml
  termprompt ask age

  # Print a file line by line
  termprompt lines notes.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultPath, "prompt profile file")
	flags.StringVar(&a.logPath, "log", "", "append stream faults to this file instead of stderr")
	flags.BoolVar(&a.useTUI, "tui", false, "edit line answers with the terminal line editor")

	root.AddCommand(
		newCatCmd(a),
		newLinesCmd(a),
		newAskCmd(a),
		newListCmd(a),
		newInitCmd(a),
		newAdhocCmd(a, config.KindInteger),
		newAdhocCmd(a, config.KindLine),
		newConfirmCmd(a),
		newPauseCmd(a),
	)
	return root
}

// setup loads the profile file and builds the console for this run.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return &exitError{code: ExitUsage, err: err}
	}
	a.cfg = cfg

	if a.logPath != "" {
		logger, err := logging.New(a.logPath)
		if err != nil {
			return &exitError{code: ExitIO, err: err}
		}
		a.logger = logger
	} else {
		a.logger = logging.NewWriter(a.errOut)
	}

	opts := []prompt.Option{
		prompt.WithLogger(a.logger),
		prompt.WithPauseMessage(cfg.PauseMessage()),
	}
	if a.useTUI && isTerminal(a.in) {
		opts = append(opts, prompt.WithLineReader(tui.Reader(a.in, a.out)))
	}
	a.console = prompt.NewConsole(a.in, a.out, opts...)
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		if err := a.logger.Close(); err != nil {
			fmt.Fprintf(a.errOut, "Error closing log: %v\n", err)
		}
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
