package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kingrea/termprompt/internal/config"
	"github.com/kingrea/termprompt/internal/prompt"
	"github.com/kingrea/termprompt/internal/rules"
	"github.com/kingrea/termprompt/internal/textfile"
)

func newCatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <file>",
		Short: "Print the whole contents of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := textfile.ReadAll(args[0])
			if err != nil {
				return &exitError{code: ExitIO, err: err}
			}
			fmt.Fprint(a.out, content)
			return nil
		},
	}
}

func newLinesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lines <file>",
		Short: "Print a file one numbered line at a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := textfile.ReadLines(args[0])
			if err != nil {
				return &exitError{code: ExitIO, err: err}
			}
			// A trailing newline ends the last line rather than starting one.
			if n := len(lines); n > 1 && lines[n-1] == "" {
				lines = lines[:n-1]
			}
			for i, line := range lines {
				fmt.Fprintf(a.out, "%4d  %s\n", i+1, line)
			}
			return nil
		},
	}
}

func newAskCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <profile>",
		Short: "Ask a question defined in the profile file",
		Long: `Ask a question defined under "prompts" in the profile file and print
the accepted answer. See "termprompt init" for a starter file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.cfg.Profile(args[0])
			if err != nil {
				return &exitError{code: ExitUsage, err: err}
			}
			return a.askAndPrint(p)
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the profiles in the profile file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range a.cfg.Names() {
				fmt.Fprintf(a.out, "%s\t%s\n", name, a.cfg.Settings.Prompts[name].Kind)
			}
			return nil
		},
	}
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter profile file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Init(a.configPath); err != nil {
				return &exitError{code: ExitIO, err: err}
			}
			fmt.Fprintf(a.out, "Profiles: %s\n", a.configPath)
			return nil
		},
	}
}

// newAdhocCmd asks a one-off question of the given kind configured by flags.
func newAdhocCmd(a *app, kind config.Kind) *cobra.Command {
	var p config.Profile
	p.Kind = kind
	use := "line"
	short := "Ask for a non-blank line of text"
	if kind == config.KindInteger {
		use = "int"
		short = "Ask for an integer"
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.askAndPrint(p)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&p.Message, "message", "", "text shown before the prompt")
	flags.StringVar(&p.Prompt, "prompt", "", "prompt text")
	flags.StringVar(&p.ErrorMessage, "error", "", "text shown after an invalid answer")
	flags.StringVar(&p.Rule, "rule", "", `expression over "value" that must be true`)
	return cmd
}

func newConfirmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "confirm [message]",
		Short: "Ask a yes/no question; exit code 1 means no",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := ""
			if len(args) == 1 {
				message = args[0]
			}
			yes, err := prompt.BinaryChoice(a.console, message)
			if err != nil {
				return &exitError{code: ExitIO, err: err}
			}
			if !yes {
				return &exitError{code: ExitNo}
			}
			return nil
		},
	}
}

func newPauseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Wait for the Enter key",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			a.console.Pause()
		},
	}
}

func (a *app) askAndPrint(p config.Profile) error {
	answer, err := a.ask(p)
	if errors.Is(err, rules.ErrInvalidRule) {
		return &exitError{code: ExitUsage, err: err}
	}
	if err != nil {
		return &exitError{code: ExitIO, err: err}
	}
	fmt.Fprintln(a.out, answer)
	return nil
}

// ask runs the session for p and renders the answer as text.
func (a *app) ask(p config.Profile) (string, error) {
	switch p.Kind {
	case config.KindInteger:
		t, err := rules.Guard(prompt.Identity[int](), p.Rule)
		if err != nil {
			return "", err
		}
		n, err := prompt.Fetch(configure(prompt.ForInteger(a.console), p), t)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	case config.KindLine:
		t, err := rules.Guard(prompt.Identity[string](), p.Rule)
		if err != nil {
			return "", err
		}
		return prompt.Fetch(configure(prompt.ForLine(a.console), p), t)
	case config.KindChoice:
		s := prompt.ForLine(a.console).
			SetPrompt(prompt.ChoicePrompt).
			SetErrorMessage(prompt.ChoiceErrorMessage)
		yes, err := prompt.Fetch[string, bool](configure(s, p), prompt.YesNo)
		if err != nil {
			return "", err
		}
		if yes {
			return "yes", nil
		}
		return "no", nil
	}
	return "", fmt.Errorf("unsupported prompt kind %q", p.Kind)
}

// configure applies the non-empty profile fields to s.
func configure[T any](s *prompt.Session[T], p config.Profile) *prompt.Session[T] {
	if p.Message != "" {
		s.SetMessage(p.Message)
	}
	if p.Prompt != "" {
		s.SetPrompt(p.Prompt)
	}
	if p.ErrorMessage != "" {
		s.SetErrorMessage(p.ErrorMessage)
	}
	return s
}
