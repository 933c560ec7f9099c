// Package shell implements the interactive read-eval loop: environment
// expansion, alias substitution, tokenization, builtin dispatch and external
// program launch.
package shell

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/octanesh/octane/core/config"
	"github.com/octanesh/octane/core/jobs"
	"github.com/octanesh/octane/core/prompt"
)

type Shell struct {
	cfg      *config.Configuration
	jobs     *jobs.Table
	prompt   *prompt.Renderer
	log      *slog.Logger
	readline *readline.Instance

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// exit terminates the whole program, os.Exit outside of tests.
	exit func(code int)
}

// Options configures a Shell. Config, Jobs, Prompt and Log are required;
// the stdio fields default to the process's own streams.
type Options struct {
	Config *config.Configuration
	Jobs   *jobs.Table
	Prompt *prompt.Renderer
	Log    *slog.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func New(opts Options) (*Shell, error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(opts.Stdin),
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &Shell{
		cfg:      opts.Config,
		jobs:     opts.Jobs,
		prompt:   opts.Prompt,
		log:      opts.Log,
		readline: rl,
		stdin:    opts.Stdin,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
		exit:     os.Exit,
	}, nil
}

// Run executes the read-eval loop until stdin is closed. EOF and read errors
// both end the session cleanly; everything else keeps the loop going.
func (s *Shell) Run() error {
	defer s.readline.Close()

	s.log.Info("session started", "pid", os.Getpid())

	for {
		s.readline.SetPrompt(s.prompt.Render())
		line, err := s.readline.Readline()

		switch {
		case err == io.EOF:
			return nil

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			s.log.Error("read failed", "error", err.Error())
			return nil
		}

		s.Eval(line)
	}
}

// Eval runs a single input line through the pipeline. Nothing created here
// outlives the call except background processes moved into the jobs table.
func (s *Shell) Eval(line string) {
	line = strings.TrimSpace(line)
	line = ExpandEnv(line)
	line = s.expandAlias(line)

	args, background := tokenize(line)
	if len(args) == 0 {
		return
	}

	if builtin, ok := lookupBuiltin(args[0]); ok {
		s.runBuiltin(builtin, args[1:])
		return
	}

	s.launch(args[0], args[1:], background)
}

// expandAlias replaces the line wholesale when it exactly equals an alias
// trigger. Matching is on the full line, not the first token, so "ll -a"
// does not hit the "ll" alias.
func (s *Shell) expandAlias(line string) string {
	if replacement, ok := s.cfg.Aliases[line]; ok {
		return replacement
	}
	return line
}
