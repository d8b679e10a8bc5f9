// SPDX-License-Identifier: MPL-2.0

package shtask

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"ipsbench/internal/bench"
)

var (
	// ErrEmptyScript is returned for blank snippets.
	ErrEmptyScript = errors.New("empty script")
	// ErrParse is the sentinel error wrapped by ParseError.
	ErrParse = errors.New("script parse failed")
	// ErrScriptFailed is the sentinel error wrapped by ScriptError.
	ErrScriptFailed = errors.New("script failed")
)

type (
	// Script is a named shell snippet.
	Script struct {
		Name   string
		Source string
	}

	// Options configures the interpreter shared by all programs of a suite.
	Options struct {
		// Dir is the working directory. Empty means the current directory.
		Dir string
		// Env is the environment as KEY=VALUE pairs. Nil inherits os.Environ.
		Env []string
		// Stdout and Stderr receive script output. Nil discards it.
		Stdout io.Writer
		Stderr io.Writer
	}

	// ParseError is returned when a snippet is not valid shell.
	// It wraps ErrParse for errors.Is() compatibility.
	ParseError struct {
		Name string
		Err  error
	}

	// ScriptError records the first failing run of a program.
	// It wraps ErrScriptFailed for errors.Is() compatibility.
	ScriptError struct {
		Name string
		Err  error
	}

	// Program is a parsed snippet bound to its own interpreter.
	Program struct {
		name   string
		file   *syntax.File
		runner *interp.Runner
		ctx    context.Context
		err    error
	}
)

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Name, e.Err)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// Error implements the error interface for ScriptError.
func (e *ScriptError) Error() string {
	var status interp.ExitStatus
	if errors.As(e.Err, &status) {
		return fmt.Sprintf("script %q exited with status %d", e.Name, status)
	}
	return fmt.Sprintf("script %q: %v", e.Name, e.Err)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *ScriptError) Unwrap() []error {
	return []error{ErrScriptFailed, e.Err}
}

// ParseArg splits a NAME=SCRIPT command-line argument. Without a valid name
// prefix the whole argument is the script and also its name.
func ParseArg(arg string) (Script, error) {
	if strings.TrimSpace(arg) == "" {
		return Script{}, ErrEmptyScript
	}
	name, src, ok := strings.Cut(arg, "=")
	if !ok || !syntax.ValidName(name) {
		return Script{Name: arg, Source: arg}, nil
	}
	if strings.TrimSpace(src) == "" {
		return Script{}, fmt.Errorf("%s: %w", name, ErrEmptyScript)
	}
	return Script{Name: name, Source: src}, nil
}

// Compile parses s and prepares an interpreter for it.
func Compile(ctx context.Context, s Script, opts Options) (*Program, error) {
	if strings.TrimSpace(s.Source) == "" {
		return nil, fmt.Errorf("%s: %w", s.Name, ErrEmptyScript)
	}
	file, err := syntax.NewParser().Parse(strings.NewReader(s.Source), s.Name)
	if err != nil {
		return nil, &ParseError{Name: s.Name, Err: err}
	}

	runner, err := newRunner(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create interpreter: %w", err)
	}
	return &Program{name: s.Name, file: file, runner: runner, ctx: ctx}, nil
}

func newRunner(opts Options) (*interp.Runner, error) {
	env := opts.Env
	if env == nil {
		env = os.Environ()
	}
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	runnerOpts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, stdout, stderr),
	}
	if opts.Dir != "" {
		runnerOpts = append(runnerOpts, interp.Dir(opts.Dir))
	}
	return interp.New(runnerOpts...)
}

// Name returns the program's display name.
func (p *Program) Name() string {
	return p.name
}

// Run executes the snippet once in a freshly reset shell. Only the first
// failure is kept; later runs still execute so timing stays comparable.
func (p *Program) Run() {
	p.runner.Reset()
	if err := p.runner.Run(p.ctx, p.file); err != nil && p.err == nil {
		p.err = &ScriptError{Name: p.name, Err: err}
	}
}

// Err returns the first failure seen by Run, if any.
func (p *Program) Err() error {
	return p.err
}

// Task wraps the program as a bench task.
func (p *Program) Task() bench.Task {
	return bench.NewTask(p.name, p.Run)
}

// Suite is a bench suite of shell programs plus its optional init program.
type Suite struct {
	*bench.Suite
	Init     *Program
	Programs []*Program
}

// NewSuite compiles every script, and init when non-empty, into one suite.
// All scripts are parsed before anything runs, so a typo fails fast.
func NewSuite(ctx context.Context, init string, scripts []Script, opts Options) (*Suite, error) {
	s := &Suite{}
	hook := bench.NoInit
	if strings.TrimSpace(init) != "" {
		p, err := Compile(ctx, Script{Name: "init", Source: init}, opts)
		if err != nil {
			return nil, err
		}
		s.Init = p
		hook = p.Run
	}

	tasks := make([]bench.Task, 0, len(scripts))
	for _, script := range scripts {
		p, err := Compile(ctx, script, opts)
		if err != nil {
			return nil, err
		}
		s.Programs = append(s.Programs, p)
		tasks = append(tasks, p.Task())
	}
	s.Suite = bench.NewSuite(hook, tasks...)
	return s, nil
}

// Err joins the failures of the init program and every task program.
func (s *Suite) Err() error {
	var errs []error
	if s.Init != nil && s.Init.Err() != nil {
		errs = append(errs, s.Init.Err())
	}
	for _, p := range s.Programs {
		if err := p.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
