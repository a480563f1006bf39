// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package cli runs command-line applications whose usage text comes from the
// command's doc comment.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
)

// Main runs app with the process environment until it returns or an
// interrupt cancels its context. A non-nil error is printed, unless flag
// parsing already reported it, and exits with status 1.
func Main(app App) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := Run(ctx, app, OSEnv())
	if err == nil {
		return
	}

	if printable(err) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

// silentError is an error that has already been reported to the user.
type silentError struct{ error }

func (e silentError) Unwrap() error { return e.error }

func printable(err error) bool {
	var se silentError
	return !errors.Is(err, flag.ErrHelp) && !errors.As(err, &se)
}

// ErrExitVersion is returned by [Run] after printing the version.
var ErrExitVersion error = silentError{errors.New("version flag exit")}

// ErrInvalidArgs reports bad usage. Wrap it with a message saying what was
// wrong:
//
//	return fmt.Errorf("%w: unexpected argument %q", cli.ErrInvalidArgs, arg)
var ErrInvalidArgs = errors.New("invalid arguments")

// App represents a command-line application.
type App interface {
	// Run runs the application.
	Run(context.Context, *Env) error
}

// HasFlags represents a command-line application that has flags.
type HasFlags interface {
	App

	// Flags adds flags to the flag set. The environment is passed to allow
	// flag defaults to be taken from environment variables.
	Flags(*flag.FlagSet, *Env)
}

// Env is what an application sees of the outside world. Tests construct it
// directly instead of touching the process state.
type Env struct {
	Args   []string
	Getenv func(string) string
	Stdout io.Writer
	Stderr io.Writer

	logOnce sync.Once
	logger  *log.Logger
}

// Logf writes the formatted message to standard error of this environment.
// It is safe for concurrent use.
func (e *Env) Logf(format string, args ...any) {
	e.logOnce.Do(func() {
		e.logger = log.New(e.Stderr, "", 0)
	})
	e.logger.Printf(format, args...)
}

// OSEnv returns the current operating system environment.
func OSEnv() *Env {
	return &Env{
		Args:   os.Args[1:],
		Getenv: os.Getenv,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run parses env.Args into app's flags and calls app.Run with the remaining
// arguments.
func Run(ctx context.Context, app App, env *Env) error {
	if env.Getenv == nil {
		env.Getenv = func(string) string { return "" }
	}

	name := CmdName()

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	if fa, ok := app.(HasFlags); ok {
		fa.Flags(flags, env)
	}

	var showVersion bool
	if flags.Lookup("version") == nil {
		flags.BoolVar(&showVersion, "version", false, "Show version.")
	}

	flags.Usage = usage(flags, env.Stderr)
	flags.SetOutput(env.Stderr)
	if err := flags.Parse(env.Args); err != nil {
		// The flag package has printed it already.
		return silentError{err}
	}

	if showVersion {
		fmt.Fprint(env.Stderr, Version())
		return ErrExitVersion
	}
	env.Args = flags.Args()

	return app.Run(ctx, env)
}

func usage(flags *flag.FlagSet, stderr io.Writer) func() {
	return func() {
		if docSrc != nil {
			fmt.Fprintf(stderr, "%s\n", doc())
		}
		fmt.Fprint(stderr, "Available flags:\n\n")
		flags.PrintDefaults()
	}
}

var (
	docSrc []byte
	doc    = sync.OnceValue(parseDocComment)
)

// SetDocComment sets the source of the usage text printed by -h. src is
// usually the command's embedded doc.go; the lines between the first "/*"
// and "*/" lines are used verbatim.
func SetDocComment(src []byte) { docSrc = src }

func parseDocComment() string {
	var (
		sb        strings.Builder
		inComment bool
	)
	for line := range strings.Lines(string(docSrc)) {
		switch strings.TrimSuffix(line, "\n") {
		case "/*":
			inComment = true
		case "*/":
			return sb.String()
		default:
			if inComment {
				sb.WriteString(line)
			}
		}
	}
	return sb.String()
}
