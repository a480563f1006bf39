// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest runs table-driven tests of command-line applications that
// operate on a directory tree.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.astrophena.name/swiftdoc/internal/cli"
	"go.astrophena.name/swiftdoc/internal/testutil"
)

// Root is replaced with the case's temporary directory in Args and Env
// values.
const Root = "$ROOT"

// Case is a single run of an application.
type Case[App cli.App] struct {
	// Files are written beneath Root before the run, keyed by slash-separated
	// path.
	Files map[string]string
	// Args are the command-line arguments.
	Args []string
	// Env are the environment variables visible to the application.
	Env map[string]string

	// WantErr is the expected error, checked with errors.Is.
	WantErr error
	// WantNothingPrinted means both stdout and stderr must stay empty.
	WantNothingPrinted bool
	// WantInStdout must be a substring of stdout.
	WantInStdout string
	// WantInStderr must be a substring of stderr.
	WantInStderr string
	// WantFiles, if not nil, is the complete tree beneath Root after the run.
	WantFiles map[string]string
	// CheckFunc performs additional checks after the run.
	CheckFunc func(*testing.T, App)
}

// Run runs cases in parallel, each against a fresh App made by setup and a
// fresh temporary directory.
func Run[App cli.App](t *testing.T, setup func(*testing.T) App, cases map[string]Case[App]) {
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			files := make(map[string][]byte, len(tc.Files))
			for file, data := range tc.Files {
				files[file] = []byte(data)
			}
			testutil.WriteTree(t, root, files)

			expand := func(s string) string { return strings.ReplaceAll(s, Root, root) }
			args := make([]string, len(tc.Args))
			for i, arg := range tc.Args {
				args[i] = expand(arg)
			}

			app := setup(t)
			var stdout, stderr bytes.Buffer
			env := &cli.Env{
				Args: args,
				Getenv: func(key string) string {
					return expand(tc.Env[key])
				},
				Stdout: &stdout,
				Stderr: &stderr,
			}

			err := cli.Run(context.Background(), app, env)
			switch {
			case err == nil && tc.WantErr != nil:
				t.Fatalf("must fail with error: %v", tc.WantErr)
			case err != nil && tc.WantErr == nil:
				t.Fatalf("got error: %v", err)
			case err != nil && !errors.Is(err, tc.WantErr):
				t.Fatalf("got error: %v, want: %v", err, tc.WantErr)
			}

			if tc.WantNothingPrinted && stdout.Len()+stderr.Len() > 0 {
				t.Errorf("nothing must be printed, got stdout %q and stderr %q", stdout.String(), stderr.String())
			}
			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got: %q", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got: %q", tc.WantInStderr, stderr.String())
			}

			if tc.WantFiles != nil {
				got := make(map[string]string)
				for file, data := range testutil.ReadTree(t, root) {
					got[file] = string(data)
				}
				testutil.AssertEqual(t, got, tc.WantFiles)
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}
