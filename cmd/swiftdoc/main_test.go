// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/swiftdoc/internal/atomicio"
	"go.astrophena.name/swiftdoc/internal/cli"
	"go.astrophena.name/swiftdoc/internal/cli/clitest"
	"go.astrophena.name/swiftdoc/internal/logger"
	"go.astrophena.name/swiftdoc/internal/testutil"

	"golang.org/x/tools/txtar"
)

var update = flag.Bool("update", false, "update golden files in testdata")

func TestRun(t *testing.T) {
	t.Parallel()

	clitest.Run(t, func(t *testing.T) *app {
		return new(app)
	}, map[string]clitest.Case[*app]{
		"prints usage with help flag": {
			Args:         []string{"-h"},
			WantErr:      flag.ErrHelp,
			WantInStderr: "Swiftdoc adds generated documentation comments",
		},
		"version": {
			Args:    []string{"-version"},
			WantErr: cli.ErrExitVersion,
		},
		"unexpected arguments": {
			Args:    []string{"Sources"},
			WantErr: cli.ErrInvalidArgs,
		},
		"nonexistent root": {
			Args:    []string{"-root", "$ROOT/nonexistent"},
			WantErr: fs.ErrNotExist,
		},
		"nonexistent root from environment": {
			Env:     map[string]string{"SWIFTDOC_ROOT": "$ROOT/nonexistent"},
			WantErr: fs.ErrNotExist,
		},
		"root without Swift files": {
			Files:        map[string]string{"README.md": "# Flux\n"},
			Args:         []string{"-root", "$ROOT"},
			WantInStderr: "Processed 0 .swift files under ",
			WantFiles:    map[string]string{"README.md": "# Flux\n"},
			CheckFunc: func(t *testing.T, a *app) {
				if *a.jobs != 1 {
					t.Errorf("jobs = %d, want 1", *a.jobs)
				}
			},
		},
		"jobs from environment": {
			Env: map[string]string{
				"SWIFTDOC_ROOT": "$ROOT",
				"SWIFTDOC_JOBS": "8",
			},
			CheckFunc: func(t *testing.T, a *app) {
				if *a.jobs != 8 {
					t.Errorf("jobs = %d, want 8", *a.jobs)
				}
			},
		},
		"annotates and backs up": {
			Files:        map[string]string{"App.swift": "class App {}\n"},
			Args:         []string{"-root", "$ROOT"},
			WantInStderr: "Processed 1 .swift files under ",
			WantFiles: map[string]string{
				"App.swift":     "/*\n File: App.swift\n Purpose: class App\n Location: App.swift\n*/\n\n/// Class App: Responsible for the lifecycle, state, and behavior related to App.\nclass App {}\n",
				"App.swift.bak": "class App {}\n",
			},
		},
		"dry run leaves files untouched": {
			Files:        map[string]string{"App.swift": "class App {}\n"},
			Args:         []string{"-n", "-root", "$ROOT"},
			WantInStdout: "+/// Class App: Responsible for the lifecycle, state, and behavior related to App.\n",
			WantInStderr: "Dry run: Processed 1 .swift files under ",
			WantFiles:    map[string]string{"App.swift": "class App {}\n"},
		},
	})
}

func TestAnnotateTree(t *testing.T) {
	testutil.RunGolden(t, "testdata/*.txtar", func(t *testing.T, ar *txtar.Archive) []byte {
		dir := t.TempDir()
		testutil.ExtractTxtar(t, ar, dir)

		// The first line of the archive comment is the command line.
		cmdline, _, _ := strings.Cut(string(ar.Comment), "\n")
		args := append(strings.Fields(cmdline)[1:], "-root", dir)

		var stdout, stderr bytes.Buffer
		env := &cli.Env{
			Args:   args,
			Stdout: &stdout,
			Stderr: &stderr,
		}
		if err := cli.Run(context.Background(), new(app), env); err != nil {
			t.Fatal(err)
		}

		got := testutil.BuildTxtar(t, dir)
		out := new(txtar.Archive)
		if stdout.Len() > 0 {
			out.Files = append(out.Files, txtar.File{Name: "stdout", Data: hideRoot(t, dir, stdout.Bytes())})
		}
		out.Files = append(out.Files, txtar.File{Name: "stderr", Data: hideRoot(t, dir, stderr.Bytes())})
		return append(got, txtar.Format(out)...)
	}, *update)
}

// hideRoot replaces the temporary directory in b with a stable placeholder.
func hideRoot(t *testing.T, dir string, b []byte) []byte {
	t.Helper()
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		b = bytes.ReplaceAll(b, []byte(resolved), []byte("[ROOT]"))
	}
	b = bytes.ReplaceAll(b, []byte(dir), []byte("[ROOT]"))
	return bytes.ReplaceAll(b, []byte(string(filepath.Separator)), []byte("/"))
}

func TestRunConcurrently(t *testing.T) {
	dir := t.TempDir()
	const n = 20
	for i := range n {
		src := fmt.Sprintf("struct S%d {}\n", i)
		if err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("S%d.swift", i)), []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var stderr bytes.Buffer
	env := &cli.Env{
		Args:   []string{"-j", "4", "-root", dir},
		Stdout: new(bytes.Buffer),
		Stderr: &stderr,
	}
	if err := cli.Run(context.Background(), new(app), env); err != nil {
		t.Fatal(err)
	}

	if want := fmt.Sprintf("Processed %d .swift files under ", n); !strings.Contains(stderr.String(), want) {
		t.Errorf("stderr must contain %q, got: %q", want, stderr.String())
	}
	for i := range n {
		name := filepath.Join(dir, fmt.Sprintf("S%d.swift", i))
		b, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		want := fmt.Sprintf("/// Struct S%d: Value type that models the S%d data and related helpers.\nstruct S%d {}\n", i, i, i)
		if !strings.HasSuffix(string(b), want) {
			t.Errorf("%s is not annotated:\n%s", name, b)
		}
		if _, err := os.Stat(name + atomicio.BackupSuffix); err != nil {
			t.Errorf("backup of %s is missing: %v", name, err)
		}
	}
}

func TestRunCanceled(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "A.swift")
	if err := os.WriteFile(name, []byte("class A {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stderr bytes.Buffer
	env := &cli.Env{
		Args:   []string{"-root", dir},
		Stdout: new(bytes.Buffer),
		Stderr: &stderr,
	}
	if err := cli.Run(ctx, new(app), env); !errors.Is(err, context.Canceled) {
		t.Fatalf("got error %v, want %v", err, context.Canceled)
	}

	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, string(b), "class A {}\n")
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"A.swift",
		"A.swift.bak",
		"notes.txt",
		".Hidden.swift",
		filepath.Join("Sub", "B.swift"),
		filepath.Join(".git", "C.swift"),
		filepath.Join("Sub", ".cache", "D.swift"),
	} {
		name = filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(name, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	rel := func(files []string) []string {
		var rels []string
		for _, f := range files {
			r, err := filepath.Rel(dir, f)
			if err != nil {
				t.Fatal(err)
			}
			rels = append(rels, filepath.ToSlash(r))
		}
		return rels
	}

	files, err := find(dir, false, logger.Discard)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, rel(files), []string{".Hidden.swift", "A.swift", "Sub/B.swift"})

	files, err = find(dir, true, logger.Discard)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, rel(files), []string{".Hidden.swift", ".git/C.swift", "A.swift", "Sub/.cache/D.swift", "Sub/B.swift"})
}

func TestFindHiddenRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".project")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "A.swift"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := find(dir, false, logger.Discard)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, files, []string{filepath.Join(dir, "A.swift")})
}
