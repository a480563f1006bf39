// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package testutil contains common testing helpers.
package testutil

import (
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// AssertEqual compares two values and if they differ, fails the test and
// prints the difference between them.
func AssertEqual(t *testing.T, got, want any) {
	t.Helper()
	if diff := cmp.Diff(got, want); diff != "" {
		t.Fatalf("(-got +want):\n%s", diff)
	}
}

// Run runs a subtest named after each file matching glob, without its
// extension.
func Run(t *testing.T, glob string, f func(t *testing.T, match string)) {
	t.Helper()
	matches, err := filepath.Glob(glob)
	if err != nil {
		t.Fatalf("filepath.Glob(%q): %v", glob, err)
	}
	if len(matches) == 0 {
		t.Fatalf("no files match %q", glob)
	}

	for _, match := range matches {
		t.Run(strings.TrimSuffix(filepath.Base(match), filepath.Ext(match)), func(t *testing.T) {
			f(t, match)
		})
	}
}

// RunGolden parses each txtar archive matching glob, passes it to f and
// compares the result with the sibling ".golden" file. With update set the
// golden file is rewritten instead.
func RunGolden(t *testing.T, glob string, f func(t *testing.T, ar *txtar.Archive) []byte, update bool) {
	t.Helper()
	Run(t, glob, func(t *testing.T, match string) {
		ar, err := txtar.ParseFile(match)
		if err != nil {
			t.Fatal(err)
		}
		got := f(t, ar)

		golden := strings.TrimSuffix(match, filepath.Ext(match)) + ".golden"
		if update {
			if err := os.WriteFile(golden, got, 0o644); err != nil {
				t.Fatalf("writing %s: %v", golden, err)
			}
			return
		}

		want, err := os.ReadFile(golden)
		if err != nil {
			t.Fatalf("reading %s (run with -update to create it): %v", golden, err)
		}
		AssertEqual(t, string(got), string(want))
	})
}

// WriteTree writes files, keyed by slash-separated path, beneath dir.
func WriteTree(t *testing.T, dir string, files map[string][]byte) {
	t.Helper()
	for name, data := range files {
		name = filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(name, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// ExtractTxtar extracts a txtar archive to dir.
func ExtractTxtar(t *testing.T, ar *txtar.Archive, dir string) {
	t.Helper()
	files := make(map[string][]byte, len(ar.Files))
	for _, f := range ar.Files {
		files[f.Name] = f.Data
	}
	WriteTree(t, dir, files)
}

// ReadTree returns contents of all files beneath dir, keyed by
// slash-separated path relative to dir.
func ReadTree(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	files := make(map[string][]byte)
	if err := filepath.WalkDir(dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, name)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = b
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	return files
}

// BuildTxtar constructs a txtar archive from contents of dir, with files in
// lexical order of their slash-separated names.
func BuildTxtar(t *testing.T, dir string) []byte {
	t.Helper()
	files := ReadTree(t, dir)
	ar := new(txtar.Archive)
	for _, name := range slices.Sorted(maps.Keys(files)) {
		ar.Files = append(ar.Files, txtar.File{Name: name, Data: files[name]})
	}
	return txtar.Format(ar)
}
