// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"go.astrophena.name/swiftdoc/internal/atomicio"
	"go.astrophena.name/swiftdoc/internal/cli"
	"go.astrophena.name/swiftdoc/internal/cli/envflag"
	"go.astrophena.name/swiftdoc/internal/diff"
	"go.astrophena.name/swiftdoc/internal/logger"
	"go.astrophena.name/swiftdoc/internal/restrict"
	"go.astrophena.name/swiftdoc/internal/swiftdoc"

	"golang.org/x/sync/errgroup"
)

func main() { cli.Main(new(app)) }

const ext = ".swift"

type app struct {
	root          *string
	includeHidden *bool
	jobs          *int
	dry           bool
}

func (a *app) Flags(fs *flag.FlagSet, env *cli.Env) {
	a.root = envflag.Value(fs, env.Getenv, "root", "SWIFTDOC_ROOT", ".", "Root `directory` to search for .swift files.")
	a.includeHidden = envflag.Value(fs, env.Getenv, "include-hidden", "SWIFTDOC_INCLUDE_HIDDEN", false, "Include hidden (dot-prefixed) directories.")
	a.jobs = envflag.Value(fs, env.Getenv, "j", "SWIFTDOC_JOBS", 1, "Process `n` files concurrently.")
	fs.BoolVar(&a.dry, "n", false, "Print changes as a diff, but don't write files.")
}

func (a *app) Run(ctx context.Context, env *cli.Env) error {
	if len(env.Args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, env.Args)
	}

	root, err := filepath.Abs(*a.root)
	if err != nil {
		return err
	}
	if realroot, err := filepath.EvalSymlinks(root); err == nil {
		root = realroot
	}

	// Drop privileges if not in tests.
	restrict.ToDirUnlessTesting(env.Logf, root)

	files, err := find(root, *a.includeHidden, env.Logf)
	if err != nil {
		return err
	}

	p := &processor{
		root:   root,
		dry:    a.dry,
		logf:   env.Logf,
		stdout: env.Stdout,
	}
	n := p.processAll(ctx, files, max(1, *a.jobs))

	var prefix string
	if a.dry {
		prefix = "Dry run: "
	}
	env.Logf("%sProcessed %d %s files under %s", prefix, n, ext, root)

	return ctx.Err()
}

// find returns paths of all Swift files beneath root in lexical order.
// Unreadable directories other than root are logged and skipped.
func find(root string, includeHidden bool, logf logger.Logf) ([]string, error) {
	var files []string

	if err := filepath.WalkDir(root, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			if name == root {
				return err
			}
			logf("Error reading %s: %v", name, err)
			return nil
		}

		if d.IsDir() {
			if name != root && !includeHidden && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), ext) {
			files = append(files, name)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return files, nil
}

var errInvalidUTF8 = errors.New("invalid UTF-8")

type processor struct {
	root string
	dry  bool
	logf logger.Logf

	mu     sync.Mutex // guards stdout
	stdout io.Writer
}

// processAll processes files, at most jobs at a time, and returns the number
// of files processed successfully. Failures are logged and don't stop
// processing. No new files are started after ctx is canceled.
func (p *processor) processAll(ctx context.Context, files []string, jobs int) int {
	var (
		g    errgroup.Group
		done atomic.Int64
	)
	g.SetLimit(jobs)

	for _, file := range files {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			p.logf("Processing %s", file)
			if err := p.process(file); err != nil {
				p.logf("Error processing %s: %v", file, err)
				return nil
			}
			done.Add(1)
			return nil
		})
	}
	g.Wait()

	return int(done.Load())
}

func (p *processor) process(file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	if !utf8.Valid(b) {
		return errInvalidUTF8
	}

	rel, err := filepath.Rel(p.root, file)
	if err != nil {
		return err
	}
	out := []byte(swiftdoc.Annotate(string(b), file, rel))

	if p.dry {
		rel = filepath.ToSlash(rel)
		d := diff.Diff(path.Join("a", rel), b, path.Join("b", rel), out)
		p.mu.Lock()
		defer p.mu.Unlock()
		_, err := p.stdout.Write(d)
		return err
	}

	// The backup is best-effort: failing to make one doesn't stop the
	// rewrite.
	_, _ = atomicio.Backup(file, b)

	return atomicio.WriteFile(file, out, 0o644)
}
