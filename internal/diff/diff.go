// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package diff renders line diffs in unified format.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// context is the number of unchanged lines shown around each change.
const context = 3

type line struct {
	op   diffmatchpatch.Operation
	text string // with its line break, if any
}

// Diff returns a unified diff of old and new, labeled with oldName and
// newName. It returns nil if old and new are equal.
func Diff(oldName string, old []byte, newName string, new []byte) []byte {
	if bytes.Equal(old, new) {
		return nil
	}

	lines := diffLines(string(old), string(new))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", oldName, newName)
	for _, h := range hunks(lines) {
		writeHunk(&buf, lines, h)
	}
	return buf.Bytes()
}

func diffLines(old, new string) []line {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToRunes(old, new)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lineArray)

	var lines []line
	for _, d := range diffs {
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text != "" {
				lines = append(lines, line{op: d.Type, text: text})
			}
		}
	}
	return lines
}

// hunk is a half-open range of lines.
type hunk struct{ start, end int }

func hunks(lines []line) []hunk {
	var hs []hunk
	for i, l := range lines {
		if l.op == diffmatchpatch.DiffEqual {
			continue
		}
		start, end := max(0, i-context), min(len(lines), i+context+1)
		if n := len(hs); n > 0 && start <= hs[n-1].end {
			hs[n-1].end = end
			continue
		}
		hs = append(hs, hunk{start, end})
	}
	return hs
}

func writeHunk(buf *bytes.Buffer, lines []line, h hunk) {
	var oldStart, newStart, oldCount, newCount int
	for i, l := range lines[:h.end] {
		inHunk := i >= h.start
		if l.op != diffmatchpatch.DiffInsert {
			if inHunk {
				oldCount++
			} else {
				oldStart++
			}
		}
		if l.op != diffmatchpatch.DiffDelete {
			if inHunk {
				newCount++
			} else {
				newStart++
			}
		}
	}
	// Ranges of lines start at 1, empty ranges point to the line before.
	if oldCount > 0 {
		oldStart++
	}
	if newCount > 0 {
		newStart++
	}
	fmt.Fprintf(buf, "@@ -%d,%d +%d,%d @@\n", oldStart, oldCount, newStart, newCount)

	for _, l := range lines[h.start:h.end] {
		switch l.op {
		case diffmatchpatch.DiffEqual:
			buf.WriteByte(' ')
		case diffmatchpatch.DiffDelete:
			buf.WriteByte('-')
		case diffmatchpatch.DiffInsert:
			buf.WriteByte('+')
		}
		buf.WriteString(l.text)
		if !strings.HasSuffix(l.text, "\n") {
			buf.WriteString("\n\\ No newline at end of file\n")
		}
	}
}
