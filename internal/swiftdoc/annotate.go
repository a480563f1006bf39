// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package swiftdoc

import (
	"path/filepath"
	"strings"
)

const (
	// maxSummary is the maximum number of declarations listed in a header.
	maxSummary = 8
	// fallbackPurpose is used in a header of a file without declarations.
	fallbackPurpose = "Swift declarations for the Flux app."
)

// HeaderLines is the number of lines returned by [Header].
const HeaderLines = 6

// Annotate returns src stripped of comments, with a file header on top and a
// generated comment above every declaration. Comments always start at the
// first column, whatever the nesting of the declaration.
//
// name is the file name put in the header, rel is the path of the file
// relative to the scanned root. The result always ends with a single line
// break.
func Annotate(src, name, rel string) string {
	lines := Lines(Strip(src))
	decls := Scan(lines)

	out := Header(name, rel, decls)
	next := 0
	for i, line := range lines {
		if next < len(decls) && decls[next].Start == i {
			d := decls[next]
			out = append(out, Comment(d.Kind, d.Name, lines[d.End])...)
			next++
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n") + "\n"
}

// Header returns the header block for a file: a block comment holding the
// base name of the file, a summary of its declarations and its location
// relative to the scanned root, followed by an empty line.
func Header(name, rel string, decls []Decl) []string {
	return []string{
		"/*",
		" File: " + filepath.Base(name),
		" Purpose: " + summary(decls),
		" Location: " + filepath.ToSlash(rel),
		"*/",
		"",
	}
}

func summary(decls []Decl) string {
	if len(decls) == 0 {
		return fallbackPurpose
	}
	var parts []string
	for _, d := range decls[:min(len(decls), maxSummary)] {
		parts = append(parts, string(d.Kind)+" "+d.Name)
	}
	return strings.Join(parts, ", ")
}
