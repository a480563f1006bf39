// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package swiftdoc

import (
	"regexp"
	"strings"
)

// Modifiers lists the keywords that may precede a declaration keyword on a
// declaration line.
var Modifiers = []string{
	"public", "private", "fileprivate", "internal", "open", "final", "static",
	"override", "convenience", "required", "mutating", "nonmutating",
}

var declLineRe = regexp.MustCompile(`^(?:@\w+\b\s*)*(?:(?:` + strings.Join(Modifiers, "|") + `)\s+)*(class|struct|enum|extension|func)\b`)

// Decl is a declaration found by [Scan].
type Decl struct {
	// Start is the index of the first line of the declaration. If the
	// declaration is preceded by attributes, it's the first attribute line.
	Start int
	// End is the index of the declaration line itself.
	End int
	// Kind and Name are the result of calling [Classify] on the declaration
	// line.
	Kind Kind
	Name string
}

// IsDeclLine reports whether line looks like the start of a type or function
// declaration.
func IsDeclLine(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	return declLineRe.MatchString(s)
}

func isAttrLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "@")
}

// Scan finds declarations in lines, which must already be stripped of
// comments. Declarations are returned in the order they appear.
func Scan(lines []string) []Decl {
	s := &scanner{lines: lines}
	for s.step() {
	}
	return s.decls
}

type scanState int

const (
	statePlain     scanState = iota // looking at ordinary content
	stateAttrRun                    // inside a run of attribute lines
	stateRunClosed                  // right after a run of attribute lines
)

type scanner struct {
	lines    []string
	pos      int
	runStart int
	state    scanState
	decls    []Decl
}

// step advances the scanner by one transition and reports whether there is
// more to do.
func (s *scanner) step() bool {
	switch s.state {
	case statePlain:
		if s.pos >= len(s.lines) {
			return false
		}
		line := s.lines[s.pos]
		switch {
		case isAttrLine(line):
			s.runStart = s.pos
			s.state = stateAttrRun
		case IsDeclLine(line):
			s.record(s.pos, s.pos)
		}
		s.pos++
	case stateAttrRun:
		if s.pos < len(s.lines) && isAttrLine(s.lines[s.pos]) {
			s.pos++
			return true
		}
		s.state = stateRunClosed
	case stateRunClosed:
		// An attribute run not followed by a declaration is ordinary content.
		if s.pos < len(s.lines) && IsDeclLine(s.lines[s.pos]) {
			s.record(s.runStart, s.pos)
			s.pos++
		}
		s.state = statePlain
	}
	return true
}

func (s *scanner) record(start, end int) {
	kind, name := Classify(s.lines[end])
	s.decls = append(s.decls, Decl{Start: start, End: end, Kind: kind, Name: name})
}
