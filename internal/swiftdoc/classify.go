// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package swiftdoc

import (
	"regexp"
	"strings"
)

// Kind is the kind of a declaration. Besides the named constants, Kind may
// hold whatever word [Classify] found first on a line it couldn't recognize.
type Kind string

// Known declaration kinds.
const (
	KindClass     Kind = "class"
	KindStruct    Kind = "struct"
	KindEnum      Kind = "enum"
	KindExtension Kind = "extension"
	KindFunc      Kind = "func"
)

// IsType reports whether k is one of the type kinds.
func (k Kind) IsType() bool {
	switch k {
	case KindClass, KindStruct, KindEnum, KindExtension:
		return true
	}
	return false
}

var (
	typeDeclRe = regexp.MustCompile(`\b(class|struct|enum|extension)\s+([A-Za-z0-9_]+)`)
	funcDeclRe = regexp.MustCompile(`\bfunc\s+([A-Za-z0-9_]+)\s*\(([^)]*)\)\s*(?:->\s*([^\s{]+))?`)
)

// Classify returns the kind and name of the declaration on line.
//
// It never fails. A line that matches neither the type nor the function
// pattern is split on whitespace: the first word becomes the kind and the
// second one, if any, the name.
func Classify(line string) (kind Kind, name string) {
	s := strings.TrimSpace(line)
	if m := typeDeclRe.FindStringSubmatch(s); m != nil {
		return Kind(m[1]), m[2]
	}
	if m := funcDeclRe.FindStringSubmatch(s); m != nil {
		return KindFunc, m[1]
	}
	fields := strings.Fields(s)
	switch len(fields) {
	case 0:
		return "declaration", ""
	case 1:
		return Kind(fields[0]), ""
	default:
		return Kind(fields[0]), fields[1]
	}
}

// signature is the part of a function declaration line that ends up in its
// comment.
type signature struct {
	name   string
	params []string
	result string
}

func parseSignature(line string) signature {
	m := funcDeclRe.FindStringSubmatch(line)
	if m == nil {
		var sig signature
		if fields := strings.Fields(line); len(fields) > 1 {
			sig.name = fields[1]
		}
		return sig
	}
	sig := signature{name: m[1], result: m[3]}
	// Commas inside generic arguments or tuple types split the parameter too.
	for _, p := range strings.Split(m[2], ",") {
		if p = strings.TrimSpace(p); p != "" {
			sig.params = append(sig.params, p)
		}
	}
	return sig
}
