// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package swiftdoc

import (
	"regexp"
	"strings"
)

var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRe  = regexp.MustCompile(`//.*`)
)

// Strip removes block and line comments from src. Everything else, including
// line breaks outside of block comments, is preserved.
//
// Block comments don't nest: the first "*/" closes the comment.
func Strip(src string) string {
	src = blockCommentRe.ReplaceAllString(src, "")
	return lineCommentRe.ReplaceAllString(src, "")
}

// Lines splits s into lines. Lines may end with "\n", "\r\n" or "\r". A
// terminator at the very end doesn't start a new line, so an empty string
// has no lines at all.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
