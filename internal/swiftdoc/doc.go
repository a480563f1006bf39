// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package swiftdoc annotates Swift source with generated documentation
// comments.
//
// It does not parse Swift. Comments are stripped lexically, declarations are
// found by matching the start of each line against a small set of regular
// expressions, and every detected declaration gets a comment chosen from a
// fixed set of templates. A header summarizing the file is placed on top.
//
// Because the stripper is not aware of string literals, comment markers
// inside strings are removed as if they were real comments:
//
//	let url = "https://example.com"
//
// becomes
//
//	let url = "https:
//
// Annotating already annotated text is not idempotent. The previous header
// and comments are stripped to blank lines and generated again.
package swiftdoc
