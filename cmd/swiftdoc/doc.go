// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Swiftdoc adds generated documentation comments to Swift source files.

# Usage

	$ swiftdoc [flags...]

It walks the root directory, finds every .swift file and rewrites it in
place. Each class, struct, enum and extension gets a one-line comment, each
function gets a comment describing its parameters and result, and the file
gets a header listing its declarations. Existing comments are removed.

Before a file is rewritten for the first time, its original contents are
saved next to it with the .bak suffix. Existing backups are never
overwritten.

Directories starting with a dot are skipped unless -include-hidden is set.

With -n nothing is written and the changes are printed as a diff instead.

Declarations are found by matching lines against regular expressions, not
by parsing Swift, so the result needs a review.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/swiftdoc/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
