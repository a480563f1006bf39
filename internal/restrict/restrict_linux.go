// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build linux && !android

package restrict

import (
	"go.astrophena.name/swiftdoc/internal/logger"

	"github.com/landlock-lsm/go-landlock/landlock"
)

// ToDir restricts all goroutines of this program to reading and writing files
// beneath dir.
//
// If sandboxing fails, the error is logged with logf and the program
// continues unrestricted.
func ToDir(logf logger.Logf, dir string) {
	if err := landlock.V3.BestEffort().RestrictPaths(landlock.RWDirs(dir)); err != nil {
		logf("Sandboxing failed: %v", err)
	}
}
