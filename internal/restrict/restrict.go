// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package restrict

import (
	"testing"

	"go.astrophena.name/swiftdoc/internal/logger"
)

// ToDirUnlessTesting calls [ToDir], unless the program is running under
// 'go test'.
func ToDirUnlessTesting(logf logger.Logf, dir string) {
	if !testing.Testing() {
		ToDir(logf, dir)
	}
}
