// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build android || !linux

package restrict

import "go.astrophena.name/swiftdoc/internal/logger"

// ToDir is a no-op on non-Linux systems and Android.
func ToDir(_ logger.Logf, _ string) {}
