// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package restrict confines the program with the [Landlock] Linux Security
// Module on supported systems.
//
// On systems where Landlock is not available, this package has no effect.
//
// [Landlock]: https://landlock.io
package restrict
