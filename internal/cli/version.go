// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cli

import (
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// VersionInfo is the version and build information of the current binary.
type VersionInfo struct {
	Version string
	Commit  string // BuildInfo's vcs.revision
	BuiltAt string // BuildInfo's vcs.time
	Go      string // runtime.Version()
	OS      string // runtime.GOOS
	Arch    string // runtime.GOARCH
}

// String implements the fmt.Stringer interface.
func (i VersionInfo) String() string {
	var sb strings.Builder
	sb.WriteString(CmdName() + " " + i.Version + " (" + i.Go + ", " + i.OS + "/" + i.Arch + ")\n")
	if i.Commit != "" && i.BuiltAt != "" {
		sb.WriteString("commit " + i.Commit + "\n")
		sb.WriteString("built at " + i.BuiltAt + "\n")
	}
	return sb.String()
}

type buildInfo struct {
	cmdName string
	info    VersionInfo
}

var readBuildInfo = sync.OnceValue(func() buildInfo {
	bi := buildInfo{
		cmdName: "swiftdoc",
		info: VersionInfo{
			Version: "devel",
			Go:      runtime.Version(),
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
		},
	}
	if exe, err := os.Executable(); err == nil {
		bi.cmdName = filepath.Base(exe)
	}

	dbi, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}
	if v := dbi.Main.Version; v != "" && v != "(devel)" {
		bi.info.Version = v
	}
	for _, s := range dbi.Settings {
		switch s.Key {
		case "vcs.revision":
			bi.info.Commit = s.Value
		case "vcs.time":
			bi.info.BuiltAt = s.Value
		}
	}
	return bi
})

// CmdName returns the base name of the current binary.
func CmdName() string { return readBuildInfo().cmdName }

// Version returns the version and build information of the current binary.
func Version() VersionInfo { return readBuildInfo().info }
