package swiftdoc

//go:generate go run devtools/copyright.go

import (
	"bytes"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// dirs holds the module's own sources. _examples and other underscore
// directories are ignored by the go tool but not by gofmt.
var dirs = []string{"cmd", "internal", "devtools"}

func TestGofmt(t *testing.T) {
	if _, err := exec.LookPath("gofmt"); err != nil {
		t.Skip("gofmt not found in PATH")
	}
	var w bytes.Buffer
	run(t, &w, "gofmt", append([]string{"-l"}, dirs...)...)
	if files := strings.TrimSpace(w.String()); files != "" {
		t.Fatalf("run gofmt on these files:\n\t%v", files)
	}
}

func TestCopyright(t *testing.T) {
	for _, dir := range dirs {
		if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != ".go" {
				return nil
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if !bytes.HasPrefix(content, []byte("// ©")) {
				t.Errorf("%s: missing copyright header, run go generate", path)
			}
			return nil
		}); err != nil {
			t.Fatal(err)
		}
	}
}

func run(t *testing.T, buf *bytes.Buffer, cmd string, args ...string) {
	buf.Reset()
	c := exec.Command(cmd, args...)
	c.Stdout = buf
	c.Stderr = buf
	if err := c.Run(); err != nil {
		t.Fatalf("%s failed: %v:\n%v", cmd, err, buf.String())
	}
}
