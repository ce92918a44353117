package walker

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/dir-tree/internal/failure"
	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/printer"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, fsys afero.Fs, root string, rules *ignore.RuleSet, opts ...Option) (string, Result, error) {
	t.Helper()
	var buf bytes.Buffer
	p := printer.New().WithOutput(&buf)
	res, err := Walk(root, rules, p, append([]Option{WithFs(fsys)}, opts...)...)
	return buf.String(), res, err
}

func TestWalkEndToEnd(t *testing.T) {
	fsys := memTree(t, "/root/sub/x.txt", "/root/y.txt")

	out, res, err := render(t, fsys, "/root", nil)
	require.NoError(t, err)

	assert.Equal(t, ""+
		"root\n"+
		"├── sub\n"+
		"│   └── x.txt\n"+
		"└── y.txt\n", out)
	assert.Equal(t, 1, res.Dirs)
	assert.Equal(t, 2, res.Files)
}

func TestWalkASCII(t *testing.T) {
	fsys := memTree(t, "/root/sub/x.txt", "/root/y.txt")

	out, _, err := render(t, fsys, "/root", nil, WithASCII(true))
	require.NoError(t, err)

	assert.Equal(t, ""+
		"root\n"+
		"|-- sub\n"+
		"|   `-- x.txt\n"+
		"`-- y.txt\n", out)
}

func TestWalkDeepIndentation(t *testing.T) {
	fsys := memTree(t,
		"/p/a/b/c.txt",
		"/p/a/b/d.txt",
		"/p/a/e.txt",
		"/p/z/",
	)

	out, _, err := render(t, fsys, "/p", nil)
	require.NoError(t, err)

	assert.Equal(t, ""+
		"p\n"+
		"├── a\n"+
		"│   ├── b\n"+
		"│   │   ├── c.txt\n"+
		"│   │   └── d.txt\n"+
		"│   └── e.txt\n"+
		"└── z\n", out)
}

func TestWalkLastBranchUsesSpaces(t *testing.T) {
	fsys := memTree(t, "/p/a.txt", "/p/z/q/r.txt")

	out, _, err := render(t, fsys, "/p", nil)
	require.NoError(t, err)

	assert.Equal(t, ""+
		"p\n"+
		"├── a.txt\n"+
		"└── z\n"+
		"    └── q\n"+
		"        └── r.txt\n", out)
}

func TestWalkMaxDepth(t *testing.T) {
	fsys := memTree(t, "/root/sub/x.txt", "/root/y.txt")

	out, res, err := render(t, fsys, "/root", nil, WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, "root\n", out)
	assert.Zero(t, res.Dirs+res.Files)

	out, _, err = render(t, fsys, "/root", nil, WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, "root\n├── sub\n└── y.txt\n", out)
}

func TestWalkMaxDepthDoesNotListBeyondLimit(t *testing.T) {
	fsys := newFaultyFs(memTree(t, "/root/locked/secret"))
	fsys.openErr["/root/locked"] = errDenied

	out, _, err := render(t, fsys, "/root", nil, WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, "root\n└── locked\n", out)
}

func TestWalkHiddenAndDirsOnly(t *testing.T) {
	fsys := memTree(t, "/r/.git/HEAD", "/r/src/main.go", "/r/README.md")

	out, _, err := render(t, fsys, "/r", nil)
	require.NoError(t, err)
	assert.Equal(t, "r\n├── README.md\n└── src\n    └── main.go\n", out)

	out, _, err = render(t, fsys, "/r", nil, WithHidden(true))
	require.NoError(t, err)
	assert.Equal(t, "r\n├── .git\n│   └── HEAD\n├── README.md\n└── src\n    └── main.go\n", out)

	out, _, err = render(t, fsys, "/r", nil, WithDirsOnly(true))
	require.NoError(t, err)
	assert.Equal(t, "r\n└── src\n", out)
}

func TestWalkIgnoreRules(t *testing.T) {
	fsys := memTree(t,
		"/r/build/out.bin",
		"/r/src/build",
		"/r/src/app.log",
		"/r/src/main.go",
	)
	rules := ignore.Parse("build/\n*.log\n")

	out, res, err := render(t, fsys, "/r", rules)
	require.NoError(t, err)
	assert.Equal(t, "r\n└── src\n    ├── build\n    └── main.go\n", out)

	require.Len(t, res.Skipped, 2)
	assert.Equal(t, filepath.Join("/r", "build"), res.Skipped[0].Path)
	assert.Equal(t, ReasonIgnored, res.Skipped[0].Reason)
}

func TestWalkUnsortedKeepsListingOrder(t *testing.T) {
	fsys := newFaultyFs(memTree(t, "/r/a", "/r/b", "/r/c"))
	fsys.order["/r"] = []string{"c", "a", "b"}

	out, _, err := render(t, fsys, "/r", nil, WithSort(false))
	require.NoError(t, err)
	assert.Equal(t, "r\n├── c\n├── a\n└── b\n", out)

	out, _, err = render(t, fsys, "/r", nil, WithSort(true))
	require.NoError(t, err)
	assert.Equal(t, "r\n├── a\n├── b\n└── c\n", out)
}

func TestWalkRootIsFile(t *testing.T) {
	fsys := memTree(t, "/r/only.txt")

	out, res, err := render(t, fsys, "/r/only.txt", nil)
	require.NoError(t, err)
	assert.Equal(t, "only.txt\n", out)
	assert.Zero(t, res.Files)
}

func TestWalkRootDisplayName(t *testing.T) {
	fsys := memTree(t, "/r/a")

	out, _, err := render(t, fsys, "/r/", nil)
	require.NoError(t, err)
	assert.Equal(t, "r\n└── a\n", out)
}

func TestWalkReadDirFailure(t *testing.T) {
	fsys := newFaultyFs(memTree(t, "/r/a.txt", "/r/locked/x", "/r/z.txt"))
	fsys.openErr[filepath.Join("/r", "locked")] = errDenied

	out, _, err := render(t, fsys, "/r", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.ErrReadDir))
	assert.True(t, errors.Is(err, errDenied))
	assert.Contains(t, err.Error(), "locked")

	// Lines printed before the failure stay printed
	assert.Equal(t, "r\n├── a.txt\n├── locked\n", out)
}

func TestWalkReadDirEntryFailure(t *testing.T) {
	fsys := newFaultyFs(memTree(t, "/r/a.txt"))
	fsys.readdirErr["/r"] = errors.New("io error")

	out, _, err := render(t, fsys, "/r", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.ErrReadDirEntry))
	assert.Equal(t, "r\n", out)
}

func TestWalkMetadataFailureOnlyWithColors(t *testing.T) {
	fsys := newFaultyFs(memTree(t, "/r/a.txt"))
	fsys.statErr[filepath.Join("/r", "a.txt")] = errDenied

	var buf bytes.Buffer
	p := printer.New().WithOutput(&buf).WithColors(true)
	_, err := Walk("/r", nil, p, WithFs(fsys))
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.ErrGetMetadata))
	assert.Contains(t, err.Error(), "a.txt")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "only the root line is printed")

	// Without colors no metadata is needed
	buf.Reset()
	p.WithColors(false)
	_, err = Walk("/r", nil, p, WithFs(fsys))
	require.NoError(t, err)
	assert.Equal(t, "r\n└── a.txt\n", buf.String())
}

func TestWalkColors(t *testing.T) {
	fsys := memTree(t, "/r/dir/", "/r/ro.txt", "/r/rw.txt")
	require.NoError(t, fsys.Chmod("/r/ro.txt", 0o444))

	var buf bytes.Buffer
	p := printer.New().WithOutput(&buf).WithColors(true)
	_, err := Walk("/r", nil, p, WithFs(fsys))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "\x1b[34;1mr"), "root: %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "├── \x1b[34;1mdir"), "dir: %q", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "├── \x1b[31;1mro.txt"), "readonly: %q", lines[2])
	assert.Equal(t, "└── rw.txt", lines[3])
}

func TestWalkSymlinks(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "real", "inner"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("x"), 0o644))
	if err := os.Symlink(filepath.Join(root, "file.txt"), filepath.Join(root, "link.txt")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "linkdir")))

	fsys := afero.NewOsFs()

	var buf bytes.Buffer
	p := printer.New().WithOutput(&buf).WithColors(true)
	_, err := Walk(root, nil, p, WithFs(fsys))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "├── \x1b[36;1mlink.txt")
	// A symlink to a directory is shown as a directory and walked into
	assert.Contains(t, out, "├── \x1b[34;1mlinkdir")
	assert.Contains(t, out, "│   └── \x1b[34;1minner")

	// --directories-only does not follow symlinks when filtering
	buf.Reset()
	p.WithColors(false)
	_, err = Walk(root, nil, p, WithFs(fsys), WithDirsOnly(true))
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(root)+"\n└── real\n    └── inner\n", buf.String())
}

func TestWalkIsIdempotent(t *testing.T) {
	fsys := memTree(t, "/r/a/b/c", "/r/a/d", "/r/e/", "/r/f")

	first, _, err := render(t, fsys, "/r", nil, WithASCII(true))
	require.NoError(t, err)
	second, _, err := render(t, fsys, "/r", nil, WithASCII(true))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
