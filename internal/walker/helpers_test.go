package walker

import (
	"io/fs"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// memTree builds a MemMapFs from paths; a trailing '/' creates a directory
func memTree(t *testing.T, paths ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, p := range paths {
		if p[len(p)-1] == '/' {
			require.NoError(t, fsys.MkdirAll(p[:len(p)-1], 0o755))
			continue
		}
		require.NoError(t, afero.WriteFile(fsys, p, []byte("x"), 0o644))
	}
	return fsys
}

// faultyFs injects errors for single paths
type faultyFs struct {
	afero.Fs
	openErr    map[string]error
	readdirErr map[string]error
	lstatErr   map[string]error
	statErr    map[string]error
	order      map[string][]string
}

func newFaultyFs(base afero.Fs) *faultyFs {
	return &faultyFs{
		Fs:         base,
		openErr:    map[string]error{},
		readdirErr: map[string]error{},
		lstatErr:   map[string]error{},
		statErr:    map[string]error{},
		order:      map[string][]string{},
	}
}

func (f *faultyFs) Open(name string) (afero.File, error) {
	if err, ok := f.openErr[name]; ok {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	file, err := f.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return &faultyFile{File: file, readdirErr: f.readdirErr[name], order: f.order[name]}, nil
}

func (f *faultyFs) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErr[name]; ok {
		return nil, &os.PathError{Op: "stat", Path: name, Err: err}
	}
	return f.Fs.Stat(name)
}

func (f *faultyFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	if err, ok := f.lstatErr[name]; ok {
		return nil, false, &os.PathError{Op: "lstat", Path: name, Err: err}
	}
	info, err := f.Fs.Stat(name)
	return info, false, err
}

// faultyFile can fail or reorder its listing
type faultyFile struct {
	afero.File
	readdirErr error
	order      []string
}

func (f *faultyFile) Readdirnames(n int) ([]string, error) {
	if f.readdirErr != nil {
		return nil, f.readdirErr
	}
	if f.order != nil {
		return f.order, nil
	}
	return f.File.Readdirnames(n)
}

var errDenied = fs.ErrPermission
