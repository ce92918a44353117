package walker

import (
	"os"
	"path/filepath"

	"github.com/bethropolis/dir-tree/internal/failure"
	"github.com/bethropolis/dir-tree/internal/printer"
	"github.com/spf13/afero"
)

// lstat reads metadata without following a final symlink when the
// filesystem supports it
func lstat(fsys afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fsys.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fsys.Stat(path)
}

// isDir follows symlinks; any stat error counts as "not a directory"
func isDir(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// listEntries reads the whole listing of dir, in the order the filesystem
// returns it
func listEntries(fsys afero.Fs, dir string) ([]Entry, error) {
	f, err := fsys.Open(dir)
	if err != nil {
		return nil, failure.New(failure.KindReadDir, dir, err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, failure.New(failure.KindReadDirEntry, dir, err)
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{
			Path: filepath.Join(dir, name),
			Name: name,
		})
	}
	return entries, nil
}

// resolveType fills in the entry's file type
func resolveType(fsys afero.Fs, e *Entry) error {
	if e.typeKnown {
		return nil
	}
	info, err := lstat(fsys, e.Path)
	if err != nil {
		return failure.New(failure.KindGetFileType, e.Path, err)
	}
	e.IsDir = info.IsDir()
	e.IsSymlink = info.Mode()&os.ModeSymlink != 0
	e.typeKnown = true
	return nil
}

// Classify picks the emphasis for path, first match wins: directory
// (following symlinks), symlink, read-only file, plain.
// Only the read-only check can fail.
func Classify(fsys afero.Fs, path string) (printer.Style, error) {
	if isDir(fsys, path) {
		return printer.StyleDirectory, nil
	}

	if info, err := lstat(fsys, path); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return printer.StyleSymlink, nil
	}

	info, err := fsys.Stat(path)
	if err != nil {
		return printer.StylePlain, failure.New(failure.KindGetMetadata, path, err)
	}
	if info.Mode().Perm()&0o222 == 0 {
		return printer.StyleReadOnly, nil
	}
	return printer.StylePlain, nil
}
