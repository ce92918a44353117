// Package failure defines the fatal errors a tree walk can end with.
//
// Every error carries the offending path and the underlying OS error as its
// cause, so callers can both print a useful message and inspect the cause
// with errors.Is / errors.As.
package failure

import "fmt"

// Kind identifies which filesystem operation failed
type Kind int

const (
	KindReadDir Kind = iota + 1
	KindReadDirEntry
	KindGetFileType
	KindGetMetadata
	KindReadIgnoreFile
)

func (k Kind) String() string {
	switch k {
	case KindReadDir:
		return "read dir"
	case KindReadDirEntry:
		return "read dir entry"
	case KindGetFileType:
		return "get file type"
	case KindGetMetadata:
		return "get metadata"
	case KindReadIgnoreFile:
		return "read ignore file"
	default:
		return "unknown"
	}
}

// Error is a walk failure for a single path
type Error struct {
	Kind Kind
	Path string
	Err  error
}

// Sentinels for errors.Is. Only the Kind is compared.
var (
	ErrReadDir        = &Error{Kind: KindReadDir}
	ErrReadDirEntry   = &Error{Kind: KindReadDirEntry}
	ErrGetFileType    = &Error{Kind: KindGetFileType}
	ErrGetMetadata    = &Error{Kind: KindGetMetadata}
	ErrReadIgnoreFile = &Error{Kind: KindReadIgnoreFile}
)

// New wraps err as a failure of the given kind at path
func New(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

func (e *Error) Error() string {
	var what string
	switch e.Kind {
	case KindReadDir:
		what = "failed to open directory"
	case KindReadDirEntry:
		what = "failed to read directory entry in"
	case KindGetFileType:
		what = "failed to get file type of"
	case KindGetMetadata:
		what = "failed to get metadata of"
	case KindReadIgnoreFile:
		what = "failed to read ignore file"
	default:
		what = "failed on"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s `%s`", what, e.Path)
	}
	return fmt.Sprintf("%s `%s`: %v", what, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a failure of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
