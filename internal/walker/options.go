// Package walker handles directory traversal and tree rendering
package walker

import (
	"github.com/bethropolis/dir-tree/internal/utils"
	"github.com/spf13/afero"
)

// WalkOptions configures the behavior of the Walk function.
// It is fixed before the walk starts and never modified during it.
type WalkOptions struct {
	Logger     utils.Logger
	Fs         afero.Fs
	MaxDepth   int // 0 = unlimited; the root is depth 1
	ShowHidden bool
	DirsOnly   bool
	Sort       bool
	ASCII      bool
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:   &utils.NoopLogger{},
		Fs:       afero.NewOsFs(),
		MaxDepth: 0,
		Sort:     true,
	}
}

// filterConfig extracts the part of the options the entry filter needs
func (o WalkOptions) filterConfig() FilterConfig {
	return FilterConfig{
		ShowHidden: o.ShowHidden,
		DirsOnly:   o.DirsOnly,
		Sort:       o.Sort,
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithFs sets the filesystem the walk reads from
func WithFs(fsys afero.Fs) Option {
	return func(opts *WalkOptions) {
		if fsys != nil {
			opts.Fs = fsys
		}
	}
}

// WithMaxDepth limits how deep the tree is printed; 1 prints only the root
func WithMaxDepth(depth int) Option {
	return func(opts *WalkOptions) {
		if depth >= 0 {
			opts.MaxDepth = depth
		}
	}
}

// WithHidden includes entries whose name starts with '.'
func WithHidden(show bool) Option {
	return func(opts *WalkOptions) {
		opts.ShowHidden = show
	}
}

// WithDirsOnly suppresses non-directory entries
func WithDirsOnly(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.DirsOnly = enabled
	}
}

// WithSort orders siblings by name; when disabled the listing order of the
// filesystem is kept
func WithSort(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.Sort = enabled
	}
}

// WithASCII draws connectors with ASCII characters only
func WithASCII(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.ASCII = enabled
	}
}
