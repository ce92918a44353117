// Package walker handles directory traversal and tree rendering
package walker

import (
	"fmt"
	"time"

	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/printer"
	"github.com/spf13/afero"
)

// Walk prints the tree rooted at rootDir through p.
//
// The walk is depth-first and pre-order: every entry is printed before its
// children. Listings are read fully, filtered with rules and the options,
// and optionally sorted before descending. The first failure aborts the
// walk; lines printed before it stay printed. rules may be nil.
//
// With a MaxDepth limit, directories at the last printed level are not
// opened at all: their listing is never read, so an unreadable directory
// there does not fail the walk.
func Walk(rootDir string, rules *ignore.RuleSet, p *printer.Printer, opts ...Option) (Result, error) {
	startTime := time.Now()

	// Apply options
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	w := &walker{
		fsys:    options.Fs,
		rules:   rules,
		printer: p,
		opts:    options,
		indent:  NewIndent(GlyphsFor(options.ASCII)),
		depth:   1,
		tracker: NewSkippedTracker(16),
	}

	options.Logger.Debug("walker.Walk started. Root: %s, MaxDepth: %d, Sort: %v",
		rootDir, options.MaxDepth, options.Sort)

	err := w.visit(rootDir, printer.DisplayName(rootDir))

	w.result.Skipped = w.tracker.Items()
	options.Logger.Debug("walker: Printed %d dirs and %d files in %s",
		w.result.Dirs, w.result.Files, time.Since(startTime))

	return w.result, err
}

// walker is the state of one walk. It is owned by a single call chain.
type walker struct {
	fsys    afero.Fs
	rules   *ignore.RuleSet
	printer *printer.Printer
	opts    WalkOptions

	indent  *Indent
	depth   int
	tracker *SkippedTracker
	result  Result
}

func (w *walker) visit(path, name string) error {
	dir := isDir(w.fsys, path)

	if err := w.printLine(path, name); err != nil {
		return err
	}

	if w.depth > 1 {
		if dir {
			w.result.Dirs++
		} else {
			w.result.Files++
		}
	}

	if !dir {
		return nil
	}

	// Children would sit past the limit; don't even list them
	if w.opts.MaxDepth > 0 && w.depth >= w.opts.MaxDepth {
		w.opts.Logger.Debug("walker: Depth limit reached at %q", path)
		return nil
	}

	w.depth++
	defer func() { w.depth-- }()

	w.indent.Descend()

	entries, err := listEntries(w.fsys, path)
	if err != nil {
		return err
	}

	visible, err := filterEntries(w.fsys, entries, w.opts.filterConfig(), w.rules, w.tracker)
	if err != nil {
		return err
	}

	w.opts.Logger.Debug("walker: %q has %d entries, %d visible", path, len(entries), len(visible))

	for i, e := range visible {
		if err := w.visitChild(e, i == len(visible)-1); err != nil {
			return err
		}
	}

	return nil
}

// visitChild draws e under its parent. The connector pushed here is popped
// on every return path, errors included.
func (w *walker) visitChild(e Entry, last bool) error {
	w.indent.Push(last)
	defer w.indent.Pop()

	return w.visit(e.Path, e.Name)
}

func (w *walker) printLine(path, name string) error {
	style := printer.StylePlain
	if w.printer.Colors() {
		s, err := Classify(w.fsys, path)
		if err != nil {
			return err
		}
		style = s
	}

	if err := w.printer.Line(w.indent.String(), name, style); err != nil {
		return fmt.Errorf("walker: failed to write line for %q: %w", path, err)
	}
	return nil
}
