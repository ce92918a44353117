package walker

import (
	"slices"
	"strings"

	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/spf13/afero"
)

// FilterConfig selects which entries of a listing are visible
type FilterConfig struct {
	ShowHidden bool
	DirsOnly   bool
	Sort       bool
}

// Filter returns the visible subset of entries.
//
// Each entry is checked in a fixed order and dropped at the first failing
// check: the hidden-file rule, then (after resolving its file type) the
// directories-only rule, then the ignore rules. Survivors keep their listing
// order unless cfg.Sort asks for byte-wise ordering by name. A nil rules
// ignores nothing.
func Filter(fsys afero.Fs, entries []Entry, cfg FilterConfig, rules *ignore.RuleSet) ([]Entry, error) {
	return filterEntries(fsys, entries, cfg, rules, nil)
}

func filterEntries(fsys afero.Fs, entries []Entry, cfg FilterConfig, rules *ignore.RuleSet, tracker *SkippedTracker) ([]Entry, error) {
	visible := make([]Entry, 0, len(entries))

	for _, e := range entries {
		if !cfg.ShowHidden && strings.HasPrefix(e.Name, ".") {
			if tracker != nil {
				tracker.Track(e.Path, ReasonHidden, hiddenIsDir(fsys, e))
			}
			continue
		}

		if err := resolveType(fsys, &e); err != nil {
			return nil, err
		}

		if cfg.DirsOnly && !e.IsDir {
			tracker.Track(e.Path, ReasonDirsOnly, false)
			continue
		}

		if rules.ShouldIgnore(e.Path, e.IsDir) {
			tracker.Track(e.Path, ReasonIgnored, e.IsDir)
			continue
		}

		visible = append(visible, e)
	}

	if cfg.Sort {
		slices.SortStableFunc(visible, func(a, b Entry) int {
			return strings.Compare(a.Name, b.Name)
		})
	}

	return visible, nil
}

// hiddenIsDir is only used for reporting: a hidden entry whose type can't be
// read is reported as a file instead of failing the walk.
func hiddenIsDir(fsys afero.Fs, e Entry) bool {
	if err := resolveType(fsys, &e); err != nil {
		return false
	}
	return e.IsDir
}
