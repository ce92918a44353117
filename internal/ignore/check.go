package ignore

import (
	"path/filepath"
)

// ShouldIgnore reports whether any rule excludes the entry at path.
// Only the base name of path is compared; a nil RuleSet ignores nothing.
func (rs *RuleSet) ShouldIgnore(path string, isDir bool) bool {
	if rs == nil || len(rs.rules) == 0 || path == "" {
		return false
	}

	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return false // Never ignore the root itself
	}

	for _, r := range rs.rules {
		if r.matches(name, isDir) {
			rs.logger.Debug("ignore.ShouldIgnore: Ignored %q (rule %q)", path, r.raw)
			return true
		}
	}

	return false
}

func (r rule) matches(name string, isDir bool) bool {
	if r.dirOnly && !isDir {
		return false
	}
	return Match(name, r.pattern)
}
