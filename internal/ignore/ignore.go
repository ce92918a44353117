// Package ignore provides file/directory pattern matching for exclusion
//
// This package implements a deliberately small subset of .gitignore: one
// pattern per line, '#' comments, blank lines skipped, an optional leading
// '/' (accepted, not distinguished) and an optional trailing '/' restricting
// the rule to directories. Patterns are matched against the entry's base
// name only, using '*' and '?' wildcards. There is no negation and no '**'.
// It uses the functional options pattern for configuration.
package ignore

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/bethropolis/dir-tree/internal/failure"
	"github.com/bethropolis/dir-tree/internal/utils"
	"github.com/spf13/afero"
)

// DefaultFileName is the ignore file looked up at the walk root
const DefaultFileName = ".gitignore"

// New creates a RuleSet holding only the custom rules given through options
func New(opts ...Option) *RuleSet {
	return Parse("", opts...)
}

// Parse builds a RuleSet from the textual content of an ignore file.
// Custom rules passed via WithCustomRules are appended after the file's rules.
func Parse(content string, opts ...Option) *RuleSet {
	rs := &RuleSet{
		logger: &utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(rs)
	}

	for _, line := range splitRules(content) {
		rs.rules = append(rs.rules, parseRule(line))
	}
	for _, pattern := range rs.customPatterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}
		rs.rules = append(rs.rules, parseRule(pattern))
	}

	rs.logger.Debug("ignore.Parse: Loaded %d rule(s)", len(rs.rules))
	return rs
}

// Load reads the ignore file at path from fsys.
//
// A missing file is not an error: Load returns (nil, nil) and the caller
// proceeds without filtering. Any other read problem is reported as a
// failure.KindReadIgnoreFile error.
func Load(fsys afero.Fs, path string, opts ...Option) (*RuleSet, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, failure.New(failure.KindReadIgnoreFile, path, err)
	}

	rs := Parse(string(data), opts...)
	rs.source = path
	rs.logger.Debug("ignore.Load: Using ignore file %q", path)
	return rs, nil
}

// Rules returns the raw rule lines in the order they were loaded
func (rs *RuleSet) Rules() []string {
	if rs == nil {
		return nil
	}
	out := make([]string, len(rs.rules))
	for i, r := range rs.rules {
		out[i] = r.raw
	}
	return out
}

// Source returns the path of the ignore file, or "" if none was read
func (rs *RuleSet) Source() string {
	if rs == nil {
		return ""
	}
	return rs.source
}

// splitRules returns the trimmed, non-blank, non-comment lines of content
func splitRules(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func parseRule(raw string) rule {
	r := rule{raw: raw, pattern: raw}

	if strings.HasPrefix(r.pattern, "/") {
		r.anchored = true
		r.pattern = r.pattern[1:]
	}
	if strings.HasSuffix(r.pattern, "/") {
		r.dirOnly = true
		r.pattern = r.pattern[:len(r.pattern)-1]
	}

	return r
}
