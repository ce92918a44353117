// Package ignore provides file/directory pattern matching for exclusion
package ignore

import (
	"github.com/bethropolis/dir-tree/internal/utils"
)

// RuleSet holds the exclusion rules of one ignore file plus any custom
// patterns. It is built once and is read-only afterwards.
type RuleSet struct {
	// Parsed rules in file order, custom patterns last
	rules []rule

	source         string
	customPatterns []string
	logger         utils.Logger
}

// rule is a single ignore line. The raw text is kept verbatim; pattern is the
// text left after the '/' modifiers are stripped.
type rule struct {
	raw      string
	pattern  string
	anchored bool // leading '/'; accepted but matched like any other rule
	dirOnly  bool // trailing '/'
}
