package ignore

import "github.com/bethropolis/dir-tree/internal/utils"

// Option functions for configuration
type Option func(*RuleSet)

// WithCustomRules appends extra patterns after the ignore-file rules.
// They use the same syntax as ignore-file lines.
func WithCustomRules(patterns []string) Option {
	return func(rs *RuleSet) {
		rs.customPatterns = append(rs.customPatterns, patterns...)
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(rs *RuleSet) {
		if logger != nil {
			rs.logger = logger
		}
	}
}
