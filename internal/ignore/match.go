package ignore

import "unicode/utf8"

// Match reports whether text matches the shell-style wildcard pattern.
//
// '?' matches exactly one character and '*' matches any run of characters,
// including none. Everything else matches literally and case-sensitively.
// There is no escaping and there are no character classes. An empty pattern
// matches only empty text.
//
// A character is one UTF-8 sequence, or a single byte where the input is not
// valid UTF-8. Characters compare by their bytes, so distinct invalid bytes
// never match each other.
//
// Matching is linear: on a mismatch after a '*' the star is made to swallow
// one more character and the scan resumes right after it.
func Match(text, pattern string) bool {
	if pattern == "" {
		return text == ""
	}

	t := chars(text)
	p := chars(pattern)

	i, j := 0, 0
	star := -1 // index of the last '*' seen in p
	mark := 0  // position in t the last '*' has consumed up to

	for i < len(t) {
		switch {
		case j < len(p) && p[j] == "*":
			star = j
			mark = i
			j++
		case j < len(p) && (p[j] == "?" || p[j] == t[i]):
			i++
			j++
		case star >= 0:
			j = star + 1
			mark++
			i = mark
		default:
			return false
		}
	}

	// Trailing stars match the empty remainder
	for j < len(p) && p[j] == "*" {
		j++
	}

	return j == len(p)
}

// chars splits s into characters without decoding them to runes, which
// would turn every invalid byte into the same replacement character.
func chars(s string) []string {
	out := make([]string, 0, len(s))
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		out = append(out, s[:size])
		s = s[size:]
	}
	return out
}
