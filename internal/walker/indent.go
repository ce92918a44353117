package walker

import "strings"

// Glyphs is the set of connector strings used to draw the tree
type Glyphs struct {
	Space    string // under a last sibling
	Vertical string // under a sibling that has more siblings after it
	Last     string
	Continue string
}

var (
	UnicodeGlyphs = Glyphs{
		Space:    "    ",
		Vertical: "│   ",
		Last:     "└── ",
		Continue: "├── ",
	}
	ASCIIGlyphs = Glyphs{
		Space:    "    ",
		Vertical: "|   ",
		Last:     "`-- ",
		Continue: "|-- ",
	}
)

// GlyphsFor returns the connector set for the requested character set
func GlyphsFor(ascii bool) Glyphs {
	if ascii {
		return ASCIIGlyphs
	}
	return UnicodeGlyphs
}

// Indent is the per-level connector stack of a walk.
//
// The entry being printed owns the top of the stack (a Last or Continue
// connector). Once it has been printed and the walk descends into it,
// Descend turns that connector into the continuation drawn in front of its
// children. Every Push must be matched by a Pop before the caller returns.
type Indent struct {
	glyphs Glyphs
	stack  []string
	last   bool
}

// NewIndent returns an empty stack. The root counts as a last sibling.
func NewIndent(glyphs Glyphs) *Indent {
	return &Indent{glyphs: glyphs, last: true}
}

// Push adds the connector for the next child
func (in *Indent) Push(last bool) {
	in.last = last
	if last {
		in.stack = append(in.stack, in.glyphs.Last)
	} else {
		in.stack = append(in.stack, in.glyphs.Continue)
	}
}

// Pop removes the connector added by the matching Push
func (in *Indent) Pop() {
	if len(in.stack) > 0 {
		in.stack = in.stack[:len(in.stack)-1]
	}
}

// Descend replaces the current entry's connector with the continuation its
// children are drawn under
func (in *Indent) Descend() {
	if len(in.stack) == 0 {
		return
	}
	if in.last {
		in.stack[len(in.stack)-1] = in.glyphs.Space
	} else {
		in.stack[len(in.stack)-1] = in.glyphs.Vertical
	}
}

// Len returns the number of levels on the stack
func (in *Indent) Len() int {
	return len(in.stack)
}

func (in *Indent) String() string {
	return strings.Join(in.stack, "")
}
