// Package walker handles directory traversal and tree rendering
package walker

// Entry is one directory entry as listed by its parent.
//
// The file type is resolved lazily by the filter. For hidden entries it is
// only read to report them as skipped. It does not follow symlinks.
type Entry struct {
	Path string
	Name string

	IsDir     bool
	IsSymlink bool
	typeKnown bool
}

// SkippedReason clarifies why an entry was not shown.
type SkippedReason string

const (
	ReasonHidden   SkippedReason = "Skipped (Hidden)"
	ReasonDirsOnly SkippedReason = "Skipped (Not a Directory)"
	ReasonIgnored  SkippedReason = "Skipped (Ignore Rule)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker is a struct to track skipped items.
// A walk is single-threaded, so it needs no locking.
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker. A nil tracker drops it.
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	if st == nil {
		return
	}
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	if st == nil {
		return nil
	}
	return st.items
}

// Result summarises a finished walk. The root is not counted.
type Result struct {
	Dirs    int
	Files   int
	Skipped []SkippedItem
}
