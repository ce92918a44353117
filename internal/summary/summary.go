// Package summary handles display of walk results and statistics
package summary

import (
	"fmt"
	"io"
	"sort"

	"github.com/bethropolis/dir-tree/internal/walker"
)

// Report formats the closing line of a tree, e.g. "3 directories, 1 file"
func Report(res walker.Result) string {
	return fmt.Sprintf("%d %s, %d %s",
		res.Dirs, plural(res.Dirs, "directory", "directories"),
		res.Files, plural(res.Files, "file", "files"))
}

// DisplayResults writes the report after an empty line, like tree(1) does
func DisplayResults(output io.Writer, res walker.Result) error {
	_, err := fmt.Fprintf(output, "\n%s\n", Report(res))
	return err
}

// DisplaySkippedItems formats and prints information about skipped items
func DisplaySkippedItems(output io.Writer, skippedItems []walker.SkippedItem) {
	fmt.Fprintf(output, "--- Skipped Items (%d) ---\n", len(skippedItems))
	if len(skippedItems) == 0 {
		fmt.Fprintln(output, "No items were skipped.")
		return
	}

	// Sort for consistent output
	items := append([]walker.SkippedItem(nil), skippedItems...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Path < items[j].Path
	})
	for _, item := range items {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		fmt.Fprintf(output, "Skipped %s: %-50s [%s]\n", typeStr, item.Path, item.Reason)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
