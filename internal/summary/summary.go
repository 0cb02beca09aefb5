// Package summary handles display of walk results and skipped entries
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/dir-tree/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults logs how much of the tree was rendered
func DisplayResults(
	logger Logger,
	result *walker.Result,
	duration time.Duration,
	quiet bool,
) {
	if quiet || result == nil {
		return
	}
	logger.Info("Rendered %d directories and %d files.", result.Dirs, result.Files)
	logger.Info("Walk complete in %v.", duration.Round(time.Millisecond))
}

// DisplaySkippedItems formats and prints information about skipped items
func DisplaySkippedItems(
	logger Logger,
	skippedItems []walker.SkippedItem,
	output io.Writer,
	quiet bool,
) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		infoLog("No items were skipped.")
		infoLog("--- End Skipped Items ---")
		return
	}

	items := append([]walker.SkippedItem(nil), skippedItems...)
	sort.Slice(items, func(i, j int) bool {
		return items[i].Path < items[j].Path
	})
	for _, item := range items {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		line := fmt.Sprintf("Skipped %s: %-.*s [%s]", typeStr, 50, item.Path, item.Reason)
		if item.Rule != "" {
			line += " " + item.Rule
		}
		fmt.Fprintln(output, line)
	}
	infoLog("--- End Skipped Items ---")
}
