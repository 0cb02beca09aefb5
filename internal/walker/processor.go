package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// readDir lists a directory. Tests replace it to simulate listing errors.
var readDir = os.ReadDir

// listDirectory returns the direct children of dir. A permission error
// yields an empty listing and ok == false; any other error is returned.
func (w *treeWalker) listDirectory(dir string) (entries []entry, ok bool, err error) {
	dirEntries, err := readDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			w.opts.Logger.Warn("Skipping contents of %q: %v", dir, err)
			w.tracker.Track(w.rel(dir), ReasonSkippedPermError, "", true)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("walker: failed to list '%s': %w", dir, err)
	}

	entries = make([]entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		e := entry{
			name:  d.Name(),
			path:  filepath.Join(dir, d.Name()),
			isDir: d.IsDir(),
		}
		if d.Type()&fs.ModeSymlink != 0 {
			e.symlink = true
			e.isDir = w.linksToDirectory(e.path)
		}
		entries = append(entries, e)
	}
	return entries, true, nil
}

// linksToDirectory resolves a symlink once to classify it. A dangling or
// unreadable link counts as a file.
func (w *treeWalker) linksToDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		w.opts.Logger.Debug("Walker: Could not resolve symlink %q: %v", path, err)
		return false
	}
	return info.IsDir()
}

// filterEntries drops every entry excluded by the name rules or the
// optional path filter.
func (w *treeWalker) filterEntries(entries []entry) []entry {
	kept := entries[:0]
	for _, e := range entries {
		if hit, excluded := w.matcher.Excluded(e.name, e.isDir); excluded {
			w.opts.Logger.Debug("Walker: Excluded %q by %s", e.path, hit)
			w.tracker.Track(w.rel(e.path), ReasonExcludedRule, hit.String(), e.isDir)
			continue
		}
		if w.opts.PathFilter != nil {
			if hit, excluded := w.opts.PathFilter.Excluded(e.path, e.isDir); excluded {
				w.opts.Logger.Debug("Walker: Excluded %q by %s", e.path, hit)
				w.tracker.Track(w.rel(e.path), ReasonExcludedGitIgnore, hit.String(), e.isDir)
				continue
			}
		}
		kept = append(kept, e)
	}
	return kept
}

// sortEntries orders directories before files, then by case-insensitive
// name. The raw name breaks ties so the order is total.
func sortEntries(entries []entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.isDir != b.isDir {
			return a.isDir
		}
		la, lb := strings.ToLower(a.name), strings.ToLower(b.name)
		if la != lb {
			return la < lb
		}
		return a.name < b.name
	})
}

func (w *treeWalker) rel(path string) string {
	relativePath, err := filepath.Rel(w.root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(relativePath)
}
