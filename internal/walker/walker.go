// Package walker renders a directory hierarchy as an ASCII tree
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/dir-tree/internal/utils"
)

type treeWalker struct {
	root    string
	matcher Excluder
	opts    WalkOptions
	tracker *SkippedTracker
	result  *Result
}

// Walk renders the tree below rootDir. The first line is the root's own
// name with a trailing slash; every visible descendant follows in
// depth-first order with box-drawing connectors.
//
// Symlinks are resolved only to tell directories from files. A link to a
// directory goes through the directory rules and is shown with a trailing
// slash but its target is not listed.
//
// Directories that cannot be listed for lack of permission appear with no
// children. Any other listing error aborts the walk.
func Walk(rootDir string, matcher Excluder, opts ...Option) (*Result, error) {
	startTime := time.Now()

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: failed to get absolute path for '%s': %w", rootDir, err)
	}

	info, err := os.Stat(absRootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("walker: %w: %s", ErrRootNotFound, absRootDir)
		}
		return nil, fmt.Errorf("walker: could not access root directory '%s': %w", absRootDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("walker: %w: %s", ErrRootNotDirectory, absRootDir)
	}

	if matcher == nil {
		matcher = keepAll{}
	}

	w := &treeWalker{
		root:    absRootDir,
		matcher: matcher,
		opts:    options,
		tracker: NewSkippedTracker(options.TrackSkipped),
		result:  &Result{Lines: []string{utils.DirectoryLabel(absRootDir)}},
	}

	options.Logger.Debug("walker.Walk started. Root: %s", absRootDir)
	if err := w.visit(absRootDir, ""); err != nil {
		return nil, err
	}
	w.result.Skipped = w.tracker.Items()

	options.Logger.Debug("Walker: Rendered %d lines in %s", len(w.result.Lines), time.Since(startTime))
	return w.result, nil
}

// visit emits the lines for the children of dir and recurses into the
// visible subdirectories.
func (w *treeWalker) visit(dir, prefix string) error {
	entries, ok, err := w.listDirectory(dir)
	if err != nil || !ok {
		return err
	}

	entries = w.filterEntries(entries)
	sortEntries(entries)

	for i, e := range entries {
		last := i == len(entries)-1
		connector, extension := connectorMiddle, prefixOpen
		if last {
			connector, extension = connectorLast, prefixClosed
		}

		if !e.isDir {
			w.result.Lines = append(w.result.Lines, prefix+connector+e.name)
			w.result.Files++
			continue
		}

		w.result.Lines = append(w.result.Lines, prefix+connector+e.name+dirMarker)
		w.result.Dirs++
		if e.symlink {
			continue
		}
		w.opts.Logger.Debug("Walker: Descending into directory %q", e.path)
		if err := w.visit(e.path, prefix+extension); err != nil {
			return err
		}
	}
	return nil
}
