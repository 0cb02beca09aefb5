package walker

import (
	"errors"

	"github.com/bethropolis/dir-tree/internal/ignore"
)

var (
	// ErrRootNotFound is returned when the walk root does not exist
	ErrRootNotFound = errors.New("root directory not found")
	// ErrRootNotDirectory is returned when the walk root is not a directory
	ErrRootNotDirectory = errors.New("root path is not a directory")
)

const (
	connectorMiddle = "├── "
	connectorLast   = "└── "
	prefixOpen      = "│   "
	prefixClosed    = "    "
	dirMarker       = "/"
)

// Excluder decides on bare entry names. *ignore.Matcher implements it.
type Excluder interface {
	Excluded(name string, isDir bool) (ignore.Hit, bool)
}

type keepAll struct{}

func (keepAll) Excluded(string, bool) (ignore.Hit, bool) { return ignore.Hit{}, false }

// PathFilter decides on absolute entry paths. *ignore.RepoFilter implements it.
type PathFilter interface {
	Excluded(path string, isDir bool) (ignore.Hit, bool)
}

// Result is the outcome of a Walk
type Result struct {
	// Lines holds the header followed by one line per visible entry, in
	// emission order.
	Lines   []string
	Dirs    int
	Files   int
	Skipped []SkippedItem
}

// SkippedReason clarifies why an entry is missing from the tree.
type SkippedReason string

const (
	ReasonExcludedRule      SkippedReason = "Excluded (Name Rule)"
	ReasonExcludedGitIgnore SkippedReason = "Excluded (Gitignore Rule)"
	ReasonSkippedPermError  SkippedReason = "Skipped (Permission Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string
	Reason SkippedReason
	Rule   string
	IsDir  bool
}

// SkippedTracker collects skipped items. It is owned by a single walk.
type SkippedTracker struct {
	enabled bool
	items   []SkippedItem
}

// NewSkippedTracker creates a tracker; a disabled tracker records nothing
func NewSkippedTracker(enabled bool) *SkippedTracker {
	return &SkippedTracker{enabled: enabled}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, rule string, isDir bool) {
	if !st.enabled {
		return
	}
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, Rule: rule, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	return st.items
}

// entry is one child of a listed directory. A symlink to a directory has
// isDir set but is never descended.
type entry struct {
	name    string
	path    string
	isDir   bool
	symlink bool
}
