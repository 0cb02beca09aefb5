package ignore

// IsDirectoryExcluded reports whether a directory called name is hidden
// from the tree.
func (m *Matcher) IsDirectoryExcluded(name string) bool {
	_, excluded := m.ExplainDirectory(name)
	return excluded
}

// IsFileExcluded reports whether a file called name is hidden from the tree.
func (m *Matcher) IsFileExcluded(name string) bool {
	_, excluded := m.ExplainFile(name)
	return excluded
}

// ExplainDirectory returns the first directory rule matching name:
// exact names first, then regexes, then globs, each in declared order.
func (m *Matcher) ExplainDirectory(name string) (Hit, bool) {
	if m == nil {
		return Hit{}, false
	}
	return m.dirs.Match(name)
}

// ExplainFile is ExplainDirectory for file names.
func (m *Matcher) ExplainFile(name string) (Hit, bool) {
	if m == nil {
		return Hit{}, false
	}
	return m.files.Match(name)
}

// Excluded dispatches on the entry kind
func (m *Matcher) Excluded(name string, isDir bool) (Hit, bool) {
	if isDir {
		return m.ExplainDirectory(name)
	}
	return m.ExplainFile(name)
}
