package ignore

// New creates a Matcher from compiled directory and file rule sets.
// Options may append call-time glob patterns; the result is immutable.
func New(dirs, files RuleSet, opts ...Option) *Matcher {
	matcher := &Matcher{}

	for _, opt := range opts {
		opt(matcher)
	}

	matcher.dirs = dirs.WithGlobs(matcher.extraDirGlobs...)
	matcher.files = files.WithGlobs(matcher.extraFileGlobs...)
	return matcher
}

// Directories returns the rule set applied to directory names
func (m *Matcher) Directories() RuleSet {
	return m.dirs
}

// Files returns the rule set applied to file names
func (m *Matcher) Files() RuleSet {
	return m.files
}
