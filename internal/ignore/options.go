package ignore

// Option functions for configuration
type Option func(*Matcher)

// WithDirectoryGlobs appends glob patterns to the directory rules
func WithDirectoryGlobs(globs ...string) Option {
	return func(m *Matcher) {
		m.extraDirGlobs = append(m.extraDirGlobs, nonEmpty(globs)...)
	}
}

// WithFileGlobs appends glob patterns to the file rules
func WithFileGlobs(globs ...string) Option {
	return func(m *Matcher) {
		m.extraFileGlobs = append(m.extraFileGlobs, nonEmpty(globs)...)
	}
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
