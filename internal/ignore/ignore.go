// Package ignore provides name-based exclusion of directory entries
//
// A Matcher holds two independent rule sets, one for directories and one for
// files. Each rule set combines an exact-name set, start-anchored regular
// expressions and shell-style globs, evaluated in that order with the first
// hit winning. Matchers are built once and never change afterwards, so they
// can be shared freely.
//
// The optional RepoFilter adds .gitignore-driven exclusion on top of the
// name rules.
package ignore

import "fmt"

// NewDefaultMatcher creates a Matcher with the built-in rules
func NewDefaultMatcher() *Matcher {
	return New(MustRuleSet(DefaultDirectoryRules()), MustRuleSet(DefaultFileRules()))
}

// NewFromConfig compiles cfg into a Matcher. A malformed regex in either
// rule source is reported as an ErrInvalidPattern.
func NewFromConfig(cfg Config) (*Matcher, error) {
	dirs, err := NewRuleSet(cfg.Directories)
	if err != nil {
		return nil, fmt.Errorf("directory rules: %w", err)
	}
	files, err := NewRuleSet(cfg.Files)
	if err != nil {
		return nil, fmt.Errorf("file rules: %w", err)
	}

	return New(dirs, files,
		WithDirectoryGlobs(cfg.DirectoryGlobs...),
		WithFileGlobs(cfg.FileGlobs...),
	), nil
}

// DefaultConfig returns a Config holding the built-in rules and no extra globs
func DefaultConfig() Config {
	return Config{
		Directories: DefaultDirectoryRules(),
		Files:       DefaultFileRules(),
	}
}
