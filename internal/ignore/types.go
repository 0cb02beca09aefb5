package ignore

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern is returned when a regex rule cannot be compiled
var ErrInvalidPattern = errors.New("invalid exclusion pattern")

// RuleKind names the category of rule that excluded an entry
type RuleKind string

const (
	KindExact     RuleKind = "exact"
	KindRegex     RuleKind = "regex"
	KindGlob      RuleKind = "glob"
	KindGitIgnore RuleKind = "gitignore"
)

// Hit describes the first rule that matched a name
type Hit struct {
	Kind    RuleKind
	Pattern string
}

func (h Hit) String() string {
	return fmt.Sprintf("%s %q", h.Kind, h.Pattern)
}

// RuleSource is the uncompiled form of a RuleSet, as written in defaults
// and config files.
type RuleSource struct {
	Names    []string `yaml:"names"`
	Patterns []string `yaml:"patterns"`
	Globs    []string `yaml:"globs"`
}

// Merge returns a new source holding the rules of s followed by those of other
func (s RuleSource) Merge(other RuleSource) RuleSource {
	return RuleSource{
		Names:    concat(s.Names, other.Names),
		Patterns: concat(s.Patterns, other.Patterns),
		Globs:    concat(s.Globs, other.Globs),
	}
}

// RuleSet is a compiled, immutable set of exclusion rules for one entry kind.
// The zero value excludes nothing.
type RuleSet struct {
	exactNames map[string]struct{}
	regexps    []*regexp.Regexp
	patterns   []string
	globs      []string
	predicates []predicate
}

// Matcher applies one RuleSet to directory names and another to file names
type Matcher struct {
	dirs  RuleSet
	files RuleSet

	extraDirGlobs  []string
	extraFileGlobs []string
}

// Config holds everything needed to build a Matcher
type Config struct {
	Directories    RuleSource
	Files          RuleSource
	DirectoryGlobs []string
	FileGlobs      []string
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
