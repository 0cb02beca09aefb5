package ignore

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/danwakefield/fnmatch"
)

// predicate is one rule strategy. RuleSet evaluates its predicates in
// order and stops at the first hit.
type predicate func(name string) (Hit, bool)

// NewRuleSet compiles src. Regex patterns are anchored at the start of the
// name only, so a pattern must end in "$" to require a full match.
func NewRuleSet(src RuleSource) (RuleSet, error) {
	rs := RuleSet{
		exactNames: make(map[string]struct{}, len(src.Names)),
		globs:      append([]string(nil), src.Globs...),
	}
	for _, name := range src.Names {
		rs.exactNames[name] = struct{}{}
	}
	for _, pattern := range src.Patterns {
		re, err := regexp.Compile("^(?:" + pattern + ")")
		if err != nil {
			return RuleSet{}, fmt.Errorf("ignore: %w %q: %v", ErrInvalidPattern, pattern, err)
		}
		rs.regexps = append(rs.regexps, re)
		rs.patterns = append(rs.patterns, pattern)
	}
	rs.predicates = rs.compose()
	return rs, nil
}

// MustRuleSet is like NewRuleSet but panics on an invalid pattern.
// Only meant for the built-in defaults.
func MustRuleSet(src RuleSource) RuleSet {
	rs, err := NewRuleSet(src)
	if err != nil {
		panic(err)
	}
	return rs
}

// WithGlobs returns a copy of rs with extra glob patterns appended after
// the existing ones. rs itself is left untouched.
func (rs RuleSet) WithGlobs(globs ...string) RuleSet {
	if len(globs) == 0 {
		return rs
	}
	out := RuleSet{
		exactNames: rs.exactNames,
		regexps:    rs.regexps,
		patterns:   rs.patterns,
		globs:      concat(rs.globs, globs),
	}
	out.predicates = out.compose()
	return out
}

// Match reports the first rule in rs that matches name
func (rs RuleSet) Match(name string) (Hit, bool) {
	for _, p := range rs.predicates {
		if hit, ok := p(name); ok {
			return hit, true
		}
	}
	return Hit{}, false
}

// Len is the total number of rules in the set
func (rs RuleSet) Len() int {
	return len(rs.exactNames) + len(rs.regexps) + len(rs.globs)
}

func (rs RuleSet) compose() []predicate {
	preds := make([]predicate, 0, 1+len(rs.regexps)+len(rs.globs))
	if len(rs.exactNames) > 0 {
		preds = append(preds, exactName(rs.exactNames))
	}
	for i, re := range rs.regexps {
		preds = append(preds, regexRule(re, rs.patterns[i]))
	}
	for _, g := range rs.globs {
		preds = append(preds, globRule(g))
	}
	return preds
}

func exactName(names map[string]struct{}) predicate {
	return func(name string) (Hit, bool) {
		if _, ok := names[name]; ok {
			return Hit{Kind: KindExact, Pattern: name}, true
		}
		return Hit{}, false
	}
}

func regexRule(re *regexp.Regexp, pattern string) predicate {
	return func(name string) (Hit, bool) {
		if re.MatchString(name) {
			return Hit{Kind: KindRegex, Pattern: pattern}, true
		}
		return Hit{}, false
	}
}

// globRule matches shell-style patterns against a bare name. Backslash is
// a literal character and a leading dot needs no special treatment.
func globRule(glob string) predicate {
	pattern := fnmatchPattern(glob)
	return func(name string) (Hit, bool) {
		if fnmatch.Match(pattern, name, 0) {
			return Hit{Kind: KindGlob, Pattern: glob}, true
		}
		return Hit{}, false
	}
}

// fnmatchPattern rewrites glob into an escaped fnmatch pattern. A "[" with
// no closing "]" is literal, a "]" right after "[" or "[!" is a class
// member, "!" is the only negation marker, and backslash never escapes.
func fnmatchPattern(glob string) string {
	pat := []rune(glob)
	var b strings.Builder
	for i := 0; i < len(pat); {
		c := pat[i]
		i++
		switch c {
		case '*', '?':
			b.WriteRune(c)
		case '[':
			j := i
			if j < len(pat) && pat[j] == '!' {
				j++
			}
			if j < len(pat) && pat[j] == ']' {
				j++
			}
			for j < len(pat) && pat[j] != ']' {
				j++
			}
			if j >= len(pat) {
				b.WriteString(`\[`)
				continue
			}
			class := pat[i:j]
			i = j + 1
			b.WriteByte('[')
			if len(class) > 0 && class[0] == '!' {
				b.WriteByte('!')
				class = class[1:]
			}
			for _, r := range class {
				writeClassRune(&b, r)
			}
			b.WriteByte(']')
		default:
			if c == '\\' {
				b.WriteByte('\\')
			}
			b.WriteRune(c)
		}
	}
	return b.String()
}

func writeClassRune(b *strings.Builder, r rune) {
	switch r {
	case '\\', ']', '^', '!':
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}
