package ignore

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatcherExcludesEveryDefaultDirectoryName(t *testing.T) {
	m := NewDefaultMatcher()
	for _, name := range DefaultDirectoryRules().Names {
		assert.True(t, m.IsDirectoryExcluded(name), "directory %q should be excluded", name)
	}
}

func TestDefaultMatcherExcludesEveryDefaultFileName(t *testing.T) {
	m := NewDefaultMatcher()
	for _, name := range DefaultFileRules().Names {
		assert.True(t, m.IsFileExcluded(name), "file %q should be excluded", name)
	}
}

func TestDefaultMatcherDecisions(t *testing.T) {
	m := NewDefaultMatcher()

	tests := []struct {
		name     string
		isDir    bool
		excluded bool
	}{
		{"src", true, false},
		{"internal", true, false},
		{"docs", true, false},
		{"Build", true, false},
		{"mypkg.egg-info", true, true},
		{"egg-info", true, false},
		{"mypkg.egg-info.bak", true, false},
		{"report.pyc", false, true},
		{"notes.txt", false, true},
		{".coverage.worker1", false, true},
		{"app.js.map", false, true},
		{"prod.local.env", false, true},
		{"a.py", false, false},
		{"README.md", false, false},
		{"main.go", false, false},
		{"requirements.txt", false, true},
		{"node_modules", false, false},
		{"package-lock.json", true, false},
		{"collect_text_and_tree.py", true, false},
		{"collect_text_and_tree.py", false, false},
	}

	for _, tt := range tests {
		_, got := m.Excluded(tt.name, tt.isDir)
		assert.Equal(t, tt.excluded, got, "name=%q isDir=%v", tt.name, tt.isDir)
	}
}

func TestEvaluationOrderReportsFirstHit(t *testing.T) {
	rs, err := NewRuleSet(RuleSource{
		Names:    []string{"cache"},
		Patterns: []string{`ca.*`, `c.*`},
		Globs:    []string{"c*"},
	})
	require.NoError(t, err)

	hit, ok := rs.Match("cache")
	require.True(t, ok)
	assert.Equal(t, Hit{Kind: KindExact, Pattern: "cache"}, hit)

	hit, ok = rs.Match("cards")
	require.True(t, ok)
	assert.Equal(t, Hit{Kind: KindRegex, Pattern: `ca.*`}, hit)

	hit, ok = rs.Match("cobalt")
	require.True(t, ok)
	assert.Equal(t, Hit{Kind: KindRegex, Pattern: `c.*`}, hit)

	_, ok = rs.Match("dist")
	assert.False(t, ok)
}

func TestRegexIsAnchoredAtStartOnly(t *testing.T) {
	rs, err := NewRuleSet(RuleSource{Patterns: []string{`tmp`}})
	require.NoError(t, err)

	assert.True(t, mustMatch(rs, "tmp"))
	assert.True(t, mustMatch(rs, "tmp-old"))
	assert.False(t, mustMatch(rs, "old-tmp"))
}

func TestGlobSemantics(t *testing.T) {
	rs, err := NewRuleSet(RuleSource{Globs: []string{"*.log", "data?", "[ab]*.csv", `odd\*`}})
	require.NoError(t, err)

	assert.True(t, mustMatch(rs, "server.log"))
	assert.True(t, mustMatch(rs, ".log"))
	assert.False(t, mustMatch(rs, "server.LOG"))
	assert.True(t, mustMatch(rs, "data1"))
	assert.False(t, mustMatch(rs, "data12"))
	assert.True(t, mustMatch(rs, "alpha.csv"))
	assert.False(t, mustMatch(rs, "gamma.csv"))
	assert.True(t, mustMatch(rs, `odd\thing`))
}

func TestGlobBracketEdgeCases(t *testing.T) {
	tests := []struct {
		glob  string
		name  string
		match bool
	}{
		{"[^a]*", "bcd", false},
		{"[^a]*", "^cd", true},
		{"[^a]*", "acd", true},
		{"[!a]*", "bcd", true},
		{"[!a]*", "acd", false},
		{"a[", "a[", true},
		{"a[", "ab", false},
		{"[]]x", "]x", true},
		{"[]]x", "ax", false},
		{"[!]]x", "ax", true},
		{"[!]]x", "]x", false},
		{"[a-c]?", "b1", true},
		{"[a-c]?", "d1", false},
		{"[a-]", "-", true},
		{`[\]`, `\`, true},
		{"[]", "[]", true},
	}

	for _, tt := range tests {
		rs := MustRuleSet(RuleSource{Globs: []string{tt.glob}})
		assert.Equal(t, tt.match, mustMatch(rs, tt.name), "glob=%q name=%q", tt.glob, tt.name)
	}
}

func TestFileRulesSupportRegex(t *testing.T) {
	m, err := NewFromConfig(Config{
		Files: RuleSource{Patterns: []string{`.*\.generated\.go$`}},
	})
	require.NoError(t, err)

	assert.True(t, m.IsFileExcluded("api.generated.go"))
	assert.False(t, m.IsFileExcluded("api.go"))
	assert.False(t, m.IsDirectoryExcluded("api.generated.go"))
}

func TestInvalidRegexIsAConstructionError(t *testing.T) {
	_, err := NewFromConfig(Config{
		Directories: RuleSource{Patterns: []string{`(unclosed`}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPattern))
	assert.Contains(t, err.Error(), "directory rules")

	_, err = NewRuleSet(RuleSource{Patterns: []string{`[z-a]`}})
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestCallTimeGlobsExtendWithoutMutating(t *testing.T) {
	base := MustRuleSet(DefaultFileRules())
	before := base.Len()

	m := New(MustRuleSet(DefaultDirectoryRules()), base,
		WithDirectoryGlobs("tmp*", ""),
		WithFileGlobs("*.bak"),
	)

	assert.True(t, m.IsDirectoryExcluded("tmp-cache"))
	assert.True(t, m.IsFileExcluded("main.go.bak"))
	assert.Equal(t, before, base.Len())
	_, ok := base.Match("main.go.bak")
	assert.False(t, ok)

	assert.False(t, NewDefaultMatcher().IsDirectoryExcluded("tmp-cache"))
}

func TestZeroValueRuleSetExcludesNothing(t *testing.T) {
	var rs RuleSet
	_, ok := rs.Match(".git")
	assert.False(t, ok)

	var m *Matcher
	assert.False(t, m.IsDirectoryExcluded(".git"))
	assert.False(t, m.IsFileExcluded("yarn.lock"))
}

func TestWithGlobsKeepsEarlierRulesFirst(t *testing.T) {
	rs := MustRuleSet(RuleSource{Names: []string{"a.c"}, Globs: []string{"*.c"}}).WithGlobs("*.d", "a*")

	assert.Equal(t, 4, rs.Len())
	hit, ok := rs.Match("a.c")
	require.True(t, ok)
	assert.Equal(t, Hit{Kind: KindExact, Pattern: "a.c"}, hit)

	hit, ok = rs.Match("a.d")
	require.True(t, ok)
	assert.Equal(t, Hit{Kind: KindGlob, Pattern: "*.d"}, hit)
}

func TestMergeAppendsAfterDefaults(t *testing.T) {
	merged := DefaultFileRules().Merge(RuleSource{Globs: []string{"*.bak"}})
	assert.Equal(t, "*.bak", merged.Globs[len(merged.Globs)-1])
	assert.Equal(t, len(DefaultFileRules().Globs)+1, len(merged.Globs))
}

func TestMatcherIsSafeForConcurrentUse(t *testing.T) {
	m := NewDefaultMatcher()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, m.IsDirectoryExcluded("node_modules"))
				assert.False(t, m.IsFileExcluded("main.go"))
			}
		}()
	}
	wg.Wait()
}

func mustMatch(rs RuleSet, name string) bool {
	_, ok := rs.Match(name)
	return ok
}
