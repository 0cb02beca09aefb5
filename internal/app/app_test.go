package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/dir-tree/internal/config"
	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProject(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "project")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules", "pkg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "a.py"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules", "pkg", "index.js"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), nil, 0o644))
	return root
}

func run(t *testing.T, cfg *config.Config) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a, err := New(cfg, &stdout, &stderr)
	require.NoError(t, err)
	err = a.Run()
	return stdout.String(), stderr.String(), err
}

func TestRunWritesTreeAndConfirms(t *testing.T) {
	root := newProject(t)
	out := filepath.Join(t.TempDir(), "reports", "tree.txt")

	cfg := config.New()
	cfg.RootDir = root
	cfg.OutputFile = out
	cfg.Quiet = true

	stdout, _, err := run(t, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "project/\n├── src/\n│   └── a.py\n└── README.md", string(data))
	assert.Equal(t, "Tree written to: "+out+"\n", stdout)
}

func TestRunToStdout(t *testing.T) {
	cfg := config.New()
	cfg.RootDir = newProject(t)
	cfg.ToStdout = true
	cfg.LogLevel = "none"

	stdout, stderr, err := run(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, "project/\n├── src/\n│   └── a.py\n└── README.md\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunExtraGlobsAndSkippedReport(t *testing.T) {
	cfg := config.New()
	cfg.RootDir = newProject(t)
	cfg.ToStdout = true
	cfg.ExcludeFileGlobs = []string{"*.md"}
	cfg.ShowSkipped = true

	stdout, stderr, err := run(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, "project/\n└── src/\n    └── a.py\n", stdout)
	assert.Contains(t, stderr, "Skipped DIR : node_modules [Excluded (Name Rule)]")
	assert.Contains(t, stderr, "Skipped FILE: README.md [Excluded (Name Rule)] glob \"*.md\"")
}

func TestRunMissingRootFails(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.txt")
	cfg := config.New()
	cfg.RootDir = filepath.Join(t.TempDir(), "missing")
	cfg.OutputFile = out

	_, _, err := run(t, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, walker.ErrRootNotFound))
	assert.NoFileExists(t, out)
}

func TestRunInvalidRegexWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.txt")
	cfg := config.New()
	cfg.RootDir = newProject(t)
	cfg.OutputFile = out
	cfg.Rules.Directories.Patterns = []string{"[unterminated"}

	_, _, err := run(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ignore.ErrInvalidPattern)
	assert.NoFileExists(t, out)
}

func TestNewRejectsUnknownLogLevel(t *testing.T) {
	cfg := config.New()
	cfg.LogLevel = "chatty"
	_, err := New(cfg, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)
}
