package ignore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bethropolis/dir-tree/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// RepoFilter excludes entries ignored by the .gitignore files found under
// a root directory. Unlike Matcher it works on full paths.
type RepoFilter struct {
	rootDir string
	repo    gitignore.GitIgnore
	logger  utils.Logger
}

// NewRepoFilter loads the .gitignore files beneath rootDir lazily, as the
// walk reaches each directory.
func NewRepoFilter(rootDir string, logger utils.Logger) (*RepoFilter, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}
	logger = utils.OrNoop(logger)

	repo, repoErr := gitignore.NewRepository(absRootDir)
	if repoErr != nil {
		logger.Warn("ignore: Error loading repository ignores from '%s': %v", absRootDir, repoErr)
		if repo != nil {
			return nil, fmt.Errorf("ignore: failed to load repository ignores: %w", repoErr)
		}
		logger.Warn("ignore: No .gitignore rules loaded for '%s'. Continuing without them.", absRootDir)
		repo = gitignore.New(strings.NewReader(""), absRootDir, nil)
	}

	return &RepoFilter{rootDir: absRootDir, repo: repo, logger: logger}, nil
}

// Excluded reports whether the absolute path is ignored by a .gitignore
// rule. Negated rules that re-include the path win.
func (f *RepoFilter) Excluded(path string, isDir bool) (hit Hit, excluded bool) {
	if f == nil || f.repo == nil || path == f.rootDir {
		return Hit{}, false
	}

	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("PANIC recovered in gitignore library for path %q: %v", path, r)
			hit, excluded = Hit{}, false
		}
	}()

	match := f.repo.Absolute(path, isDir)
	if match == nil || !match.Ignore() {
		return Hit{}, false
	}
	return Hit{Kind: KindGitIgnore, Pattern: match.String()}, true
}
