// Package setup provides initialization and configuration functions
package setup

import (
	"fmt"

	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/utils"
	"github.com/bethropolis/dir-tree/internal/walker"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// WalkerConfig holds all parameters needed to configure a tree walk
type WalkerConfig struct {
	RootDir     string
	Rules       ignore.Config
	GitIgnore   bool
	ShowSkipped bool
	Logger      utils.Logger
}

// ConfigureWalker compiles the exclusion rules and builds the walker
// options. A malformed regex rule fails here, before anything is walked.
func ConfigureWalker(cfg WalkerConfig, infoLog InfoLogger) (
	*ignore.Matcher,
	[]walker.Option,
	error,
) {
	logger := utils.OrNoop(cfg.Logger)

	matcher, err := ignore.NewFromConfig(cfg.Rules)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing exclusion rules: %w", err)
	}
	logger.Debug("Directory rules: %d, file rules: %d",
		matcher.Directories().Len(), matcher.Files().Len())

	if len(cfg.Rules.DirectoryGlobs) > 0 {
		infoLog("Extra directory globs: %v", cfg.Rules.DirectoryGlobs)
	}
	if len(cfg.Rules.FileGlobs) > 0 {
		infoLog("Extra file globs: %v", cfg.Rules.FileGlobs)
	}

	walkOptions := []walker.Option{
		walker.WithLogger(logger),
		walker.WithSkipTracking(cfg.ShowSkipped),
	}

	if cfg.GitIgnore {
		filter, err := ignore.NewRepoFilter(cfg.RootDir, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing gitignore rules: %w", err)
		}
		infoLog("Honouring .gitignore files under %s", cfg.RootDir)
		walkOptions = append(walkOptions, walker.WithPathFilter(filter))
	}

	return matcher, walkOptions, nil
}
