package app

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/bethropolis/dir-tree/internal/config"
	"github.com/bethropolis/dir-tree/internal/logger"
	"github.com/bethropolis/dir-tree/internal/printer"
	"github.com/bethropolis/dir-tree/internal/setup"
	"github.com/bethropolis/dir-tree/internal/summary"
	"github.com/bethropolis/dir-tree/internal/walker"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a new App instance
func New(cfg *config.Config, stdout, stderr io.Writer) (*App, error) {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	level := logger.LevelInfo
	switch {
	case cfg.LogLevel != "":
		parsed, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		level = parsed
	case cfg.Verbose:
		level = logger.LevelDebug
	case cfg.Quiet:
		level = logger.LevelWarn
	}

	return &App{
		cfg:    cfg,
		log:    logger.New(stderr, level, cfg.UseColors),
		Stdout: stdout,
		Stderr: stderr,
	}, nil
}

// Run renders the tree for the configured root and writes it out.
// Nothing is written when the rules or the root are invalid.
func (a *App) Run() error {
	startTime := time.Now()

	// Helper for info messages, suppressed by quiet flag
	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	a.log.Debug("Directory: %s", a.cfg.RootDir)
	a.log.Debug("Output: %s (stdout: %v)", a.cfg.OutputFile, a.cfg.ToStdout)
	a.log.Debug("Gitignore: %v, rules file: %q", a.cfg.GitIgnore, a.cfg.RulesFile)

	absRootDir, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		return fmt.Errorf("invalid root directory path '%s': %w", a.cfg.RootDir, err)
	}

	matcher, walkOptions, err := setup.ConfigureWalker(setup.WalkerConfig{
		RootDir:     absRootDir,
		Rules:       a.cfg.MatcherConfig(),
		GitIgnore:   a.cfg.GitIgnore,
		ShowSkipped: a.cfg.ShowSkipped,
		Logger:      a.log,
	}, infoLog)
	if err != nil {
		return err
	}

	infoLog("Scanning directory: %s", absRootDir)
	result, err := walker.Walk(absRootDir, matcher, walkOptions...)
	if err != nil {
		return err
	}

	p := printer.New().WithOutput(a.Stdout).WithColors(a.cfg.UseColors)
	if a.cfg.ToStdout {
		if err := p.PrintTree(result.Lines); err != nil {
			return fmt.Errorf("failed to write tree to stdout: %w", err)
		}
	} else {
		if err := printer.WriteFile(a.cfg.OutputFile, result.Lines); err != nil {
			return err
		}
		p.Confirm(a.cfg.OutputFile)
	}

	summary.DisplayResults(a.log, result, time.Since(startTime), a.cfg.Quiet)
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, result.Skipped, a.Stderr, a.cfg.Quiet)
	}
	return nil
}
