package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Version of the dir-tree tool
const Version = "1.0.0"

// Config holds all application configuration settings
type Config struct {
	// Positional arguments
	RootDir    string
	OutputFile string

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	ShowSkipped bool

	// Output settings
	ToStdout bool

	// Filtering settings
	GitIgnore        bool
	ExcludeDirGlobs  []string
	ExcludeFileGlobs []string
	RulesFile        string
	Rules            Rules

	Version string
}

// Rules extends the built-in exclusion rules. Each section is appended
// after the defaults for that entry kind.
type Rules struct {
	Directories ignore.RuleSource `yaml:"directories"`
	Files       ignore.RuleSource `yaml:"files"`
}

// New creates a Config with default values
func New() *Config {
	return &Config{
		Version: Version,
	}
}

// BindFlags registers the command-line flags on fs
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "Enable verbose logging (DEBUG, INFO, WARN, ERROR)")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "Suppress INFO messages (only show WARN, ERROR)")
	fs.StringVar(&c.LogLevel, "log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR, NONE)")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	fs.BoolVar(&c.ShowSkipped, "show-skipped", false, "Show a list of excluded and unreadable entries at the end")
	fs.BoolVar(&c.ToStdout, "stdout", false, "Write the tree to standard output instead of a file")
	fs.BoolVar(&c.GitIgnore, "gitignore", false, "Also exclude entries matched by .gitignore files under the root")
	fs.StringArrayVar(&c.ExcludeDirGlobs, "exclude-dir", nil, "Extra glob patterns for directory names to exclude (repeatable)")
	fs.StringArrayVar(&c.ExcludeFileGlobs, "exclude-file", nil, "Extra glob patterns for file names to exclude (repeatable)")
	fs.StringVar(&c.RulesFile, "config", "", "YAML file with additional exclusion rules")
}

// Finalize applies the positional arguments, loads the rules file and
// works out whether colours can be used on stderr.
func (c *Config) Finalize(args []string, stderr *os.File) error {
	if len(args) > 0 {
		c.RootDir = args[0]
	}
	if len(args) > 1 {
		c.OutputFile = args[1]
	}
	if c.RootDir == "" {
		return errors.New("config: root directory is required")
	}
	if c.OutputFile == "" && !c.ToStdout {
		return errors.New("config: output file is required unless --stdout is set")
	}

	if c.RulesFile != "" {
		rules, err := LoadRules(c.RulesFile)
		if err != nil {
			return err
		}
		c.Rules = rules
	}

	c.UseColors = !c.NoColor && stderr != nil &&
		(isatty.IsTerminal(stderr.Fd()) || isatty.IsCygwinTerminal(stderr.Fd()))
	return nil
}

// LoadRules reads additional exclusion rules from a YAML file. Unknown
// keys are rejected; an empty file yields no rules.
func LoadRules(path string) (Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return Rules{}, fmt.Errorf("config: failed to open rules file '%s': %w", path, err)
	}
	defer f.Close()

	var rules Rules
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&rules); err != nil && !errors.Is(err, io.EOF) {
		return Rules{}, fmt.Errorf("config: failed to parse rules file '%s': %w", path, err)
	}
	return rules, nil
}

// MatcherConfig merges the built-in rules with the rules file and the
// call-time glob flags.
func (c *Config) MatcherConfig() ignore.Config {
	defaults := ignore.DefaultConfig()
	return ignore.Config{
		Directories:    defaults.Directories.Merge(c.Rules.Directories),
		Files:          defaults.Files.Merge(c.Rules.Files),
		DirectoryGlobs: c.ExcludeDirGlobs,
		FileGlobs:      c.ExcludeFileGlobs,
	}
}
