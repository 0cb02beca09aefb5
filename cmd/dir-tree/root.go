package main

import (
	"io"
	"os"

	"github.com/bethropolis/dir-tree/internal/app"
	"github.com/bethropolis/dir-tree/internal/config"
	"github.com/spf13/cobra"
)

// newRootCommand builds the dir-tree command. stderr is only inspected
// for colour support when it is a real file.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cfg := config.New()

	cmd := &cobra.Command{
		Use:   "dir-tree ROOT OUTPUT",
		Short: "Write a project tree (folders and file names only)",
		Long: `dir-tree renders the directory hierarchy below ROOT as an ASCII tree and
writes it to OUTPUT. Build artifacts, VCS metadata, caches and lockfiles are
left out.`,
		Version:       cfg.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if cfg.ToStdout {
				return cobra.RangeArgs(1, 2)(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			stderrFile, _ := stderr.(*os.File)
			if err := cfg.Finalize(args, stderrFile); err != nil {
				return err
			}
			application, err := app.New(cfg, stdout, stderr)
			if err != nil {
				return err
			}
			return application.Run()
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cfg.BindFlags(cmd.Flags())
	return cmd
}
