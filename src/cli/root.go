package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes. Configuration problems are distinguished from runtime
// failures so wrapping scripts can tell a bad invocation from a bad run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitConfig  = 2
)

// NewRootCmd returns the root cobra command for the gcbdr-retention CLI.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gcbdr-retention",
		Short: "Discover Backup and DR backups and extend their expiration",
		Long: "gcbdr-retention lists Google Cloud Backup and DR backups matching " +
			"operator-supplied filters and extends their expiration, previewing " +
			"changes by default and applying them only with --execute.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addGlobalFlags(cmd)

	cmd.AddCommand(newVersionCmd(stdout))
	cmd.AddCommand(newListCmd(stdout, stderr))
	cmd.AddCommand(newExtendCmd(stdout, stderr))

	return cmd
}

// Execute runs the CLI with the process stdio and maps the error
// taxonomy to exit codes.
func Execute() int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	err := root.Execute()
	if err == nil {
		return ExitOK
	}
	fmt.Fprintln(os.Stderr, err)
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return ExitConfig
	}
	return ExitFailure
}
