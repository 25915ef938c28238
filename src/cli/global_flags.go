package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/safety"
)

// addGlobalFlags adds persistent flags shared by all subcommands.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolP("yes", "y", false, "Assume 'yes' to prompts and run non-interactively")
	cmd.PersistentFlags().String("log-level", "info", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file (rotated)")
	cmd.PersistentFlags().Duration("timeout", 60*time.Second, "Bound on each management API call")
	cmd.PersistentFlags().String("timezone", "Local", "IANA time zone used for --set-new-expiration-date")
	cmd.PersistentFlags().String("credentials-file", "", "Service account key file (default: application default credentials)")
}

func getLogOptions(cmd *cobra.Command) (level, file string) {
	level, _ = cmd.Root().PersistentFlags().GetString("log-level")
	file, _ = cmd.Root().PersistentFlags().GetString("log-file")
	return level, file
}

func getTimeout(cmd *cobra.Command) time.Duration {
	d, _ := cmd.Root().PersistentFlags().GetDuration("timeout")
	return d
}

func getCredentialsFile(cmd *cobra.Command) string {
	f, _ := cmd.Root().PersistentFlags().GetString("credentials-file")
	return f
}

// getTimezone loads the configured zone; "Local" and "" mean the
// process-local zone.
func getTimezone(cmd *cobra.Command) (*time.Location, error) {
	name, _ := cmd.Root().PersistentFlags().GetString("timezone")
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, configErrorf("invalid --timezone %q: %v", name, err)
	}
	return loc, nil
}

// getSafetyOptions reads the execute/yes pair into a safety.Options.
func getSafetyOptions(cmd *cobra.Command, execute bool) safety.Options {
	yes, _ := cmd.Root().PersistentFlags().GetBool("yes")
	return safety.Options{Execute: execute, Yes: yes}
}
