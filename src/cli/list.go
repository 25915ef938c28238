package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/backupdr"
	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/filter"
	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/logging"
	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/names"
)

func newListCmd(stdout, stderr io.Writer) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List backups matching the filters (read-only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, criteria, err := scopeFromFlags(cmd)
			if err != nil {
				return err
			}
			log, err := logging.New(getLogOptions(cmd))
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			client, err := newClient(ctx, getCredentialsFile(cmd), getTimeout(cmd))
			if err != nil {
				return err
			}

			log.Infow("discovering backups", "parent", scope.Parent())
			backups, err := client.ListBackups(ctx, scope)
			if err != nil {
				return err
			}
			matched := filter.Apply(backups, criteria, time.Now())
			log.Infow("discovery complete", "listed", len(backups), "matched", len(matched))

			switch output {
			case "json":
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(matched)
			case "table", "":
				return renderBackupTable(stdout, matched)
			default:
				return configErrorf("unsupported --output: %s", output)
			}
		},
	}
	addScopeFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table|json")
	return cmd
}

func renderBackupTable(w io.Writer, backups []backupdr.Backup) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVAULT\tWORKLOAD\tSTATE\tCREATED\tEXPIRES")
	for _, b := range backups {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			names.Short(b.Name), names.Short(b.VaultName), b.WorkloadType, b.State,
			formatTime(b.CreateTime), formatTime(b.ExpireTime))
	}
	return tw.Flush()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}
