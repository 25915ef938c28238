package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/expiry"
	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/filter"
	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/logging"
	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/names"
	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/plan"
	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/safety"
)

func newExtendCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		addDays    int
		setDate    string
		execute    bool
		renderCurl bool
		renderGcld bool
	)
	cmd := &cobra.Command{
		Use:   "extend",
		Short: "Extend the expiration of matching backups (dry-run by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, criteria, err := scopeFromFlags(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("add-expiration-days") && addDays <= 0 {
				return configErrorf("--add-expiration-days must be a positive number of days, got %d", addDays)
			}
			if renderCurl && renderGcld {
				return configErrorf("--curl and --gcloud are mutually exclusive")
			}
			loc, err := getTimezone(cmd)
			if err != nil {
				return err
			}
			directive, err := expiry.New(addDays, setDate, loc)
			if err != nil {
				return &ConfigError{Err: err}
			}
			var renderer plan.Renderer
			switch {
			case renderCurl:
				renderer = plan.CurlRenderer{}
			case renderGcld:
				renderer = plan.GcloudRenderer{}
			}

			log, err := logging.New(getLogOptions(cmd))
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if !execute {
				log.Info("dry-run mode: no changes will be applied")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			client, err := newClient(ctx, getCredentialsFile(cmd), getTimeout(cmd))
			if err != nil {
				return err
			}

			log.Infow("discovering backups", "parent", scope.Parent(), "directive", directive.Describe())
			backups, err := client.ListBackups(ctx, scope)
			if err != nil {
				return err
			}
			matched := filter.Apply(backups, criteria, time.Now())
			log.Infow("discovery complete", "listed", len(backups), "matched", len(matched))

			actions, skipped := plan.Build(matched, directive, renderer)
			for _, b := range skipped {
				log.Warnw("skipping backup with no expiration set", "backup", names.Short(b.Name))
			}
			if len(actions) == 0 {
				fmt.Fprintln(stdout, "No matching backups found.")
				return nil
			}

			if err := renderPlanTable(stdout, actions); err != nil {
				return err
			}
			if renderer != nil {
				for _, a := range actions {
					fmt.Fprintf(stdout, "\n# %s command for %s:\n%s\n", renderer.Name(), names.Short(a.Backup.Name), a.Command)
				}
			}

			if !execute {
				fmt.Fprintln(stdout, "\n[DRY RUN] No changes were applied. Re-run with --execute to apply.")
				return nil
			}

			opts := getSafetyOptions(cmd, execute)
			ok, err := safety.Confirm(opts, os.Stdin, stdout, fmt.Sprintf("Update expiration of %d backups?", len(actions)))
			if err != nil || !ok {
				return err
			}

			_, sum := plan.Execute(ctx, client, actions, log)
			fmt.Fprintf(stdout, "\nUpdated %d of %d backups (%d failed)\n", sum.Succeeded, len(actions), sum.Failed)
			if sum.Failed > 0 {
				return fmt.Errorf("%d of %d updates failed", sum.Failed, len(actions))
			}
			return nil
		},
	}
	addScopeFlags(cmd)
	cmd.Flags().IntVar(&addDays, "add-expiration-days", 0, "Add this many days to each backup's current expiration")
	cmd.Flags().StringVar(&setDate, "set-new-expiration-date", "", "Set each backup's expiration to this date (YYYY-MM-DD) at 23:59:00")
	cmd.Flags().BoolVar(&execute, "execute", false, "Apply the updates (default is dry run)")
	cmd.Flags().BoolVar(&renderCurl, "curl", false, "Render the raw API command for each planned change")
	cmd.Flags().BoolVar(&renderGcld, "gcloud", false, "Render the gcloud-proxied command for each planned change")
	return cmd
}

func renderPlanTable(w io.Writer, actions []plan.Action) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVAULT\tWORKLOAD\tCURRENT EXPIRY\tNEW EXPIRY\tNOTE")
	for _, a := range actions {
		note := ""
		if a.ShrinksRetention {
			note = "does not extend retention"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			names.Short(a.Backup.Name), names.Short(a.Backup.VaultName), a.Backup.WorkloadType,
			formatTime(a.Backup.ExpireTime), formatTime(a.NewExpire), note)
	}
	return tw.Flush()
}
