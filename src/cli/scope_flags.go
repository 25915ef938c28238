package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/backupdr"
	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/filter"
)

// addScopeFlags wires the discovery-scope and filter flags shared by
// list and extend.
func addScopeFlags(cmd *cobra.Command) {
	cmd.Flags().String("project", "", "GCP project ID to search for backups (required)")
	cmd.Flags().String("location", "", "Location/region to search, e.g. asia-southeast1; '-' for all (required)")
	cmd.Flags().String("vault", "", "Only consider vaults whose name contains this substring")
	cmd.Flags().String("workload-type", "", "Only consider backups of this workload type, e.g. COMPUTE_ENGINE_INSTANCE")
	cmd.Flags().Int("filter-age-days", 0, "Only select backups strictly older than this many days")
	cmd.Flags().String("filter-name", "", "Only select backups whose name contains this substring")
	cmd.Flags().StringSlice("filter-labels", nil, "Only select backups carrying all of these key=value labels")
}

// scopeFromFlags parses and validates the scope/filter flags. All
// failures are ConfigErrors; nothing here touches the network.
func scopeFromFlags(cmd *cobra.Command) (backupdr.Scope, filter.Criteria, error) {
	project, _ := cmd.Flags().GetString("project")
	location, _ := cmd.Flags().GetString("location")
	vault, _ := cmd.Flags().GetString("vault")
	workloadStr, _ := cmd.Flags().GetString("workload-type")
	ageDays, _ := cmd.Flags().GetInt("filter-age-days")
	nameSub, _ := cmd.Flags().GetString("filter-name")
	labelPairs, _ := cmd.Flags().GetStringSlice("filter-labels")

	if project == "" {
		return backupdr.Scope{}, filter.Criteria{}, configErrorf("--project is required")
	}
	if location == "" {
		return backupdr.Scope{}, filter.Criteria{}, configErrorf("--location is required ('-' for all locations)")
	}

	var workload backupdr.WorkloadType
	if workloadStr != "" {
		wt, err := backupdr.ParseWorkloadType(workloadStr)
		if err != nil {
			return backupdr.Scope{}, filter.Criteria{}, &ConfigError{Err: err}
		}
		workload = wt
	}
	if ageDays < 0 {
		return backupdr.Scope{}, filter.Criteria{}, configErrorf("--filter-age-days must not be negative, got %d", ageDays)
	}

	labels, err := parseLabels(labelPairs)
	if err != nil {
		return backupdr.Scope{}, filter.Criteria{}, err
	}

	scope := backupdr.Scope{
		Project:      project,
		Location:     location,
		VaultFilter:  vault,
		WorkloadType: workload,
	}
	criteria := filter.Criteria{
		MinAgeDays:    ageDays,
		NameSubstring: nameSub,
		Labels:        labels,
		WorkloadType:  workload,
	}
	return scope, criteria, nil
}

// parseLabels splits key=value pairs into a map.
func parseLabels(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	labels := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, configErrorf("invalid label %q: expected key=value", p)
		}
		labels[k] = v
	}
	return labels, nil
}
