package backupdr

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// WorkloadType is the category of protected resource a backup belongs to.
// It is a closed set so that an invalid --workload-type is rejected at
// configuration time rather than silently matching nothing.
type WorkloadType string

const (
	WorkloadComputeInstance   WorkloadType = "COMPUTE_ENGINE_INSTANCE"
	WorkloadComputeDisk       WorkloadType = "COMPUTE_ENGINE_DISK"
	WorkloadCloudSQLInstance  WorkloadType = "CLOUD_SQL_INSTANCE"
	WorkloadAlloyDBCluster    WorkloadType = "ALLOY_DB_CLUSTER"
	WorkloadFilestoreInstance WorkloadType = "FILESTORE_INSTANCE"
	WorkloadVMwareEngineVM    WorkloadType = "VMWARE_ENGINE_VM"
)

// workloadResourceTypes maps a workload type to the GCP resource type
// string carried on the data source that owns the backup.
var workloadResourceTypes = map[WorkloadType]string{
	WorkloadComputeInstance:   "compute.googleapis.com/Instance",
	WorkloadComputeDisk:       "compute.googleapis.com/Disk",
	WorkloadCloudSQLInstance:  "sqladmin.googleapis.com/Instance",
	WorkloadAlloyDBCluster:    "alloydb.googleapis.com/Cluster",
	WorkloadFilestoreInstance: "file.googleapis.com/Instance",
	WorkloadVMwareEngineVM:    "vmwareengine.googleapis.com/VmwareEngineVm",
}

// ParseWorkloadType validates an operator-supplied workload type string.
// Matching is case-insensitive on input but the canonical form is upper
// snake case.
func ParseWorkloadType(s string) (WorkloadType, error) {
	wt := WorkloadType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := workloadResourceTypes[wt]; !ok {
		return "", fmt.Errorf("unknown workload type %q (valid: %s)", s, strings.Join(WorkloadTypeNames(), ", "))
	}
	return wt, nil
}

// WorkloadTypeNames returns the valid workload type names, sorted.
func WorkloadTypeNames() []string {
	names := make([]string, 0, len(workloadResourceTypes))
	for wt := range workloadResourceTypes {
		names = append(names, string(wt))
	}
	sort.Strings(names)
	return names
}

// ResourceType returns the GCP resource type string for the workload,
// e.g. "compute.googleapis.com/Instance".
func (w WorkloadType) ResourceType() string {
	return workloadResourceTypes[w]
}

// MatchesResourceType reports whether a data source's resource type
// string belongs to this workload. The API sometimes qualifies the type
// further, so a substring check is used rather than strict equality.
func (w WorkloadType) MatchesResourceType(resourceType string) bool {
	rt := workloadResourceTypes[w]
	return rt != "" && strings.Contains(resourceType, rt)
}

// WorkloadTypeForResource maps an API resource type string back to a
// workload type; returns "" when the resource type is not one we model.
func WorkloadTypeForResource(resourceType string) WorkloadType {
	for wt, rt := range workloadResourceTypes {
		if strings.Contains(resourceType, rt) {
			return wt
		}
	}
	return ""
}

// Backup is a single backup snapshot as reported by the management API.
// Immutable once fetched; only the expiration is ever proposed for change.
type Backup struct {
	// Name is the full resource name:
	// projects/P/locations/L/backupVaults/V/dataSources/D/backups/B
	Name         string
	VaultName    string
	WorkloadType WorkloadType
	State        string
	CreateTime   time.Time
	// ExpireTime is zero when the backup has no expiration set.
	ExpireTime time.Time
	Labels     map[string]string
}

// Scope bounds a discovery call to a project/location and optional
// vault-name substring and workload type.
type Scope struct {
	Project string
	// Location is a region name, or "-" for all locations.
	Location     string
	VaultFilter  string
	WorkloadType WorkloadType
}

// Parent returns the locations-level parent resource name for list calls.
func (s Scope) Parent() string {
	return fmt.Sprintf("projects/%s/locations/%s", s.Project, s.Location)
}
