package names

import (
	"fmt"
	"strings"
)

// Backup holds the components of a parsed backup resource name.
// Example:
// projects/my-proj/locations/us-central1/backupVaults/v1/dataSources/ds1/backups/b1
type Backup struct {
	Project    string
	Location   string
	Vault      string
	DataSource string
	Backup     string
}

// ParseBackup parses a full backup resource name into its components.
func ParseBackup(name string) (Backup, error) {
	parts := strings.Split(strings.TrimSpace(name), "/")
	if len(parts) != 10 {
		return Backup{}, fmt.Errorf("invalid backup resource name %q; expected projects/P/locations/L/backupVaults/V/dataSources/D/backups/B", name)
	}
	labels := []string{"projects", "locations", "backupVaults", "dataSources", "backups"}
	vals := make([]string, 0, len(labels))
	for i, label := range labels {
		if parts[2*i] != label {
			return Backup{}, fmt.Errorf("invalid backup resource name %q: segment %d is %q, want %q", name, 2*i, parts[2*i], label)
		}
		if parts[2*i+1] == "" {
			return Backup{}, fmt.Errorf("invalid backup resource name %q: empty %s id", name, strings.TrimSuffix(label, "s"))
		}
		vals = append(vals, parts[2*i+1])
	}
	return Backup{
		Project:    vals[0],
		Location:   vals[1],
		Vault:      vals[2],
		DataSource: vals[3],
		Backup:     vals[4],
	}, nil
}

// String returns the canonical resource name.
func (b Backup) String() string {
	return fmt.Sprintf("projects/%s/locations/%s/backupVaults/%s/dataSources/%s/backups/%s",
		b.Project, b.Location, b.Vault, b.DataSource, b.Backup)
}

// VaultName returns the resource name of the vault containing the backup.
func (b Backup) VaultName() string {
	return fmt.Sprintf("projects/%s/locations/%s/backupVaults/%s", b.Project, b.Location, b.Vault)
}

// Short returns the last path segment of a resource name, for display.
func Short(resource string) string {
	if i := strings.LastIndex(resource, "/"); i >= 0 {
		return resource[i+1:]
	}
	return resource
}

// LocationParent builds a locations-level parent for list calls.
// location may be "-" to address all locations.
func LocationParent(project, location string) string {
	return fmt.Sprintf("projects/%s/locations/%s", project, location)
}
