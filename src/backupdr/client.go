package backupdr

import (
	"context"
	"time"
)

// Client is a narrow interface over the Backup and DR management API.
// Keep it small and focused on what we actually need so it stays mockable.
type Client interface {
	// ListBackups enumerates backups under the scope, walking the
	// vault -> data source -> backup hierarchy. Vault-substring and
	// workload-type narrowing happen during the walk.
	ListBackups(ctx context.Context, scope Scope) ([]Backup, error)

	// UpdateExpiration sets the expireTime field of a single backup,
	// addressed by its full resource name.
	UpdateExpiration(ctx context.Context, backupName string, expire time.Time) error
}

// NotFoundError is returned when an update targets a backup that no
// longer exists upstream.
type NotFoundError struct{ Name string }

func (e *NotFoundError) Error() string { return "backup not found: " + e.Name }

// DiscoveryError wraps a failure of the read-only listing walk. Fatal
// for the run; nothing has been mutated when it is returned.
type DiscoveryError struct {
	Parent string
	Err    error
}

func (e *DiscoveryError) Error() string {
	return "discovering backups under " + e.Parent + ": " + e.Err.Error()
}

func (e *DiscoveryError) Unwrap() error { return e.Err }
