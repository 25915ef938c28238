package backupdr

import (
	"context"
	"fmt"
	"strings"
	"time"

	api "google.golang.org/api/backupdr/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/names"
)

// RealClient wraps the generated Backup and DR service client.
type RealClient struct {
	svc *api.Service
	// callTimeout bounds each individual API call. Zero means no bound.
	callTimeout time.Duration
}

// Options configures the real client.
type Options struct {
	// CredentialsFile is an optional service account key file. When
	// empty, application default credentials are used.
	CredentialsFile string
	// CallTimeout bounds each individual API call.
	CallTimeout time.Duration
}

// Connect builds a RealClient using application default credentials or
// the configured credentials file.
func Connect(ctx context.Context, opts Options) (*RealClient, error) {
	var clientOpts []option.ClientOption
	if opts.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}
	svc, err := api.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating backupdr service: %w", err)
	}
	return &RealClient{svc: svc, callTimeout: opts.CallTimeout}, nil
}

func (r *RealClient) boundCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.callTimeout)
}

// ListBackups walks vaults, then data sources, then backups. The API has
// no flat listing across the hierarchy, so narrowing by vault substring
// and workload type happens client-side during the walk.
func (r *RealClient) ListBackups(ctx context.Context, scope Scope) ([]Backup, error) {
	parent := scope.Parent()

	var vaults []*api.BackupVault
	{
		lctx, cancel := r.boundCtx(ctx)
		defer cancel()
		err := r.svc.Projects.Locations.BackupVaults.List(parent).Pages(lctx,
			func(resp *api.ListBackupVaultsResponse) error {
				vaults = append(vaults, resp.BackupVaults...)
				return nil
			})
		if err != nil {
			return nil, &DiscoveryError{Parent: parent, Err: err}
		}
	}

	var out []Backup
	for _, vault := range vaults {
		if scope.VaultFilter != "" && !strings.Contains(vault.Name, scope.VaultFilter) {
			continue
		}

		var sources []*api.DataSource
		{
			lctx, cancel := r.boundCtx(ctx)
			err := r.svc.Projects.Locations.BackupVaults.DataSources.List(vault.Name).Pages(lctx,
				func(resp *api.ListDataSourcesResponse) error {
					sources = append(sources, resp.DataSources...)
					return nil
				})
			cancel()
			if err != nil {
				return nil, &DiscoveryError{Parent: vault.Name, Err: err}
			}
		}

		for _, ds := range sources {
			resourceType := ""
			if ds.DataSourceGcpResource != nil {
				resourceType = ds.DataSourceGcpResource.Type
			}
			if scope.WorkloadType != "" {
				// A data source without resource type info cannot be
				// verified against the filter; skip it.
				if resourceType == "" || !scope.WorkloadType.MatchesResourceType(resourceType) {
					continue
				}
			}
			workload := WorkloadTypeForResource(resourceType)

			lctx, cancel := r.boundCtx(ctx)
			err := r.svc.Projects.Locations.BackupVaults.DataSources.Backups.List(ds.Name).Pages(lctx,
				func(resp *api.ListBackupsResponse) error {
					for _, b := range resp.Backups {
						out = append(out, fromAPIBackup(b, vault.Name, workload))
					}
					return nil
				})
			cancel()
			if err != nil {
				return nil, &DiscoveryError{Parent: ds.Name, Err: err}
			}
		}
	}
	return out, nil
}

// UpdateExpiration patches a single backup's expireTime. The returned
// operation is not polled: the field update is applied synchronously by
// the service and per-record reporting only needs the call outcome.
func (r *RealClient) UpdateExpiration(ctx context.Context, backupName string, expire time.Time) error {
	if _, err := names.ParseBackup(backupName); err != nil {
		return err
	}
	uctx, cancel := r.boundCtx(ctx)
	defer cancel()

	patch := &api.Backup{ExpireTime: expire.Format(time.RFC3339)}
	_, err := r.svc.Projects.Locations.BackupVaults.DataSources.Backups.
		Patch(backupName, patch).
		UpdateMask("expireTime").
		Context(uctx).
		Do()
	if err != nil {
		if gerr, ok := err.(*googleapi.Error); ok && gerr.Code == 404 {
			return &NotFoundError{Name: backupName}
		}
		return fmt.Errorf("updating %s: %w", backupName, err)
	}
	return nil
}

func fromAPIBackup(b *api.Backup, vaultName string, workload WorkloadType) Backup {
	out := Backup{
		Name:         b.Name,
		VaultName:    vaultName,
		WorkloadType: workload,
		State:        b.State,
		Labels:       b.Labels,
	}
	if t, err := time.Parse(time.RFC3339, b.CreateTime); err == nil {
		out.CreateTime = t
	}
	if t, err := time.Parse(time.RFC3339, b.ExpireTime); err == nil {
		out.ExpireTime = t
	}
	return out
}
