package backupdr

import (
	"context"
	"sort"
	"strings"
	"time"
)

// FakeClient is an in-memory implementation for unit tests.
type FakeClient struct {
	Backups []Backup

	// ListErr, when set, is returned by ListBackups.
	ListErr error
	// UpdateErrs maps backup name to an error returned by UpdateExpiration.
	UpdateErrs map[string]error

	// Updated records the expiration applied per backup name.
	Updated map[string]time.Time

	ListCalls   int
	UpdateCalls int
}

func NewFake(backups ...Backup) *FakeClient {
	return &FakeClient{
		Backups:    backups,
		UpdateErrs: map[string]error{},
		Updated:    map[string]time.Time{},
	}
}

func (f *FakeClient) ListBackups(_ context.Context, scope Scope) ([]Backup, error) {
	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := make([]Backup, 0, len(f.Backups))
	for _, b := range f.Backups {
		if scope.VaultFilter != "" && !strings.Contains(b.VaultName, scope.VaultFilter) {
			continue
		}
		if scope.WorkloadType != "" && b.WorkloadType != scope.WorkloadType {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *FakeClient) UpdateExpiration(_ context.Context, backupName string, expire time.Time) error {
	f.UpdateCalls++
	if err, ok := f.UpdateErrs[backupName]; ok {
		return err
	}
	found := false
	for _, b := range f.Backups {
		if b.Name == backupName {
			found = true
			break
		}
	}
	if !found {
		return &NotFoundError{Name: backupName}
	}
	f.Updated[backupName] = expire
	return nil
}
