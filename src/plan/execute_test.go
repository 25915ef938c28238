package plan_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/backupdr"
	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/expiry"
	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/plan"
)

func TestExecute_AppliesAllActions(t *testing.T) {
	expire := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	fake := backupdr.NewFake(
		backupdr.Backup{Name: "b1", ExpireTime: expire},
		backupdr.Backup{Name: "b2", ExpireTime: expire},
	)
	d, _ := expiry.New(10, "", time.UTC)
	actions, _ := plan.Build(fake.Backups, d, nil)

	results, sum := plan.Execute(context.Background(), fake, actions, zap.NewNop().Sugar())
	if sum.Succeeded != 2 || sum.Failed != 0 {
		t.Fatalf("summary = %+v", sum)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	want := expire.AddDate(0, 0, 10)
	for _, name := range []string{"b1", "b2"} {
		if !fake.Updated[name].Equal(want) {
			t.Fatalf("backup %s updated to %v, want %v", name, fake.Updated[name], want)
		}
	}
}

func TestExecute_PartialFailureContinues(t *testing.T) {
	expire := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	fake := backupdr.NewFake(
		backupdr.Backup{Name: "b1", ExpireTime: expire},
		backupdr.Backup{Name: "b2", ExpireTime: expire},
		backupdr.Backup{Name: "b3", ExpireTime: expire},
	)
	fake.UpdateErrs["b2"] = errors.New("backend unavailable")

	d, _ := expiry.New(10, "", time.UTC)
	actions, _ := plan.Build(fake.Backups, d, nil)

	results, sum := plan.Execute(context.Background(), fake, actions, zap.NewNop().Sugar())
	if sum.Succeeded != 2 || sum.Failed != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	if fake.UpdateCalls != 3 {
		t.Fatalf("a failed update must not abort the rest; calls = %d", fake.UpdateCalls)
	}
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			if r.Action.Backup.Name != "b2" {
				t.Fatalf("wrong record failed: %s", r.Action.Backup.Name)
			}
		}
	}
	if failed != 1 {
		t.Fatalf("expected exactly one per-record error, got %d", failed)
	}
}
