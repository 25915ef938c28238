package filter_test

import (
	"testing"
	"time"

	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/backupdr"
	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/filter"
)

var now = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func backupCreatedDaysAgo(name string, days int) backupdr.Backup {
	return backupdr.Backup{
		Name:       "projects/p/locations/l/backupVaults/v/dataSources/d/backups/" + name,
		CreateTime: now.AddDate(0, 0, -days),
	}
}

func TestApply_NoCriteria_Identity(t *testing.T) {
	in := []backupdr.Backup{
		backupCreatedDaysAgo("a", 1),
		backupCreatedDaysAgo("b", 100),
		{Name: "no-create-time"},
	}
	out := filter.Apply(in, filter.Criteria{}, now)
	if len(out) != len(in) {
		t.Fatalf("expected all %d backups, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i].Name != in[i].Name {
			t.Fatalf("order changed: %q vs %q", out[i].Name, in[i].Name)
		}
	}
}

func TestApply_AgeFilter_StrictBoundary(t *testing.T) {
	c := filter.Criteria{MinAgeDays: 30}

	if got := filter.Apply([]backupdr.Backup{backupCreatedDaysAgo("young", 10)}, c, now); len(got) != 0 {
		t.Fatalf("10-day-old backup should be excluded at threshold 30")
	}
	if got := filter.Apply([]backupdr.Backup{backupCreatedDaysAgo("exact", 30)}, c, now); len(got) != 0 {
		t.Fatalf("backup created exactly 30 days ago should be excluded (strict >)")
	}
	if got := filter.Apply([]backupdr.Backup{backupCreatedDaysAgo("old", 40)}, c, now); len(got) != 1 {
		t.Fatalf("40-day-old backup should be included at threshold 30")
	}
}

func TestApply_AgeFilter_NoCreateTime(t *testing.T) {
	c := filter.Criteria{MinAgeDays: 1}
	if got := filter.Apply([]backupdr.Backup{{Name: "x"}}, c, now); len(got) != 0 {
		t.Fatalf("backup without create time must not pass an age filter")
	}
}

func TestApply_NameFilter_CaseSensitive(t *testing.T) {
	b := backupCreatedDaysAgo("nightly-prod-1", 5)
	if got := filter.Apply([]backupdr.Backup{b}, filter.Criteria{NameSubstring: "prod"}, now); len(got) != 1 {
		t.Fatalf("substring match expected")
	}
	if got := filter.Apply([]backupdr.Backup{b}, filter.Criteria{NameSubstring: "PROD"}, now); len(got) != 0 {
		t.Fatalf("name match must be case-sensitive")
	}
}

func TestApply_LabelFilter(t *testing.T) {
	rec := backupdr.Backup{
		Name:   "b",
		Labels: map[string]string{"env": "prod", "dr": "critical", "team": "x"},
	}
	c := filter.Criteria{Labels: map[string]string{"env": "prod", "dr": "critical"}}
	if got := filter.Apply([]backupdr.Backup{rec}, c, now); len(got) != 1 {
		t.Fatalf("record with superset of labels should match")
	}

	partial := backupdr.Backup{Name: "b2", Labels: map[string]string{"env": "prod"}}
	if got := filter.Apply([]backupdr.Backup{partial}, c, now); len(got) != 0 {
		t.Fatalf("record missing a required label should not match")
	}

	unlabeled := backupdr.Backup{Name: "b3"}
	if got := filter.Apply([]backupdr.Backup{unlabeled}, c, now); len(got) != 0 {
		t.Fatalf("record with no labels should not match a label filter")
	}
}

func TestApply_LabelFilter_Monotonic(t *testing.T) {
	recs := []backupdr.Backup{
		{Name: "a", Labels: map[string]string{"env": "prod"}},
		{Name: "b", Labels: map[string]string{"env": "prod", "dr": "critical"}},
		{Name: "c", Labels: map[string]string{"env": "dev"}},
	}
	base := filter.Apply(recs, filter.Criteria{Labels: map[string]string{"env": "prod"}}, now)
	narrowed := filter.Apply(recs, filter.Criteria{Labels: map[string]string{"env": "prod", "dr": "critical"}}, now)
	if len(narrowed) > len(base) {
		t.Fatalf("adding labels grew the matched set: %d > %d", len(narrowed), len(base))
	}
	for _, n := range narrowed {
		found := false
		for _, b := range base {
			if b.Name == n.Name {
				found = true
			}
		}
		if !found {
			t.Fatalf("narrowed set contains %q not present in base set", n.Name)
		}
	}
}

func TestApply_WorkloadType(t *testing.T) {
	recs := []backupdr.Backup{
		{Name: "vm", WorkloadType: backupdr.WorkloadComputeInstance},
		{Name: "sql", WorkloadType: backupdr.WorkloadCloudSQLInstance},
	}
	got := filter.Apply(recs, filter.Criteria{WorkloadType: backupdr.WorkloadCloudSQLInstance}, now)
	if len(got) != 1 || got[0].Name != "sql" {
		t.Fatalf("expected only the sql backup, got %#v", got)
	}
}

func TestApply_AllCriteriaAnded(t *testing.T) {
	match := backupdr.Backup{
		Name:         "projects/p/locations/l/backupVaults/v/dataSources/d/backups/prod-1",
		CreateTime:   now.AddDate(0, 0, -40),
		WorkloadType: backupdr.WorkloadComputeInstance,
		Labels:       map[string]string{"env": "prod"},
	}
	miss := match
	miss.Labels = map[string]string{"env": "dev"}

	c := filter.Criteria{
		MinAgeDays:    30,
		NameSubstring: "prod",
		Labels:        map[string]string{"env": "prod"},
		WorkloadType:  backupdr.WorkloadComputeInstance,
	}
	got := filter.Apply([]backupdr.Backup{match, miss}, c, now)
	if len(got) != 1 || got[0].Name != match.Name {
		t.Fatalf("expected only the fully matching backup, got %#v", got)
	}
}
