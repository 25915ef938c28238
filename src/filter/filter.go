package filter

import (
	"strings"
	"time"

	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/backupdr"
)

// Criteria is the operator-supplied predicate bundle. An unset field
// always passes; set fields are ANDed.
type Criteria struct {
	// MinAgeDays keeps only backups strictly older than this many whole
	// days. Zero means unset.
	MinAgeDays int
	// NameSubstring is matched case-sensitively against the full
	// resource name.
	NameSubstring string
	// Labels must all be present on the record with exactly equal
	// values; extra record labels are ignored.
	Labels map[string]string
	// WorkloadType requires exact equality when set.
	WorkloadType backupdr.WorkloadType
}

// Matches reports whether a single backup satisfies every set predicate,
// evaluated against the given reference time.
func (c Criteria) Matches(b backupdr.Backup, now time.Time) bool {
	if c.MinAgeDays > 0 {
		if b.CreateTime.IsZero() {
			return false
		}
		ageDays := int(now.Sub(b.CreateTime).Hours() / 24)
		if ageDays <= c.MinAgeDays {
			return false
		}
	}
	if c.NameSubstring != "" && !strings.Contains(b.Name, c.NameSubstring) {
		return false
	}
	for k, want := range c.Labels {
		got, ok := b.Labels[k]
		if !ok || got != want {
			return false
		}
	}
	if c.WorkloadType != "" && b.WorkloadType != c.WorkloadType {
		return false
	}
	return true
}

// Apply returns the subset of backups matching the criteria. Pure: no
// side effects, deterministic for a fixed now.
func Apply(backups []backupdr.Backup, c Criteria, now time.Time) []backupdr.Backup {
	out := make([]backupdr.Backup, 0, len(backups))
	for _, b := range backups {
		if c.Matches(b, now) {
			out = append(out, b)
		}
	}
	return out
}
