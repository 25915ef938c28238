package expiry

import (
	"errors"
	"fmt"
	"time"
)

// dateLayout is the only accepted form for --set-new-expiration-date.
const dateLayout = "2006-01-02"

// endOfDayHour/Minute fix the time-of-day applied in set-date mode.
const (
	endOfDayHour   = 23
	endOfDayMinute = 59
)

// Directive computes a new expiration from a current one. Exactly one
// of the two modes is active: add N days to the current value, or set
// an absolute date at 23:59:00 in the configured zone.
type Directive struct {
	addDays int
	setDate time.Time
	setMode bool
}

// New validates the raw flag values and builds a Directive. addDays is
// zero when unset; setDate is empty when unset. All validation happens
// here, before any network call is made.
func New(addDays int, setDate string, loc *time.Location) (Directive, error) {
	hasAdd := addDays != 0
	hasSet := setDate != ""
	switch {
	case hasAdd && hasSet:
		return Directive{}, errors.New("--add-expiration-days and --set-new-expiration-date are mutually exclusive")
	case !hasAdd && !hasSet:
		return Directive{}, errors.New("one of --add-expiration-days or --set-new-expiration-date is required")
	}
	if hasAdd {
		if addDays <= 0 {
			return Directive{}, fmt.Errorf("--add-expiration-days must be a positive number of days, got %d", addDays)
		}
		return Directive{addDays: addDays}, nil
	}
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(dateLayout, setDate, loc)
	if err != nil {
		return Directive{}, fmt.Errorf("invalid --set-new-expiration-date %q: expected YYYY-MM-DD: %w", setDate, err)
	}
	target := time.Date(d.Year(), d.Month(), d.Day(), endOfDayHour, endOfDayMinute, 0, 0, loc)
	return Directive{setDate: target, setMode: true}, nil
}

// Apply computes the new expiration for a record's current expiration.
// Add-days mode advances the calendar date; set-date mode ignores the
// current value entirely, which makes it idempotent.
func (d Directive) Apply(current time.Time) time.Time {
	if d.setMode {
		return d.setDate
	}
	return current.AddDate(0, 0, d.addDays)
}

// Describe returns a short human-readable form for logs and previews.
func (d Directive) Describe() string {
	if d.setMode {
		return "set expiration to " + d.setDate.Format(time.RFC3339)
	}
	return fmt.Sprintf("add %d day(s) to current expiration", d.addDays)
}
