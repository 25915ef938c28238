package expiry_test

import (
	"testing"
	"time"

	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/expiry"
)

func TestNew_MutuallyExclusive(t *testing.T) {
	if _, err := expiry.New(5, "2030-12-31", time.UTC); err == nil {
		t.Fatalf("expected error when both directives are set")
	}
}

func TestNew_NeitherSet(t *testing.T) {
	if _, err := expiry.New(0, "", time.UTC); err == nil {
		t.Fatalf("expected error when no directive is set")
	}
}

func TestNew_NonPositiveDays(t *testing.T) {
	if _, err := expiry.New(-3, "", time.UTC); err == nil {
		t.Fatalf("expected error for negative day count")
	}
}

func TestNew_MalformedDate(t *testing.T) {
	for _, s := range []string{"2030/12/31", "31-12-2030", "2030-13-01", "2030-02-30", "not-a-date"} {
		if _, err := expiry.New(0, s, time.UTC); err == nil {
			t.Fatalf("expected parse error for %q", s)
		}
	}
}

func TestApply_AddDays(t *testing.T) {
	d, err := expiry.New(30, "", time.UTC)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	current := time.Date(2026, 8, 1, 4, 30, 0, 0, time.UTC)
	got := d.Apply(current)
	want := time.Date(2026, 8, 31, 4, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Apply = %v, want %v", got, want)
	}
}

func TestApply_AddDays_Associative(t *testing.T) {
	dN, _ := expiry.New(7, "", time.UTC)
	dM, _ := expiry.New(13, "", time.UTC)
	dNM, _ := expiry.New(20, "", time.UTC)

	current := time.Date(2026, 12, 28, 23, 59, 0, 0, time.UTC)
	if got, want := dM.Apply(dN.Apply(current)), dNM.Apply(current); !got.Equal(want) {
		t.Fatalf("add(7) then add(13) = %v, add(20) = %v", got, want)
	}
}

func TestApply_SetDate_FixedTimeOfDay(t *testing.T) {
	d, err := expiry.New(0, "2030-12-31", time.UTC)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	current := time.Date(2026, 1, 1, 4, 30, 17, 0, time.UTC)
	got := d.Apply(current)
	want := time.Date(2030, 12, 31, 23, 59, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Apply = %v, want %v", got, want)
	}
}

func TestApply_SetDate_IgnoresCurrentValue(t *testing.T) {
	d, _ := expiry.New(0, "2030-12-31", time.UTC)
	a := d.Apply(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	b := d.Apply(time.Date(2099, 6, 15, 12, 0, 0, 0, time.UTC))
	if !a.Equal(b) {
		t.Fatalf("set-date result depends on current value: %v vs %v", a, b)
	}
}

func TestApply_SetDate_Idempotent(t *testing.T) {
	d, _ := expiry.New(0, "2030-12-31", time.UTC)
	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	once := d.Apply(current)
	twice := d.Apply(once)
	if !once.Equal(twice) {
		t.Fatalf("set-date not idempotent: %v vs %v", once, twice)
	}
}

func TestApply_SetDate_ConfiguredZone(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Skipf("zone database unavailable: %v", err)
	}
	d, err := expiry.New(0, "2030-12-31", loc)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := d.Apply(time.Now())
	want := time.Date(2030, 12, 31, 23, 59, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("Apply = %v, want %v", got, want)
	}
}

func TestDescribe(t *testing.T) {
	d, _ := expiry.New(14, "", time.UTC)
	if got := d.Describe(); got != "add 14 day(s) to current expiration" {
		t.Fatalf("Describe = %q", got)
	}
}
