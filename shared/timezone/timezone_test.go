package timezone_test

import (
	"testing"
	"time"

	"dinoreserve/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, time.RFC3339)

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse(time.RFC3339, "2026-09-01T19:00:00Z")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}

	if _, err := timezone.Parse(time.RFC3339, "not a timestamp"); err == nil {
		t.Error("Parse() accepted an invalid timestamp")
	}
}
