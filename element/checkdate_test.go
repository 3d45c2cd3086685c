package element

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	osm "github.com/omniscale/go-osm"
)

func TestUpdateCheckDateForKey(t *testing.T) {
	now := time.Date(2026, 10, 18, 14, 30, 0, 0, time.UTC)
	tags := NewTags(osm.Tags{
		"cycleway":              "track",
		"cycleway:lastcheck":    "2014-01-01",
		"last_checked:cycleway": "2015-01-01",
		"check_date:sidewalk":   "2016-01-01",
	})
	if !tags.HasCheckDateForKey("cycleway") {
		t.Error("expected legacy check date to be found")
	}
	tags.UpdateCheckDateForKey("cycleway", now)

	want := osm.Tags{
		"cycleway":            "track",
		"check_date:cycleway": "2026-10-18",
		"check_date:sidewalk": "2016-01-01",
	}
	if diff := cmp.Diff(want, tags.Map()); diff != "" {
		t.Errorf("unexpected tags (-want +got):\n%s", diff)
	}
}

func TestHasCheckDateForKey(t *testing.T) {
	tags := NewTags(osm.Tags{"check_date:sidewalk": "2016-01-01"})
	if tags.HasCheckDateForKey("cycleway") {
		t.Error("check date of other key should not count")
	}
	if !tags.HasCheckDateForKey("sidewalk") {
		t.Error("expected check date for sidewalk")
	}
}

func TestIsCheckDateKey(t *testing.T) {
	for key, want := range map[string]bool{
		"check_date:cycleway":   true,
		"cycleway:check_date":   true,
		"lastcheck:sidewalk":    true,
		"sidewalk:last_checked": true,
		"check_date":            false,
		"cycleway":              false,
		"cycleway:right:oneway": false,
	} {
		if got := IsCheckDateKey(key); got != want {
			t.Errorf("IsCheckDateKey(%q) = %v, want %v", key, got, want)
		}
	}
}
