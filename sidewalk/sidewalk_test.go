package sidewalk

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/omniscale/cycletag/element"
	osm "github.com/omniscale/go-osm"
)

var today = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

func TestApplyTo(t *testing.T) {
	tests := []struct {
		sidewalk LeftAndRightSidewalk
		tags     osm.Tags
		expected osm.Tags
	}{
		{LeftAndRightSidewalk{}, osm.Tags{"sidewalk": "left"}, osm.Tags{"sidewalk": "left"}},
		{LeftAndRightSidewalk{Right: Ptr(Yes)},
			osm.Tags{},
			osm.Tags{"sidewalk:right": "yes"}},
		{LeftAndRightSidewalk{Right: Ptr(Yes)},
			osm.Tags{"sidewalk": "no"},
			osm.Tags{"sidewalk": "right"}},
		{LeftAndRightSidewalk{Right: Ptr(Yes)},
			osm.Tags{"sidewalk": "left"},
			osm.Tags{"sidewalk": "both"}},
		{LeftAndRightSidewalk{Left: Ptr(Yes), Right: Ptr(Yes)},
			osm.Tags{"sidewalk:left": "separate"},
			osm.Tags{"sidewalk": "both"}},
		{LeftAndRightSidewalk{Left: Ptr(Yes)},
			osm.Tags{"sidewalk:both": "separate"},
			osm.Tags{"sidewalk:left": "yes", "sidewalk:right": "separate"}},
		{LeftAndRightSidewalk{Left: Ptr(No)},
			osm.Tags{"sidewalk:right": "separate", "sidewalk": "yes"},
			osm.Tags{"sidewalk:left": "no", "sidewalk:right": "separate"}},
		// sidewalk=yes does not name a side, keep it until both sides are known
		{LeftAndRightSidewalk{Right: Ptr(Yes)},
			osm.Tags{"sidewalk": "yes"},
			osm.Tags{"sidewalk": "yes", "sidewalk:right": "yes"}},
		{LeftAndRightSidewalk{Left: Ptr(No), Right: Ptr(Yes)},
			osm.Tags{"sidewalk": "yes"},
			osm.Tags{"sidewalk": "right"}},
	}
	for i, test := range tests {
		tags := element.NewTags(test.tags)
		test.sidewalk.ApplyTo(tags, today)
		if diff := cmp.Diff(test.expected, tags.Map()); diff != "" {
			t.Errorf("unexpected result for case %d (-want +got):\n%s", i+1, diff)
		}
	}
}

func TestApplyToUnchangedUpdatesCheckDate(t *testing.T) {
	tags := element.NewTags(osm.Tags{"sidewalk": "right"})
	LeftAndRightSidewalk{Right: Ptr(Yes)}.ApplyTo(tags, today)
	want := osm.Tags{"sidewalk": "right", "check_date:sidewalk": "2026-10-18"}
	if diff := cmp.Diff(want, tags.Map()); diff != "" {
		t.Errorf("unexpected result (-want +got):\n%s", diff)
	}
}
