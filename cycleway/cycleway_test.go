package cycleway

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/omniscale/cycletag/element"
	osm "github.com/omniscale/go-osm"
)

func TestParseCycleway(t *testing.T) {
	for c := None; c <= Separate; c++ {
		got, err := ParseCycleway(c.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Errorf("got %v, want %v", got, c)
		}
	}
	if _, err := ParseCycleway("invalid"); err == nil {
		t.Error("expected error for invalid")
	}
	if _, err := ParseCycleway("bicycle_road"); err == nil {
		t.Error("expected error for unknown name")
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Forward, Backward, Both} {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("got %v, %v for %v", got, err, d)
		}
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Error("expected error")
	}
}

func TestDefaultDirection(t *testing.T) {
	if DefaultDirection(true, false) != Forward || DefaultDirection(false, false) != Backward {
		t.Error("unexpected direction in right hand traffic")
	}
	if DefaultDirection(true, true) != Backward || DefaultDirection(false, true) != Forward {
		t.Error("unexpected direction in left hand traffic")
	}
}

func TestIsPhysical(t *testing.T) {
	for c := None; c <= Separate; c++ {
		want := c != None && c != NoneNoOneway && c != Separate
		if c.IsPhysical() != want {
			t.Errorf("%s: IsPhysical = %v", c, c.IsPhysical())
		}
	}
}

func TestConflictingSides(t *testing.T) {
	tags := element.NewTags(osm.Tags{
		"cycleway":                  "no",
		"cycleway:left":             "lane",
		"cycleway:oneway":           "no",
		"cycleway:segregated":       "yes",
		"cycleway:right:segregated": "no",
	})
	got := ConflictingSides(tags)
	want := []string{"cycleway", "cycleway:segregated"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected keys (-want +got):\n%s", diff)
	}
	if !HasCyclewayTags(tags) {
		t.Error("expected cycleway tags")
	}
	if HasCyclewayTags(element.NewTags(osm.Tags{"highway": "primary", "cycleway:both": "no"})) {
		t.Error("unexpected cycleway tags")
	}
}
