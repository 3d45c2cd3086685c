/*
Package cycleway encodes the cycling infrastructure of a carriageway
into OSM tags.

The choice for each side of the carriageway is described by a
CyclewayAndDirection. LeftAndRightCycleway.ApplyTo writes the choice into
the cycleway, cycleway:lane, cycleway:oneway and cycleway:segregated key
families, keeps oneway:bicycle in sync, refreshes check_date:cycleway and
marks shared foot and cycle paths as sidewalks.
*/
package cycleway

import (
	"fmt"

	"github.com/pkg/errors"
)

type Cycleway int

const (
	// Invalid is never a valid choice, encoding it panics.
	Invalid Cycleway = iota
	None
	// NoneNoOneway is no cycleway on a one-way that cyclists may use in
	// both directions.
	NoneNoOneway
	UnspecifiedLane
	AdvisoryLane
	ExclusiveLane
	Track
	// SidewalkExplicit is a sidewalk that is signed as shared foot and
	// cycle path.
	SidewalkExplicit
	Pictograms
	SuggestionLane
	UnspecifiedSharedLane
	Busway
	Shoulder
	// Separate is a cycleway that is mapped as its own way.
	Separate
)

var cyclewayNames = [...]string{
	"invalid",
	"none",
	"none_no_oneway",
	"unspecified_lane",
	"advisory_lane",
	"exclusive_lane",
	"track",
	"sidewalk_explicit",
	"pictograms",
	"suggestion_lane",
	"unspecified_shared_lane",
	"busway",
	"shoulder",
	"separate",
}

func (c Cycleway) String() string {
	if c < 0 || int(c) >= len(cyclewayNames) {
		return fmt.Sprintf("Cycleway(%d)", int(c))
	}
	return cyclewayNames[c]
}

// ParseCycleway returns the Cycleway for a name as returned by String.
func ParseCycleway(name string) (Cycleway, error) {
	for i, n := range cyclewayNames {
		if Cycleway(i) != Invalid && n == name {
			return Cycleway(i), nil
		}
	}
	return Invalid, errors.Errorf("unknown cycleway '%s'", name)
}

// IsLane returns whether the cycleway owns the cycleway:lane detail.
func (c Cycleway) IsLane() bool {
	switch c {
	case UnspecifiedLane, AdvisoryLane, ExclusiveLane,
		Pictograms, SuggestionLane, UnspecifiedSharedLane:
		return true
	}
	return false
}

// IsPhysical returns whether the cycleway exists on the carriageway and
// has a direction.
func (c Cycleway) IsPhysical() bool {
	return c != None && c != NoneNoOneway && c != Separate
}

type Direction int

const (
	Forward Direction = iota
	Backward
	Both
)

var directionNames = [...]string{"forward", "backward", "both"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

func ParseDirection(name string) (Direction, error) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return Forward, errors.Errorf("unknown direction '%s'", name)
}

// onewayValue returns the value of cycleway:<side>:oneway.
func (d Direction) onewayValue() string {
	switch d {
	case Forward:
		return "yes"
	case Backward:
		return "-1"
	case Both:
		return "no"
	}
	panic(fmt.Sprintf("invalid direction %d", int(d)))
}

// DefaultDirection returns the direction that is assumed for a cycleway
// without cycleway:<side>:oneway tag. Cycleways go with the traffic of
// their side of the road.
func DefaultDirection(isRight, isLeftHandTraffic bool) Direction {
	if isRight != isLeftHandTraffic {
		return Forward
	}
	return Backward
}

type CyclewayAndDirection struct {
	Cycleway  Cycleway
	Direction Direction
}

func (cd CyclewayAndDirection) String() string {
	if !cd.Cycleway.IsPhysical() {
		return cd.Cycleway.String()
	}
	return cd.Cycleway.String() + "/" + cd.Direction.String()
}

// LeftAndRightCycleway holds the choice for both sides of a carriageway.
// A nil side is left untouched.
type LeftAndRightCycleway struct {
	Left  *CyclewayAndDirection
	Right *CyclewayAndDirection
}
