package cycleway

import (
	"fmt"
	"time"

	"github.com/omniscale/cycletag/element"
	"github.com/omniscale/cycletag/highway"
	"github.com/omniscale/cycletag/sidewalk"
)

const key = "cycleway"

// infixes of all key families written by ApplyTo: cycleway,
// cycleway:lane, cycleway:oneway and cycleway:segregated
var infixes = []string{"", "lane", "oneway", "segregated"}

// ExpandSides splits all cycleway key families that are tagged for both
// sides into left and right keys.
func ExpandSides(tags *element.Tags) {
	for _, infix := range infixes {
		tags.ExpandSides(key, infix)
	}
}

// MergeSides joins all cycleway key families with equal left and right
// values.
func MergeSides(tags *element.Tags) {
	for _, infix := range infixes {
		tags.MergeSides(key, infix)
	}
}

// ConflictingSides returns the keys of all cycleway key families that
// are tagged for both sides and for a single side at the same time.
func ConflictingSides(tags *element.Tags) []string {
	var keys []string
	for _, infix := range infixes {
		k := element.UnsidedKey(key, infix)
		if !tags.Has(k) {
			continue
		}
		if tags.Has(element.SidedKey(key, "left", infix)) || tags.Has(element.SidedKey(key, "right", infix)) {
			keys = append(keys, k)
		}
	}
	return keys
}

// HasCyclewayTags returns whether any cycleway key family is tagged.
func HasCyclewayTags(tags *element.Tags) bool {
	for _, infix := range infixes {
		if tags.Has(element.UnsidedKey(key, infix)) ||
			tags.Has(element.SidedKey(key, "left", infix)) ||
			tags.Has(element.SidedKey(key, "right", infix)) {
			return true
		}
	}
	return false
}

// SidewalkFunc receives the sidewalks that follow from the cycleway
// choice, e.g. sidewalk:right=yes for a shared foot and cycle path.
type SidewalkFunc func(tags *element.Tags, sidewalks sidewalk.LeftAndRightSidewalk, now time.Time)

func applySidewalk(tags *element.Tags, sidewalks sidewalk.LeftAndRightSidewalk, now time.Time) {
	sidewalks.ApplyTo(tags, now)
}

// Encoder writes LeftAndRightCycleway choices to tags. The zero value
// uses DefaultExemptionPolicy, the sidewalk package and the current time.
type Encoder struct {
	Policy   ExemptionPolicy
	Sidewalk SidewalkFunc
	Now      func() time.Time
}

var DefaultEncoder = Encoder{}

func (e Encoder) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e Encoder) policy() ExemptionPolicy {
	if e.Policy != nil {
		return e.Policy
	}
	return DefaultExemptionPolicy
}

func (e Encoder) sidewalk() SidewalkFunc {
	if e.Sidewalk != nil {
		return e.Sidewalk
	}
	return applySidewalk
}

// ApplyTo writes lr to tags with the DefaultEncoder.
func (lr LeftAndRightCycleway) ApplyTo(tags *element.Tags, isLeftHandTraffic bool) {
	DefaultEncoder.Apply(lr, tags, isLeftHandTraffic)
}

// Apply writes lr to tags. Only the sides that are set are modified.
// Apply panics if a side has an Invalid cycleway.
func (e Encoder) Apply(lr LeftAndRightCycleway, tags *element.Tags, isLeftHandTraffic bool) {
	if lr.Left == nil && lr.Right == nil {
		return
	}
	// Values for both sides need to be split up first, so that one side
	// can be changed without the other. They are merged again at the end
	// where possible.
	ExpandSides(tags)

	applyOnewayNotForCyclists(tags, lr, isLeftHandTraffic, e.policy())
	if lr.Left != nil {
		lr.Left.applyTo(tags, false, isLeftHandTraffic)
	}
	if lr.Right != nil {
		lr.Right.applyTo(tags, true, isLeftHandTraffic)
	}

	MergeSides(tags)

	now := e.now()
	if !tags.HasChanges() || tags.HasCheckDateForKey(key) {
		tags.UpdateCheckDateForKey(key, now)
	}

	// after the check date, a confirmed cycleway should not date the
	// sidewalk instead
	e.sidewalk()(tags, sidewalk.LeftAndRightSidewalk{
		Left:  sharedSidewalk(lr.Left),
		Right: sharedSidewalk(lr.Right),
	}, now)
}

func sharedSidewalk(cd *CyclewayAndDirection) *sidewalk.Sidewalk {
	if cd == nil || cd.Cycleway != SidewalkExplicit {
		return nil
	}
	return sidewalk.Ptr(sidewalk.Yes)
}

func (cd CyclewayAndDirection) applyTo(tags *element.Tags, isRight bool, isLeftHandTraffic bool) {
	side := "left"
	if isRight {
		side = "right"
	}
	cyclewayKey := element.SidedKey(key, side, "")
	laneKey := element.SidedKey(key, side, "lane")
	onewayKey := element.SidedKey(key, side, "oneway")
	segregatedKey := element.SidedKey(key, side, "segregated")

	switch cd.Cycleway {
	case None, NoneNoOneway:
		tags.Set(cyclewayKey, "no")
	case UnspecifiedLane:
		tags.Set(cyclewayKey, "lane")
		// keep a more specific cycleway:lane
	case AdvisoryLane:
		tags.Set(cyclewayKey, "lane")
		tags.Set(laneKey, "advisory")
	case ExclusiveLane:
		tags.Set(cyclewayKey, "lane")
		tags.Set(laneKey, "exclusive")
	case Track:
		tags.Set(cyclewayKey, "track")
		// segregated=yes is implied for tracks, only update existing values
		if tags.Has(segregatedKey) {
			tags.Set(segregatedKey, "yes")
		}
	case SidewalkExplicit:
		tags.Set(cyclewayKey, "track")
		tags.Set(segregatedKey, "no")
	case Pictograms:
		tags.Set(cyclewayKey, "shared_lane")
		tags.Set(laneKey, "pictogram")
	case SuggestionLane:
		tags.Set(cyclewayKey, "shared_lane")
		tags.Set(laneKey, "advisory")
	case UnspecifiedSharedLane:
		tags.Set(cyclewayKey, "shared_lane")
		// keep a more specific cycleway:lane
	case Busway:
		tags.Set(cyclewayKey, "share_busway")
	case Shoulder:
		tags.Set(cyclewayKey, "shoulder")
	case Separate:
		tags.Set(cyclewayKey, "separate")
	default:
		panic(fmt.Sprintf("invalid cycleway %s", cd.Cycleway))
	}

	if !cd.Cycleway.IsPhysical() {
		tags.Remove(onewayKey)
	} else {
		// The direction is tagged if it differs from the default direction,
		// if the cycleway is in contraflow of a one-way or if it was
		// already tagged, so that wrong values get corrected.
		isDefaultDirection := cd.Direction == DefaultDirection(isRight, isLeftHandTraffic)
		if !isDefaultDirection ||
			highway.IsInContraflowOfOneway(isRight, tags, isLeftHandTraffic) ||
			tags.Has(onewayKey) {
			tags.Set(onewayKey, cd.Direction.onewayValue())
		}
	}

	if !cd.Cycleway.IsLane() {
		tags.Remove(laneKey)
	}

	if cd.Cycleway != Track && cd.Cycleway != SidewalkExplicit {
		tags.Remove(segregatedKey)
	}
}
