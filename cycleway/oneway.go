package cycleway

import (
	"github.com/omniscale/cycletag/element"
	"github.com/omniscale/cycletag/highway"
)

// ExemptionPolicy decides whether cyclists may ride against the one-way
// direction of the carriageway with the given cycleways. It must not
// modify tags.
type ExemptionPolicy func(lr LeftAndRightCycleway, tags *element.Tags, isLeftHandTraffic bool) bool

// DefaultExemptionPolicy exempts cyclists from a one-way if any side
// is NoneNoOneway or has a cycleway that can be used against the one-way
// direction. Sides without a new choice count if their existing
// cycleway:<side>:oneway tag allows contraflow cycling.
func DefaultExemptionPolicy(lr LeftAndRightCycleway, tags *element.Tags, isLeftHandTraffic bool) bool {
	var onewayDir Direction
	switch {
	case highway.IsForwardOneway(tags):
		onewayDir = Forward
	case highway.IsReversedOneway(tags):
		onewayDir = Backward
	default:
		return false
	}

	sides := []struct {
		name string
		cd   *CyclewayAndDirection
	}{
		{"left", lr.Left},
		{"right", lr.Right},
	}
	for _, side := range sides {
		if side.cd == nil {
			if existingAllowsContraflow(tags, side.name, onewayDir) {
				return true
			}
			continue
		}
		if side.cd.Cycleway == NoneNoOneway {
			return true
		}
		if side.cd.Cycleway.IsPhysical() && side.cd.Direction != onewayDir {
			return true
		}
	}
	return false
}

func existingAllowsContraflow(tags *element.Tags, side string, onewayDir Direction) bool {
	v, ok := tags.Get(element.SidedKey("cycleway", side, ""))
	if !ok {
		return false
	}
	switch v {
	case "no", "none", "separate":
		return false
	case "opposite", "opposite_lane", "opposite_track", "opposite_share_busway":
		return true
	}
	dir, ok := tags.Get(element.SidedKey("cycleway", side, "oneway"))
	if !ok {
		return false
	}
	switch dir {
	case "no":
		return true
	case "yes":
		return onewayDir == Backward
	case "-1":
		return onewayDir == Forward
	}
	return false
}

// applyOnewayNotForCyclists writes oneway:bicycle=no if cyclists are
// exempt from the one-way. Other values of oneway:bicycle are kept.
func applyOnewayNotForCyclists(tags *element.Tags, lr LeftAndRightCycleway, isLeftHandTraffic bool, policy ExemptionPolicy) {
	if highway.IsOneway(tags) && policy(lr, tags, isLeftHandTraffic) {
		tags.Set("oneway:bicycle", "no")
	} else if tags.Value("oneway:bicycle") == "no" {
		tags.Remove("oneway:bicycle")
	}
}
