// Package highway contains predicates about the carriageway a cycleway
// or sidewalk belongs to.
package highway

import "github.com/omniscale/cycletag/element"

// IsForwardOneway returns whether traffic may only flow in the direction
// the way is drawn. Roundabouts and motorways are implied one-ways.
func IsForwardOneway(tags *element.Tags) bool {
	switch tags.Value("oneway") {
	case "yes", "true", "1":
		return true
	case "":
		switch tags.Value("junction") {
		case "roundabout", "circular":
			return true
		}
		return tags.Value("highway") == "motorway"
	}
	return false
}

// IsReversedOneway returns whether traffic may only flow against the
// direction the way is drawn.
func IsReversedOneway(tags *element.Tags) bool {
	return tags.Value("oneway") == "-1"
}

func IsOneway(tags *element.Tags) bool {
	return IsForwardOneway(tags) || IsReversedOneway(tags)
}

// IsInContraflowOfOneway returns whether the given side of a one-way
// faces traffic going against the one-way direction. On a forward one-way
// in right-hand traffic that is the left side.
func IsInContraflowOfOneway(isRight bool, tags *element.Tags, isLeftHandTraffic bool) bool {
	if IsForwardOneway(tags) {
		return isRight == isLeftHandTraffic
	}
	if IsReversedOneway(tags) {
		return isRight != isLeftHandTraffic
	}
	return false
}
