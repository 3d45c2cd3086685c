// Package sidewalk writes the sidewalk tags of a carriageway.
package sidewalk

import (
	"time"

	"github.com/omniscale/cycletag/element"
)

type Sidewalk int

const (
	Invalid Sidewalk = iota
	Yes
	No
	Separate
)

func (s Sidewalk) String() string {
	switch s {
	case Yes:
		return "yes"
	case No:
		return "no"
	case Separate:
		return "separate"
	}
	return "invalid"
}

func (s Sidewalk) osmValue() string {
	switch s {
	case Yes, No, Separate:
		return s.String()
	}
	panic("invalid sidewalk")
}

// LeftAndRightSidewalk holds the sidewalk for each side of a carriageway.
// A nil side is not touched.
type LeftAndRightSidewalk struct {
	Left  *Sidewalk
	Right *Sidewalk
}

// Ptr is a helper to build a LeftAndRightSidewalk.
func Ptr(s Sidewalk) *Sidewalk {
	return &s
}

// compact holds the single sidewalk value for each combination of sides
// that can be written as one key.
var compact = map[[2]string]string{
	{"yes", "yes"}:           "both",
	{"yes", "no"}:            "left",
	{"no", "yes"}:            "right",
	{"no", "no"}:             "no",
	{"separate", "separate"}: "separate",
}

func expandCompact(v string) (left, right string, ok bool) {
	switch v {
	case "none":
		v = "no"
	}
	for sides, c := range compact {
		if c == v {
			return sides[0], sides[1], true
		}
	}
	return "", "", false
}

const (
	key      = "sidewalk"
	leftKey  = "sidewalk:left"
	rightKey = "sidewalk:right"
	bothKey  = "sidewalk:both"
)

// ApplyTo writes the given sides into tags. Sides are kept in the compact
// sidewalk=both|left|right|no|separate form whenever possible.
func (lr LeftAndRightSidewalk) ApplyTo(tags *element.Tags, now time.Time) {
	if lr.Left == nil && lr.Right == nil {
		return
	}
	expand(tags)

	if lr.Left != nil {
		tags.Set(leftKey, lr.Left.osmValue())
	}
	if lr.Right != nil {
		tags.Set(rightKey, lr.Right.osmValue())
	}
	l, okLeft := tags.Get(leftKey)
	r, okRight := tags.Get(rightKey)
	if okLeft && okRight {
		// values we could not expand (e.g. sidewalk=yes) are superseded
		// once both sides are known
		tags.Remove(key)
		tags.Remove(bothKey)
		if c, ok := compact[[2]string{l, r}]; ok {
			tags.Set(key, c)
			tags.Remove(leftKey)
			tags.Remove(rightKey)
		}
	}

	if !tags.HasChanges() || tags.HasCheckDateForKey(key) {
		tags.UpdateCheckDateForKey(key, now)
	}
}

func expand(tags *element.Tags) {
	if tags.Has(leftKey) || tags.Has(rightKey) {
		return
	}
	if v, ok := tags.Get(bothKey); ok {
		tags.Set(leftKey, v)
		tags.Set(rightKey, v)
		tags.Remove(bothKey)
		return
	}
	if l, r, ok := expandCompact(tags.Value(key)); ok {
		tags.Set(leftKey, l)
		tags.Set(rightKey, r)
		tags.Remove(key)
	}
}
