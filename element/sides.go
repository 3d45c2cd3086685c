package element

// UnsidedKey returns the key that holds a value for both sides,
// e.g. cycleway or cycleway:lane.
func UnsidedKey(base, infix string) string {
	if infix == "" {
		return base
	}
	return base + ":" + infix
}

// SidedKey returns the key for a single side, e.g. cycleway:left or
// cycleway:right:lane. side is either "left" or "right".
func SidedKey(base, side, infix string) string {
	if infix == "" {
		return base + ":" + side
	}
	return base + ":" + side + ":" + infix
}

// ExpandSides replaces the unsided key of a family with the same value
// on both sided keys. Nothing is changed if the unsided key is missing or
// if any sided key is already present: an existing value for one side is
// never overwritten with the value for both sides.
func (t *Tags) ExpandSides(base, infix string) {
	key := UnsidedKey(base, infix)
	v, ok := t.tags[key]
	if !ok {
		return
	}
	left := SidedKey(base, "left", infix)
	right := SidedKey(base, "right", infix)
	if t.Has(left) || t.Has(right) {
		return
	}
	t.Set(left, v)
	t.Set(right, v)
	t.Remove(key)
}

// MergeSides is the inverse of ExpandSides. Both sided keys are replaced
// with the unsided key if they are present and equal. A single sided key
// stays as is, the other side is unknown and not the same as this one.
func (t *Tags) MergeSides(base, infix string) {
	left := SidedKey(base, "left", infix)
	right := SidedKey(base, "right", infix)
	l, okLeft := t.tags[left]
	r, okRight := t.tags[right]
	if !okLeft || !okRight || l != r {
		return
	}
	t.Set(UnsidedKey(base, infix), l)
	t.Remove(left)
	t.Remove(right)
}
