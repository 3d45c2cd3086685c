/*
Package element provides the tag store that all cycleway and sidewalk
encoders write to.

A Tags value keeps a snapshot of the tags it was created from, so callers
can ask whether an edit changed anything and which keys were added,
modified or deleted.
*/
package element

import (
	"fmt"
	"sort"

	osm "github.com/omniscale/go-osm"
)

// Tags is a tag store that remembers its initial tags. The zero value
// is an empty store without changes.
type Tags struct {
	orig osm.Tags
	tags osm.Tags
}

// NewTags returns a tag store initialized with a copy of t. t itself is
// never modified.
func NewTags(t osm.Tags) *Tags {
	return &Tags{orig: copyTags(t), tags: copyTags(t)}
}

func copyTags(t osm.Tags) osm.Tags {
	c := make(osm.Tags, len(t))
	for k, v := range t {
		if v == "" {
			continue
		}
		c[k] = v
	}
	return c
}

func (t *Tags) Has(key string) bool {
	_, ok := t.tags[key]
	return ok
}

func (t *Tags) Get(key string) (string, bool) {
	v, ok := t.tags[key]
	return v, ok
}

// Value returns the value of key or an empty string if key is not set.
func (t *Tags) Value(key string) string {
	return t.tags[key]
}

// Set inserts or overwrites key. An empty value removes the key, absent
// facts are never stored as empty strings.
func (t *Tags) Set(key, value string) {
	if value == "" {
		t.Remove(key)
		return
	}
	if t.tags == nil {
		t.tags = make(osm.Tags)
	}
	t.tags[key] = value
}

func (t *Tags) Remove(key string) {
	delete(t.tags, key)
}

func (t *Tags) Len() int {
	return len(t.tags)
}

// Map returns a copy of the current tags.
func (t *Tags) Map() osm.Tags {
	return copyTags(t.tags)
}

// HasChanges returns whether the current tags differ from the tags
// this store was created with.
func (t *Tags) HasChanges() bool {
	if len(t.orig) != len(t.tags) {
		return true
	}
	for k, v := range t.tags {
		if ov, ok := t.orig[k]; !ok || ov != v {
			return true
		}
	}
	return false
}

type ChangeType int

const (
	Add ChangeType = iota
	Modify
	Delete
)

func (ct ChangeType) String() string {
	switch ct {
	case Add:
		return "add"
	case Modify:
		return "modify"
	case Delete:
		return "delete"
	}
	return fmt.Sprintf("ChangeType(%d)", int(ct))
}

type Change struct {
	Type     ChangeType
	Key      string
	Value    string
	OldValue string
}

func (c Change) String() string {
	switch c.Type {
	case Add:
		return fmt.Sprintf("+ %s=%s", c.Key, c.Value)
	case Modify:
		return fmt.Sprintf("~ %s=%s (was %s)", c.Key, c.Value, c.OldValue)
	default:
		return fmt.Sprintf("- %s=%s", c.Key, c.OldValue)
	}
}

// Changes returns all differences between the initial and the current
// tags, sorted by key.
func (t *Tags) Changes() []Change {
	changes := []Change{}
	for k, v := range t.tags {
		ov, ok := t.orig[k]
		if !ok {
			changes = append(changes, Change{Type: Add, Key: k, Value: v})
		} else if ov != v {
			changes = append(changes, Change{Type: Modify, Key: k, Value: v, OldValue: ov})
		}
	}
	for k, ov := range t.orig {
		if _, ok := t.tags[k]; !ok {
			changes = append(changes, Change{Type: Delete, Key: k, OldValue: ov})
		}
	}
	sort.Slice(changes, func(i, j int) bool {
		return changes[i].Key < changes[j].Key
	})
	return changes
}

func (t *Tags) String() string {
	return fmt.Sprintf("%v", map[string]string(t.tags))
}
