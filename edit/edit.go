/*
Package edit applies cycleway choices from YAML edit files.

An edit file lists carriageways with their current tags and the new
cycleway for the left and/or right side:

	left_hand_traffic: false
	edits:
	  - id: 4711
	    tags: {highway: residential, oneway: "yes"}
	    left: none_no_oneway
	    right: {cycleway: track, direction: forward}
*/
package edit

import (
	"io/ioutil"

	"github.com/omniscale/cycletag/cycleway"
	"github.com/omniscale/cycletag/element"
	"github.com/omniscale/cycletag/log"
	"github.com/omniscale/cycletag/stats"
	osm "github.com/omniscale/go-osm"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

func FromFile(filename string) (*Batch, error) {
	b, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "reading edit file")
	}
	batch, err := New(b)
	if err != nil {
		return nil, errors.Wrapf(err, "loading edit file %s", filename)
	}
	return batch, nil
}

func New(b []byte) (*Batch, error) {
	batch := Batch{}
	if err := yaml.UnmarshalStrict(b, &batch); err != nil {
		return nil, err
	}
	if err := batch.prepare(); err != nil {
		return nil, err
	}
	return &batch, nil
}

type Result struct {
	ID      int64            `yaml:"id"`
	Tags    osm.Tags         `yaml:"tags"`
	Changes []element.Change `yaml:"-"`
}

// Apply writes all edits with enc and returns the new tags of each
// edit in the order of the file.
// changesTags returns whether changes contains more than updated check
// dates.
func changesTags(changes []element.Change) bool {
	for _, c := range changes {
		if !element.IsCheckDateKey(c.Key) {
			return true
		}
	}
	return false
}

func (b *Batch) Apply(enc cycleway.Encoder, counter *stats.Counter) []Result {
	results := make([]Result, 0, len(b.Edits))
	for _, e := range b.Edits {
		lht := b.LeftHandTraffic
		if e.LeftHandTraffic != nil {
			lht = *e.LeftHandTraffic
		}
		lr := cycleway.LeftAndRightCycleway{
			Left:  e.Left.resolve(false, lht),
			Right: e.Right.resolve(true, lht),
		}

		tags := element.NewTags(osm.Tags(e.Tags))
		enc.Apply(lr, tags, lht)

		changes := tags.Changes()
		if counter != nil {
			counter.AddElements(1)
			if changesTags(changes) {
				counter.AddChanged(1)
			} else {
				counter.AddUnchanged(1)
			}
		}
		log.Debugf("edit %d: left %v right %v: %d changes", e.ID, lr.Left, lr.Right, len(changes))
		results = append(results, Result{ID: e.ID, Tags: tags.Map(), Changes: changes})
	}
	return results
}
