// Package normalize merges the cycleway keys of ways in OSM change files.
//
// Ways with equal values for cycleway:left and cycleway:right (and the
// :lane, :oneway and :segregated keys) are rewritten to the single
// cycleway key. No other tags are changed.
package normalize

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/omniscale/cycletag/cycleway"
	"github.com/omniscale/cycletag/element"
	"github.com/omniscale/cycletag/log"
	"github.com/omniscale/cycletag/stats"
	osm "github.com/omniscale/go-osm"
	"github.com/omniscale/go-osm/parser/diff"
)

type Result struct {
	WayID   int64            `yaml:"id"`
	Tags    osm.Tags         `yaml:"tags"`
	Changes []element.Change `yaml:"-"`
}

// Way merges the cycleway keys of a single way. It returns nil if
// nothing changed. Ways with keys for both sides and for single sides
// are not changed, merging could overwrite one of the values.
func Way(way *osm.Way) *Result {
	tags := element.NewTags(way.Tags)
	if conflicts := cycleway.ConflictingSides(tags); len(conflicts) > 0 {
		log.Warnf("way %d: %s tagged for both and single sides", way.ID, strings.Join(conflicts, ", "))
		return nil
	}
	cycleway.MergeSides(tags)
	if !tags.HasChanges() {
		return nil
	}
	return &Result{WayID: way.ID, Tags: tags.Map(), Changes: tags.Changes()}
}

// File normalizes all created and modified ways of an .osc or .osc.gz
// file.
func File(ctx context.Context, oscFile string, counter *stats.Counter) ([]Result, error) {
	f, err := os.Open(oscFile)
	if err != nil {
		return nil, errors.Wrap(err, "opening diff file")
	}
	defer f.Close()

	results, err := Reader(ctx, f, strings.HasSuffix(oscFile, ".gz"), counter)
	if err != nil {
		return nil, errors.Wrapf(err, "normalizing %s", oscFile)
	}
	return results, nil
}

// Reader normalizes all created and modified ways from r.
func Reader(ctx context.Context, r io.Reader, gzipped bool, counter *stats.Counter) ([]Result, error) {
	diffs := make(chan osm.Diff)
	config := diff.Config{
		Diffs: diffs,
	}

	var parser *diff.Parser
	if gzipped {
		var err error
		parser, err = diff.NewGZIP(r, config)
		if err != nil {
			return nil, errors.Wrap(err, "initializing diff parser")
		}
	} else {
		parser = diff.New(r, config)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel() // make sure parser is stopped if we return early

	parseError := make(chan error, 1)
	go func() {
		parseError <- parser.Parse(ctx)
	}()

	var results []Result
	for elem := range diffs {
		if elem.Way == nil {
			continue
		}
		if counter != nil {
			counter.AddElements(1)
		}
		if elem.Delete || !cycleway.HasCyclewayTags(element.NewTags(elem.Way.Tags)) {
			if counter != nil {
				counter.AddSkipped(1)
			}
			continue
		}
		res := Way(elem.Way)
		if res == nil {
			if counter != nil {
				counter.AddUnchanged(1)
			}
			continue
		}
		if counter != nil {
			counter.AddChanged(1)
		}
		results = append(results, *res)
	}

	if err := <-parseError; err != nil {
		return nil, errors.Wrap(err, "parsing diff")
	}
	return results, nil
}
