package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/omniscale/cycletag"
	"github.com/omniscale/cycletag/config"
	"github.com/omniscale/cycletag/cycleway"
	"github.com/omniscale/cycletag/edit"
	"github.com/omniscale/cycletag/element"
	"github.com/omniscale/cycletag/log"
	"github.com/omniscale/cycletag/normalize"
	"github.com/omniscale/cycletag/stats"
	osm "github.com/omniscale/go-osm"

	"gopkg.in/yaml.v2"
)

func printCmds() {
	fmt.Fprintf(os.Stderr, "Usage: %s COMMAND [args]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Available commands:")
	fmt.Fprintln(os.Stderr, "\tapply")
	fmt.Fprintln(os.Stderr, "\tnormalize")
	fmt.Fprintln(os.Stderr, "\tversion")
}

func main() {
	if len(os.Args) <= 1 {
		printCmds()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "apply":
		opts, files := config.ParseApply(os.Args[2:])
		apply(opts, files)
	case "normalize":
		opts, files := config.ParseNormalize(os.Args[2:])
		normalizeFiles(opts, files)
	case "version":
		fmt.Println(cycletag.Version)
	default:
		printCmds()
		log.Fatalf("[fatal] invalid command: '%s'", os.Args[1])
	}
}

// taggedElement is a single element of the output.
type taggedElement struct {
	ID      int64
	Tags    osm.Tags
	Changes []element.Change
}

func apply(opts config.Apply, files []string) {
	opts.SetLogLevel()
	enc := cycleway.Encoder{Now: opts.Now}
	counter := stats.NewCounter()

	var elems []taggedElement
	for _, fname := range files {
		step := log.Step("Applying " + fname)
		batch, err := edit.FromFile(fname)
		if err != nil {
			log.Fatal("[fatal] ", err)
		}
		if opts.LeftHandTraffic {
			batch.LeftHandTraffic = true
		}
		for _, res := range batch.Apply(enc, counter) {
			elems = append(elems, taggedElement{ID: res.ID, Tags: res.Tags, Changes: res.Changes})
		}
		step()
	}
	if err := write(os.Stdout, opts.Format, elems); err != nil {
		log.Fatal("[fatal] Writing results: ", err)
	}
	log.Printf("[info] %s", counter.Count())
}

func normalizeFiles(opts config.Normalize, files []string) {
	opts.SetLogLevel()
	counter := stats.NewCounter()

	var elems []taggedElement
	for _, fname := range files {
		step := log.Step("Normalizing " + fname)
		results, err := normalize.File(context.Background(), fname, counter)
		if err != nil {
			log.Fatal("[fatal] ", err)
		}
		for _, res := range results {
			elems = append(elems, taggedElement{ID: res.WayID, Tags: res.Tags, Changes: res.Changes})
		}
		step()
	}
	if err := write(os.Stdout, opts.Format, elems); err != nil {
		log.Fatal("[fatal] Writing results: ", err)
	}
	log.Printf("[info] %s", counter.Count())
}

type yamlElement struct {
	ID      int64    `yaml:"id"`
	Tags    osm.Tags `yaml:"tags"`
	Changes []string `yaml:"changes,omitempty"`
}

func write(w io.Writer, format string, elems []taggedElement) error {
	if format == "yaml" {
		out := make([]yamlElement, 0, len(elems))
		for _, e := range elems {
			ye := yamlElement{ID: e.ID, Tags: e.Tags}
			for _, c := range e.Changes {
				ye.Changes = append(ye.Changes, c.String())
			}
			out = append(out, ye)
		}
		b, err := yaml.Marshal(out)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}

	for _, e := range elems {
		if _, err := fmt.Fprintf(w, "way/%d\n", e.ID); err != nil {
			return err
		}
		for _, c := range e.Changes {
			if _, err := fmt.Fprintf(w, "  %s\n", c); err != nil {
				return err
			}
		}
	}
	return nil
}
