package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/omniscale/cycletag/element"
	"github.com/omniscale/cycletag/log"
	"github.com/pkg/errors"
)

type Config struct {
	LeftHandTraffic bool   `json:"left_hand_traffic"`
	CheckDate       string `json:"check_date"`
	Format          string `json:"format"`
	Quiet           bool   `json:"quiet"`
}

const defaultFormat = "text"

type Base struct {
	ConfigFile      string
	LeftHandTraffic bool
	CheckDate       string
	Format          string
	Quiet           bool
	Debug           bool
}

func (o *Base) updateFromConfig() error {
	conf := &Config{}

	if o.ConfigFile != "" {
		f, err := os.Open(o.ConfigFile)
		if err != nil {
			return errors.Wrap(err, "opening config")
		}
		defer f.Close()
		decoder := json.NewDecoder(f)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&conf); err != nil {
			return errors.Wrapf(err, "parsing config %s", o.ConfigFile)
		}
	}

	if !o.LeftHandTraffic {
		o.LeftHandTraffic = conf.LeftHandTraffic
	}
	if o.CheckDate == "" {
		o.CheckDate = conf.CheckDate
	}
	if o.Format == defaultFormat && conf.Format != "" {
		o.Format = conf.Format
	}
	if !o.Quiet {
		o.Quiet = conf.Quiet
	}
	return nil
}

func (o *Base) check() []error {
	errs := []error{}
	if o.Format != "text" && o.Format != "yaml" {
		errs = append(errs, errors.Errorf("unsupported -format '%s', only text or yaml", o.Format))
	}
	if o.CheckDate != "" {
		if _, err := time.Parse(element.CheckDateFormat, o.CheckDate); err != nil {
			errs = append(errs, errors.Errorf("invalid -check-date '%s', expected YYYY-MM-DD", o.CheckDate))
		}
	}
	return errs
}

// Now returns the time used for check dates: the fixed -check-date or
// the current time.
func (o *Base) Now() time.Time {
	if o.CheckDate != "" {
		if t, err := time.Parse(element.CheckDateFormat, o.CheckDate); err == nil {
			return t
		}
	}
	return time.Now()
}

// SetLogLevel applies -quiet and -debug to the log package.
func (o *Base) SetLogLevel() {
	if o.Debug {
		log.SetMinLevel(log.LDebug)
	} else if o.Quiet {
		log.SetMinLevel(log.LWarn)
	}
}

func addBaseFlags(opts *Base, flags *flag.FlagSet) {
	flags.StringVar(&opts.ConfigFile, "config", "", "config (json)")
	flags.StringVar(&opts.Format, "format", defaultFormat, "output format (text or yaml)")
	flags.BoolVar(&opts.Quiet, "quiet", false, "quiet log output")
	flags.BoolVar(&opts.Debug, "debug", false, "debug log output")
}

type Apply struct {
	Base
}

type Normalize struct {
	Base
}

func applyFlags() (*flag.FlagSet, *Apply) {
	opts := Apply{}
	flags := flag.NewFlagSet("apply", flag.ContinueOnError)
	addBaseFlags(&opts.Base, flags)
	flags.BoolVar(&opts.LeftHandTraffic, "lht", false, "left hand traffic, if not set in the edit file")
	flags.StringVar(&opts.CheckDate, "check-date", "", "date for check_date tags (YYYY-MM-DD), defaults to today")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s apply [args] edits.yml [...]\n\n", os.Args[0])
		flags.PrintDefaults()
	}
	return flags, &opts
}

func normalizeFlags() (*flag.FlagSet, *Normalize) {
	opts := Normalize{}
	flags := flag.NewFlagSet("normalize", flag.ContinueOnError)
	addBaseFlags(&opts.Base, flags)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s normalize [args] [.osc/.osc.gz, ...]\n\n", os.Args[0])
		flags.PrintDefaults()
	}
	return flags, &opts
}

func parse(flags *flag.FlagSet, base *Base, args []string) ([]string, []error) {
	if err := flags.Parse(args); err != nil {
		return nil, []error{err}
	}
	if err := base.updateFromConfig(); err != nil {
		return nil, []error{err}
	}
	errs := base.check()
	if flags.NArg() == 0 {
		errs = append(errs, errors.New("missing input files"))
	}
	return flags.Args(), errs
}

func ParseApply(args []string) (Apply, []string) {
	flags, opts := applyFlags()
	files, errs := parse(flags, &opts.Base, args)
	if len(errs) != 0 {
		reportErrors(flags, errs)
	}
	return *opts, files
}

func ParseNormalize(args []string) (Normalize, []string) {
	flags, opts := normalizeFlags()
	files, errs := parse(flags, &opts.Base, args)
	if len(errs) != 0 {
		reportErrors(flags, errs)
	}
	return *opts, files
}

func reportErrors(flags *flag.FlagSet, errs []error) {
	if len(errs) == 1 && errs[0] == flag.ErrHelp {
		os.Exit(2)
	}
	fmt.Fprintln(os.Stderr, "errors in config/options:")
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "\t%s\n", err)
	}
	flags.Usage()
	os.Exit(2)
}
