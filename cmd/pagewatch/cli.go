package main

import "time"

// CLI defines the command-line interface structure for Kong.
//
// Query, Regex and Interval are pointers so that an explicitly supplied
// empty or zero value is distinguishable from an omitted flag: `-q ""` is a
// valid selector with zero steps, and an omitted interval means single-shot.
type CLI struct {
	URL         string         `arg:"" help:"URL to request"`
	Whole       bool           `short:"w" help:"Match the whole response body (ignores --query and --regex)"`
	Query       *string        `short:"q" placeholder:"SELECTOR" help:"CSS-like selector to query (supports tag, .class and #id)"`
	Regex       *string        `short:"r" placeholder:"REGEX" help:"Regular expression to search for"`
	Interval    *time.Duration `short:"i" placeholder:"DURATION" help:"Interval between queries (e.g. 5s); omit for a single query"`
	UntilChange bool           `short:"u" help:"Poll until the match changes, then exit"`
	Sound       *string        `short:"s" help:"System sound to play on change (macOS only)"`
	Timeout     time.Duration  `short:"t" default:"30s" help:"HTTP request timeout"`
	Verbose     int            `short:"v" type:"counter" help:"Verbose output (repeat for debug)"`
}
