package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagewatch"
	"github.com/fwojciec/pagewatch/afplay"
	pwdifflib "github.com/fwojciec/pagewatch/difflib"
	pwhtml "github.com/fwojciec/pagewatch/html"
	pwhttp "github.com/fwojciec/pagewatch/http"
	pwslog "github.com/fwojciec/pagewatch/slog"
	"github.com/fwojciec/pagewatch/watch"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if pagewatch.ErrorCode(err) == pagewatch.EINVALID {
			fmt.Fprintln(os.Stderr, pagewatch.ErrorMessage(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagewatch"),
		kong.Description("Query a URL for content and watch it for changes"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	logger := pwslog.NewLogger(stderr, cli.Verbose)

	// Configuration errors fail here, before any network activity.
	var re *regexp.Regexp
	if cli.Regex != nil {
		re, err = regexp.Compile(*cli.Regex)
		if err != nil {
			return pagewatch.Errorf(pagewatch.EINVALID, "invalid regex %q: %s", *cli.Regex, err)
		}
	}

	alerter, err := newAlerter(cli.Sound, stdout)
	if err != nil {
		return err
	}

	var opts []pwhtml.Option
	if cli.Whole {
		opts = append(opts, pwhtml.WithWholeBody())
	}
	if cli.Query != nil {
		opts = append(opts, pwhtml.WithSelector(*cli.Query))
	}
	if re != nil {
		opts = append(opts, pwhtml.WithRegex(re))
	}
	extractor := pwhtml.NewExtractor(opts...)

	var fetcher pagewatch.Fetcher = pwhttp.NewFetcher(pwhttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()
	if cli.Verbose >= 2 {
		fetcher = pwslog.NewLoggingFetcher(fetcher, logger)
	}

	w := &watch.Watcher{
		Fetcher:     fetcher,
		Extractor:   extractor,
		Alerter:     alerter,
		Differ:      pwdifflib.NewDiffer(),
		Logger:      logger,
		URL:         cli.URL,
		UntilChange: cli.UntilChange,
		WholeBody:   cli.Whole,
	}
	if cli.Interval != nil {
		w.Interval = *cli.Interval
	}

	return w.Run(ctx)
}

// newAlerter resolves the change alerter at startup: an explicitly requested
// system sound must exist (and requires macOS), otherwise macOS gets the
// default system sound and every other platform the terminal bell.
func newAlerter(sound *string, stdout io.Writer) (pagewatch.Alerter, error) {
	if sound != nil {
		return afplay.NewAlerter(*sound)
	}
	if afplay.Available() {
		return afplay.NewAlerter(afplay.DefaultSound)
	}
	return &watch.Bell{W: stdout}, nil
}
