// Package watch implements the poll loop: fetch, extract, report, and alert
// when the extracted value changes between cycles.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagewatch"
	"golang.org/x/time/rate"
)

// Watcher repeatedly fetches a URL, extracts a fragment from the response
// and reports changes between consecutive cycles. All collaborators are
// injected; the zero value is not usable.
//
// The loop is synchronous and single-threaded: each fetch blocks the loop,
// each wait blocks the loop. The only state carried across iterations is the
// previous cycle's Result.
type Watcher struct {
	Fetcher   pagewatch.Fetcher
	Extractor pagewatch.Extractor
	Alerter   pagewatch.Alerter
	Differ    pagewatch.Differ
	Logger    *slog.Logger

	URL string

	// Interval between cycles. Zero or negative means single-shot.
	Interval time.Duration

	// UntilChange stops the loop after the first detected change.
	UntilChange bool

	// WholeBody adjusts reporting: byte counts instead of full bodies in
	// until-change mode, and a unified diff on change.
	WholeBody bool
}

// Run executes the watch loop until it completes (single-shot, until-change
// satisfied) or the context is canceled. Cancellation is a clean exit, not
// an error. Transport errors are fatal in single-shot mode; when polling
// they are logged and the cycle counts as no-match.
func (w *Watcher) Run(ctx context.Context) error {
	prev, err := w.cycle(ctx)
	if err != nil {
		if w.Interval <= 0 {
			return err
		}
		w.Logger.Warn("fetch failed", "err", err)
	}
	w.report(prev)

	if w.Interval <= 0 {
		return nil
	}

	limiter := rate.NewLimiter(rate.Every(w.Interval), 1)
	// The bucket starts full; drain it so the first wait below spans a
	// whole interval.
	limiter.Allow()

	for {
		w.Logger.Debug("going to sleep", "interval", w.Interval)
		if err := limiter.Wait(ctx); err != nil {
			return nil
		}

		cur, err := w.cycle(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			w.Logger.Warn("fetch failed", "err", err)
		}
		w.report(cur)

		if cur != prev {
			w.alert(ctx)

			if w.WholeBody && prev.OK && cur.OK && w.Differ != nil {
				if diff := w.Differ.Diff(prev.Value, cur.Value); diff != "" {
					w.Logger.Info(diff)
				}
			}

			if w.UntilChange {
				return nil
			}
		}

		prev = cur
	}
}

// cycle performs one fetch + extract. A non-200 response is a warning and a
// no-match, never an error; only transport failures propagate.
func (w *Watcher) cycle(ctx context.Context) (pagewatch.Result, error) {
	body, err := w.Fetcher.Fetch(ctx, w.URL)
	if err != nil {
		if pagewatch.ErrorCode(err) == pagewatch.EUNAVAILABLE {
			w.Logger.Warn(pagewatch.ErrorMessage(err))
			return pagewatch.Result{}, nil
		}
		return pagewatch.Result{}, err
	}

	value, ok := w.Extractor.Extract(body)
	return pagewatch.Result{Value: value, OK: ok}, nil
}

// report logs the outcome of one cycle. In whole-body until-change mode the
// body would drown the log, so only its length is reported.
func (w *Watcher) report(r pagewatch.Result) {
	if !r.OK {
		w.Logger.Warn("no matches")
		return
	}
	if w.WholeBody {
		w.Logger.Debug("body digest", "xxhash", fmt.Sprintf("%016x", xxhash.Sum64String(r.Value)))
	}
	if w.UntilChange && w.WholeBody {
		w.Logger.Info(fmt.Sprintf("%d bytes", len(r.Value)))
		return
	}
	w.Logger.Info(r.Value)
}

// alert signals the change. Best-effort: a failing alerter is logged at
// debug level and otherwise ignored.
func (w *Watcher) alert(ctx context.Context) {
	if w.Alerter == nil {
		return
	}
	if err := w.Alerter.Alert(ctx); err != nil {
		w.Logger.Debug("alert failed", "err", err)
	}
}
