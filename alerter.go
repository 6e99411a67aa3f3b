package pagewatch

import "context"

// Alerter signals the user that the watched value changed.
// Alerting is best-effort: callers log failures and carry on, a broken
// sound device must never stop the poll loop.
type Alerter interface {
	Alert(ctx context.Context) error
}
