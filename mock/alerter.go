package mock

import (
	"context"

	"github.com/fwojciec/pagewatch"
)

var _ pagewatch.Alerter = (*Alerter)(nil)

// Alerter is a mock implementation of pagewatch.Alerter.
type Alerter struct {
	AlertFn func(ctx context.Context) error
}

func (a *Alerter) Alert(ctx context.Context) error {
	return a.AlertFn(ctx)
}
