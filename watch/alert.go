package watch

import (
	"context"
	"io"

	"github.com/fwojciec/pagewatch"
)

// Ensure Bell implements pagewatch.Alerter at compile time.
var _ pagewatch.Alerter = (*Bell)(nil)

// Bell is the fallback Alerter: it rings the terminal bell by writing the
// BEL control character to W.
type Bell struct {
	W io.Writer
}

// Alert writes the bell character.
func (b *Bell) Alert(_ context.Context) error {
	_, err := io.WriteString(b.W, "\a")
	return err
}
