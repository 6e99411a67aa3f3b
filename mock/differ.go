package mock

import "github.com/fwojciec/pagewatch"

var _ pagewatch.Differ = (*Differ)(nil)

// Differ is a mock implementation of pagewatch.Differ.
type Differ struct {
	DiffFn func(prev, curr string) string
}

func (d *Differ) Diff(prev, curr string) string {
	return d.DiffFn(prev, curr)
}
