package mock

import "github.com/fwojciec/pagewatch"

var _ pagewatch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagewatch.Extractor.
type Extractor struct {
	ExtractFn func(body string) (string, bool)
}

func (e *Extractor) Extract(body string) (string, bool) {
	return e.ExtractFn(body)
}
