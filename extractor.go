package pagewatch

// Extractor extracts a fragment of interest from a fetched response body.
type Extractor interface {
	// Extract applies the configured query to the body and returns the
	// first match in document order. A selector or regex that matches
	// nothing is a normal outcome, reported as ok == false, never as an
	// error. Extract is a pure function of its input: running it twice on
	// the same body yields the same result.
	Extract(body string) (match string, ok bool)
}
