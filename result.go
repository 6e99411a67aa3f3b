package pagewatch

// Result is the outcome of a single extraction cycle. OK reports whether
// any content matched; Value is meaningful only when OK is true.
//
// Result is comparable: the poll loop detects changes by comparing
// consecutive Results directly, so a missing result ("no matches") is a
// valid, comparable value that can itself participate in a change.
type Result struct {
	Value string
	OK    bool
}
