package pagewatch

// Differ renders a human-readable diff between two extracted values.
// Used in whole-body mode, where the changed values are too large to eyeball.
type Differ interface {
	// Diff returns a unified diff of prev against curr, or the empty
	// string when the two render identically.
	Diff(prev, curr string) string
}
