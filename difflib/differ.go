// Package difflib renders unified diffs of wrapped text, for reporting
// whole-body changes in a readable form.
package difflib

import (
	"strings"

	"github.com/fwojciec/pagewatch"
	"github.com/mitchellh/go-wordwrap"
	"github.com/pmezard/go-difflib/difflib"
)

// wrapWidth is the column both sides are wrapped to before diffing.
// Diffing wrapped lines keeps the output stable for bodies that arrive as
// one long line.
const wrapWidth = 70

// Ensure Differ implements pagewatch.Differ at compile time.
var _ pagewatch.Differ = (*Differ)(nil)

// Differ produces line-wrapped unified diffs between two text values.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Diff returns a unified diff of prev against curr with one line of context.
// Returns the empty string when the wrapped texts are identical or the diff
// cannot be computed.
func (d *Differ) Diff(prev, curr string) string {
	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:       wrapLines(prev),
		B:       wrapLines(curr),
		Context: 1,
	})
	if err != nil {
		return ""
	}
	return strings.TrimRight(out, "\n")
}

// wrapLines collapses whitespace runs and wraps the text at wrapWidth,
// returning newline-terminated lines as the diff engine expects.
func wrapLines(s string) []string {
	collapsed := strings.Join(strings.Fields(s), " ")
	if collapsed == "" {
		return nil
	}
	lines := strings.Split(wordwrap.WrapString(collapsed, wrapWidth), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, line+"\n")
	}
	return out
}
