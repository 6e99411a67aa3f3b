// Package html implements streaming extraction over the golang.org/x/net/html
// tokenizer. It matches a compiled selector chain against the token stream in
// a single pass, without building a DOM.
package html

import (
	"regexp"

	"github.com/fwojciec/pagewatch"
)

// Matcher tracks how much of a selector chain is satisfied by the currently
// open tag ancestry. It consumes start-tag, end-tag and text events and
// records the first text node seen while the whole chain is satisfied.
//
// The cursor counts consecutive steps matched from position 0. Every start
// tag pushes a marker onto the stack recording whether that tag advanced the
// cursor, so a close rolls the cursor back correctly at any nesting depth.
type Matcher struct {
	steps []pagewatch.Step
	regex *regexp.Regexp

	cursor int
	stack  []bool
	match  string
	ok     bool
}

// NewMatcher returns a Matcher for the given selector chain. A nil or empty
// chain is vacuously satisfied and matches the first text node in document
// order. If regex is non-nil it filters text within matched nodes: the
// recorded value is the first regex match rather than the raw text.
func NewMatcher(steps []pagewatch.Step, regex *regexp.Regexp) *Matcher {
	return &Matcher{steps: steps, regex: regex}
}

// StartTag advances the matcher for an opening tag. Only the next unmatched
// step is tested: a sibling that doesn't match simply doesn't advance the
// cursor, but still opens a stack frame.
func (m *Matcher) StartTag(tag string, attrs []pagewatch.Attr) {
	advanced := false
	if m.cursor < len(m.steps) && m.steps[m.cursor](tag, attrs) {
		m.cursor++
		advanced = true
	}
	m.stack = append(m.stack, advanced)
}

// EndTag rolls the matcher back for a closing tag. Tokenizers may emit more
// end tags than start tags on malformed input; a pop on an empty stack is a
// no-op.
func (m *Matcher) EndTag() {
	if len(m.stack) == 0 {
		return
	}
	advanced := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	if advanced {
		m.cursor--
	}
}

// Text offers a text node to the matcher. It is recorded only when no match
// has been recorded yet and the whole chain is currently satisfied.
// First-match-wins: once recorded, later text events are ignored.
func (m *Matcher) Text(data string) {
	if m.ok || m.cursor != len(m.steps) {
		return
	}
	if m.regex != nil {
		if loc := m.regex.FindStringIndex(data); loc != nil {
			m.match, m.ok = data[loc[0]:loc[1]], true
		}
		return
	}
	m.match, m.ok = data, true
}

// Match returns the recorded text, if any.
func (m *Matcher) Match() (string, bool) {
	return m.match, m.ok
}

// Reset returns the matcher to its initial state so it can be reused for
// another parse pass.
func (m *Matcher) Reset() {
	m.cursor = 0
	m.stack = m.stack[:0]
	m.match, m.ok = "", false
}
