package html

import (
	"regexp"
	"strings"

	"github.com/fwojciec/pagewatch"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagewatch.Extractor at compile time.
var _ pagewatch.Extractor = (*Extractor)(nil)

// Extractor extracts content from response bodies. Depending on
// configuration it returns the whole body, streams the body through a
// selector Matcher, or searches the body with a regular expression.
type Extractor struct {
	whole    bool
	hasQuery bool
	steps    []pagewatch.Step
	regex    *regexp.Regexp
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithWholeBody makes the extractor return the body unmodified, ignoring
// any selector or regex.
func WithWholeBody() Option {
	return func(e *Extractor) {
		e.whole = true
	}
}

// WithSelector sets the selector query. An empty query is a valid selector
// with zero steps; it matches the first text node in the document.
func WithSelector(query string) Option {
	return func(e *Extractor) {
		e.hasQuery = true
		e.steps = pagewatch.CompileSelector(query)
	}
}

// WithRegex sets the regular expression. Combined with WithSelector it
// filters text within matched nodes; alone it searches the whole body.
func WithRegex(re *regexp.Regexp) Option {
	return func(e *Extractor) {
		e.regex = re
	}
}

// NewExtractor creates a new Extractor. With no options it matches nothing.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract applies the configured query to the body and returns the first
// match in document order.
func (e *Extractor) Extract(body string) (string, bool) {
	if e.whole {
		return body, true
	}
	if e.hasQuery {
		return e.matchDocument(body)
	}
	if e.regex != nil {
		if loc := e.regex.FindStringIndex(body); loc != nil {
			return body[loc[0]:loc[1]], true
		}
	}
	return "", false
}

// matchDocument streams the body through a fresh Matcher. Tokenization is
// best-effort: the tokenizer never fails on malformed input, it stops at the
// first error token (EOF included) and the match recorded so far stands.
func (e *Extractor) matchDocument(body string) (string, bool) {
	m := NewMatcher(e.steps, e.regex)
	z := html.NewTokenizer(strings.NewReader(body))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return m.Match()
		case html.StartTagToken:
			tag, attrs := tagAttrs(z)
			m.StartTag(tag, attrs)
		case html.SelfClosingTagToken:
			// Cannot contain text; open and close in one step.
			tag, attrs := tagAttrs(z)
			m.StartTag(tag, attrs)
			m.EndTag()
		case html.EndTagToken:
			m.EndTag()
		case html.TextToken:
			m.Text(string(z.Text()))
			if _, ok := m.Match(); ok {
				return m.Match()
			}
		}
	}
}

// tagAttrs reads the tag name and attribute list of the current tag token.
func tagAttrs(z *html.Tokenizer) (string, []pagewatch.Attr) {
	name, hasAttr := z.TagName()
	var attrs []pagewatch.Attr
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		attrs = append(attrs, pagewatch.Attr{Key: string(key), Val: string(val)})
	}
	return string(name), attrs
}
