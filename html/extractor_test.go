package html_test

import (
	"regexp"
	"testing"

	pwhtml "github.com/fwojciec/pagewatch/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "<ul><li>A</li><li id='b'>B</li></ul><ol><li>C</li><li class='d'>D</li></ol>"

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("selector queries", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			selector string
			regex    string
			want     string
			wantOK   bool
		}{
			{name: "tag step", selector: "li", want: "A", wantOK: true},
			{name: "id step", selector: "#b", want: "B", wantOK: true},
			{name: "descendant steps", selector: "ol li", want: "C", wantOK: true},
			{name: "class step", selector: ".d", want: "D", wantOK: true},
			{name: "regex filters within matched nodes", selector: "ul li", regex: "B|X", want: "B", wantOK: true},
			{name: "regex with no match in matched nodes", selector: "ol li", regex: "B|X", wantOK: false},
			{name: "empty selector matches first text node", selector: "", want: "A", wantOK: true},
			{name: "selector that never matches", selector: "table td", wantOK: false},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				opts := []pwhtml.Option{pwhtml.WithSelector(tt.selector)}
				if tt.regex != "" {
					opts = append(opts, pwhtml.WithRegex(regexp.MustCompile(tt.regex)))
				}
				extractor := pwhtml.NewExtractor(opts...)

				got, ok := extractor.Extract(sample)

				require.Equal(t, tt.wantOK, ok)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("whole body ignores selector and regex", func(t *testing.T) {
		t.Parallel()

		extractor := pwhtml.NewExtractor(
			pwhtml.WithWholeBody(),
			pwhtml.WithSelector("li"),
			pwhtml.WithRegex(regexp.MustCompile("B|X")),
		)

		got, ok := extractor.Extract(sample)

		require.True(t, ok)
		assert.Equal(t, sample, got)
	})

	t.Run("regex alone searches the whole body", func(t *testing.T) {
		t.Parallel()

		extractor := pwhtml.NewExtractor(pwhtml.WithRegex(regexp.MustCompile(`id='([a-z]+)'`)))

		got, ok := extractor.Extract(sample)

		require.True(t, ok)
		assert.Equal(t, "id='b'", got)
	})

	t.Run("no query configured matches nothing", func(t *testing.T) {
		t.Parallel()

		extractor := pwhtml.NewExtractor()

		_, ok := extractor.Extract(sample)

		assert.False(t, ok)
	})

	t.Run("tolerates unbalanced and malformed markup", func(t *testing.T) {
		t.Parallel()

		extractor := pwhtml.NewExtractor(pwhtml.WithSelector("li"))

		got, ok := extractor.Extract("</div></div><li>A<li>B<garbage <<")

		require.True(t, ok)
		assert.Equal(t, "A", got)
	})

	t.Run("self-closing tags do not satisfy text steps", func(t *testing.T) {
		t.Parallel()

		extractor := pwhtml.NewExtractor(pwhtml.WithSelector("img"))

		_, ok := extractor.Extract("<div><img src='x.png'/>after image</div>")

		assert.False(t, ok)
	})

	t.Run("decodes entities in text nodes", func(t *testing.T) {
		t.Parallel()

		extractor := pwhtml.NewExtractor(pwhtml.WithSelector("li"))

		got, ok := extractor.Extract("<ul><li>A &amp; B</li></ul>")

		require.True(t, ok)
		assert.Equal(t, "A & B", got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		extractor := pwhtml.NewExtractor(pwhtml.WithSelector("ol li"))

		first, ok1 := extractor.Extract(sample)
		second, ok2 := extractor.Extract(sample)

		require.True(t, ok1)
		require.True(t, ok2)
		assert.Equal(t, first, second)
	})
}
