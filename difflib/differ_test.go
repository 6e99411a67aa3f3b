package difflib_test

import (
	"strings"
	"testing"

	pwdifflib "github.com/fwojciec/pagewatch/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffer_Diff(t *testing.T) {
	t.Parallel()

	t.Run("shows removed and added lines", func(t *testing.T) {
		t.Parallel()

		differ := pwdifflib.NewDiffer()

		diff := differ.Diff("the quick brown fox", "the quick red fox")

		require.NotEmpty(t, diff)
		assert.Contains(t, diff, "-the quick brown fox")
		assert.Contains(t, diff, "+the quick red fox")
	})

	t.Run("returns empty string for identical text", func(t *testing.T) {
		t.Parallel()

		differ := pwdifflib.NewDiffer()

		assert.Empty(t, differ.Diff("same text", "same text"))
	})

	t.Run("collapses whitespace before comparing", func(t *testing.T) {
		t.Parallel()

		differ := pwdifflib.NewDiffer()

		assert.Empty(t, differ.Diff("same  text", "same\n\ntext"))
	})

	t.Run("wraps long lines before diffing", func(t *testing.T) {
		t.Parallel()

		differ := pwdifflib.NewDiffer()
		prev := strings.Repeat("alpha beta gamma delta ", 20) + "END"
		curr := strings.Repeat("alpha beta gamma delta ", 20) + "CHANGED"

		diff := differ.Diff(prev, curr)

		require.NotEmpty(t, diff)
		for _, line := range strings.Split(diff, "\n") {
			assert.LessOrEqual(t, len(line), 72)
		}
		// Only the tail changed, so the shared prefix stays out of the diff.
		assert.Less(t, len(diff), len(prev))
	})

	t.Run("handles empty inputs", func(t *testing.T) {
		t.Parallel()

		differ := pwdifflib.NewDiffer()

		diff := differ.Diff("", "now there is content")

		require.NotEmpty(t, diff)
		assert.Contains(t, diff, "+now there is content")
	})
}
