package htmlscan_test

import (
	"testing"

	"github.com/fwojciec/htmlscan"
	"github.com/stretchr/testify/assert"
)

func TestMatchIndex_Add(t *testing.T) {
	t.Parallel()

	t.Run("preserves first-seen file order", func(t *testing.T) {
		t.Parallel()

		index := htmlscan.MatchIndex{}
		index.Add("form", "b.html")
		index.Add("form", "a.html")
		index.Add("form", "c.html")

		assert.Equal(t, []string{"b.html", "a.html", "c.html"}, index.Files("form"))
	})

	t.Run("credits a file only once per keyword", func(t *testing.T) {
		t.Parallel()

		index := htmlscan.MatchIndex{}
		index.Add("form", "a.html")
		index.Add("form", "a.html")

		assert.Equal(t, []string{"a.html"}, index.Files("form"))
	})

	t.Run("keywords are independent", func(t *testing.T) {
		t.Parallel()

		index := htmlscan.MatchIndex{}
		index.Add("form", "a.html")
		index.Add("table", "a.html")

		assert.Equal(t, []string{"a.html"}, index.Files("form"))
		assert.Equal(t, []string{"a.html"}, index.Files("table"))
	})
}

func TestMatchIndex_Keywords(t *testing.T) {
	t.Parallel()

	t.Run("sorted lexicographically regardless of insertion order", func(t *testing.T) {
		t.Parallel()

		index := htmlscan.MatchIndex{}
		index.Add("table", "a.html")
		index.Add("form", "a.html")
		index.Add("gallery", "b.html")

		assert.Equal(t, []string{"form", "gallery", "table"}, index.Keywords())
	})

	t.Run("empty index has no keywords", func(t *testing.T) {
		t.Parallel()

		index := htmlscan.MatchIndex{}

		assert.Empty(t, index.Keywords())
	})
}

func TestMatchIndex_Files_UnknownKeyword(t *testing.T) {
	t.Parallel()

	index := htmlscan.MatchIndex{}

	assert.Empty(t, index.Files("missing"))
}
