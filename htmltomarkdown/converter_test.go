package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/pinnedref"
	"github.com/fwojciec/pinnedref/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("renders marks as bold", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>Read <mark>slowly and often</mark> please.</p>`)

		require.NoError(t, err)
		assert.Equal(t, "Read **slowly and often** please.", md)
	})

	t.Run("converts heading cards", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<h5><mark>A minor heading</mark></h5>`)

		require.NoError(t, err)
		assert.Contains(t, md, "##### ")
		assert.Contains(t, md, "**A minor heading**")
	})

	t.Run("keeps links", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>See <a href="https://example.com">the source</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[the source](https://example.com)")
	})

	t.Run("converts italic text", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>An <em>aside</em> here.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "*aside*")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  ")

		assert.Equal(t, pinnedref.EINVALID, pinnedref.ErrorCode(err))
	})
}
