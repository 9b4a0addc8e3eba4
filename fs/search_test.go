package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pinnedref"
	"github.com/fwojciec/pinnedref/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchIndexService(t *testing.T) {
	t.Parallel()

	t.Run("stores and searches index", func(t *testing.T) {
		t.Parallel()

		s := fs.NewSearchIndexService(t.TempDir())
		ctx := context.Background()
		idx := pinnedref.SearchIndex{
			"go":      {1, 2, 3},
			"channel": {2, 3},
		}
		require.NoError(t, s.ReplaceSearchIndex(ctx, idx))

		got, err := s.FindSearchIndex(ctx)
		require.NoError(t, err)
		assert.Equal(t, idx, got)

		ids, err := s.Search(ctx, "Go channel")
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 3}, ids)
	})

	t.Run("searches index written in any id order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, fs.IndexFile, `{"alpha": [3, 1, 2, 1], "beta": [2, 3, 1], "gamma": []}`)
		s := fs.NewSearchIndexService(dir)
		ctx := context.Background()

		got, err := s.FindSearchIndex(ctx)
		require.NoError(t, err)
		assert.Equal(t, pinnedref.SearchIndex{"alpha": {1, 2, 3}, "beta": {1, 2, 3}}, got)

		ids, err := s.Search(ctx, "alpha beta")
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, ids)

		ids, err = s.Search(ctx, "beta gamma")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("missing index returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewSearchIndexService(t.TempDir()).Search(context.Background(), "x")

		assert.Equal(t, pinnedref.ENOTFOUND, pinnedref.ErrorCode(err))
	})

	t.Run("writes token to id list object", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		s := fs.NewSearchIndexService(dir)
		require.NoError(t, s.ReplaceSearchIndex(context.Background(), pinnedref.SearchIndex{"go": {7}}))

		data, err := os.ReadFile(filepath.Join(dir, fs.IndexFile))

		require.NoError(t, err)
		assert.JSONEq(t, `{"go":[7]}`, string(data))
	})
}

func TestWriteSummary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fragment := "<div class='col'></div><div class='col'></div>"

	require.NoError(t, fs.WriteSummary(dir, fragment))

	data, err := os.ReadFile(filepath.Join(dir, fs.SummaryFile))
	require.NoError(t, err)
	assert.Equal(t, fragment, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should be renamed away")
}
