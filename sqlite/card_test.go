package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pinnedref"
	"github.com/fwojciec/pinnedref/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCards() []*pinnedref.Card {
	return []*pinnedref.Card{
		{BookmarkID: 30, Title: "C", URL: "https://c.example/x", Domain: "c.example", Cards: []string{"<p><mark>c1</mark></p>", "<p><mark>c2</mark></p>"}},
		{BookmarkID: 10, Title: "A", URL: "https://a.example/x", Domain: "a.example", Cards: []string{"<p><mark>a</mark></p>"}},
		{BookmarkID: 20, Title: "B", URL: "https://a.example/y", Domain: "a.example", Cards: []string{"<h5><mark>b</mark></h5>"}},
	}
}

func TestCardService_ReplaceCards(t *testing.T) {
	t.Parallel()

	t.Run("stores corpus in order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCardService(db)
		ctx := context.Background()

		require.NoError(t, svc.ReplaceCards(ctx, testCards()))

		got, err := svc.FindCards(ctx, pinnedref.CardFilter{})
		require.NoError(t, err)
		assert.Equal(t, testCards(), got)
	})

	t.Run("replaces previous corpus", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCardService(db)
		ctx := context.Background()
		require.NoError(t, svc.ReplaceCards(ctx, testCards()))

		next := []*pinnedref.Card{{BookmarkID: 99, URL: "https://z.example", Domain: "z.example", Cards: []string{"<p>z</p>"}}}
		require.NoError(t, svc.ReplaceCards(ctx, next))

		got, err := svc.FindCards(ctx, pinnedref.CardFilter{})
		require.NoError(t, err)
		assert.Equal(t, next, got)

		var orphans int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cards WHERE bookmark_id != 99").Scan(&orphans))
		assert.Equal(t, 0, orphans)
	})

	t.Run("stores content hashes", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCardService(db)
		ctx := context.Background()
		require.NoError(t, svc.ReplaceCards(ctx, testCards()))

		hashes, err := svc.FindCardHashes(ctx, 30)

		require.NoError(t, err)
		require.Len(t, hashes, 2)
		assert.Len(t, hashes[0], 16)
		assert.NotEqual(t, hashes[0], hashes[1])

		_, err = svc.FindCardHashes(ctx, 1)
		assert.Equal(t, pinnedref.ENOTFOUND, pinnedref.ErrorCode(err))
	})

	t.Run("rejects duplicate bookmark ids", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCardService(db)
		cards := append(testCards(), &pinnedref.Card{BookmarkID: 10, URL: "https://a.example/z"})

		err := svc.ReplaceCards(context.Background(), cards)

		assert.Equal(t, pinnedref.ECONFLICT, pinnedref.ErrorCode(err))
	})

	t.Run("returns error for invalid card", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCardService(db)

		err := svc.ReplaceCards(context.Background(), []*pinnedref.Card{{}})

		assert.Equal(t, pinnedref.EINVALID, pinnedref.ErrorCode(err))
	})
}

func TestCardService_FindCards(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewCardService(db)
	require.NoError(t, svc.ReplaceCards(context.Background(), testCards()))

	t.Run("filters by bookmark ids", func(t *testing.T) {
		t.Parallel()

		got, err := svc.FindCards(context.Background(), pinnedref.CardFilter{BookmarkIDs: []int64{20, 30}})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(30), got[0].BookmarkID)
		assert.Equal(t, int64(20), got[1].BookmarkID)
	})

	t.Run("filters by domain", func(t *testing.T) {
		t.Parallel()

		domain := "a.example"
		got, err := svc.FindCards(context.Background(), pinnedref.CardFilter{Domain: &domain})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(10), got[0].BookmarkID)
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		got, err := svc.FindCards(context.Background(), pinnedref.CardFilter{Offset: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(10), got[0].BookmarkID)

		got, err = svc.FindCards(context.Background(), pinnedref.CardFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(20), got[0].BookmarkID)
	})

	t.Run("finds card by bookmark id", func(t *testing.T) {
		t.Parallel()

		got, err := svc.FindCardByBookmarkID(context.Background(), 20)
		require.NoError(t, err)
		assert.Equal(t, []string{"<h5><mark>b</mark></h5>"}, got.Cards)

		_, err = svc.FindCardByBookmarkID(context.Background(), 404)
		assert.Equal(t, pinnedref.ENOTFOUND, pinnedref.ErrorCode(err))
	})
}
