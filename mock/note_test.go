package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pinnedref"
	"github.com/fwojciec/pinnedref/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SaveFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *pinnedref.Note
		s := &mock.NoteStore{
			SaveFn: func(_ context.Context, note *pinnedref.Note) error {
				calledWith = note
				return nil
			},
		}

		note := &pinnedref.Note{
			BookmarkID: 1,
			Source:     "https://example.com/post",
			Title:      "Post",
			Content:    "==marked==",
		}

		err := s.Save(context.Background(), note)

		require.NoError(t, err)
		assert.Equal(t, note, calledWith)
	})
}
