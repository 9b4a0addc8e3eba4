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

func testNote() *pinnedref.Note {
	return &pinnedref.Note{
		BookmarkID: 42,
		Source:     "https://example.com/essay",
		Title:      `On "Craft"`,
		Domain:     "example.com",
		Highlights: 2,
		Content:    "**first**\n\n**second**",
	}
}

func TestFormatNote(t *testing.T) {
	t.Parallel()

	got := fs.FormatNote(testNote())

	want := `---
source: https://example.com/essay
title: "On \"Craft\""
domain: example.com
highlights: 2
---

**first**

**second**`

	assert.Equal(t, want, got)
}

func TestNotePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("example.com", "42.md"), fs.NotePath(testNote()))
	assert.Equal(t, filepath.Join("unknown", "7.md"), fs.NotePath(&pinnedref.Note{BookmarkID: 7}))
}

// Story: Atomic Note Export
// The store stages notes in a temp directory for atomic updates

func TestNoteStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewNoteStore(base, "notes")

	// When I save a note
	err := store.Save(context.Background(), testNote())

	// Then the file exists only in the temp directory
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "notes.tmp", "example.com", "42.md"))
	require.NoError(t, err, "file should exist in temp directory")
	_, err = os.Stat(filepath.Join(base, "notes"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestNoteStore_CommitReplacesFinalDirectory(t *testing.T) {
	t.Parallel()

	// Given a previous export and a store with a saved note
	base := t.TempDir()
	stale := filepath.Join(base, "notes", "old.example", "1.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0644))
	store := fs.NewNoteStore(base, "notes")
	require.NoError(t, store.Save(context.Background(), testNote()))

	// When I commit
	err := store.Commit()

	// Then the new note is published and the stale one is gone
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "notes", "example.com", "42.md"))
	require.NoError(t, err)
	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "notes.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestNoteStore_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewNoteStore(base, "notes")
	require.NoError(t, store.Save(context.Background(), testNote()))

	err := store.Abort()

	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "notes.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestNoteStore_SaveRejectsInvalidNote(t *testing.T) {
	t.Parallel()

	err := fs.NewNoteStore(t.TempDir(), "notes").Save(context.Background(), &pinnedref.Note{})

	assert.Equal(t, pinnedref.EINVALID, pinnedref.ErrorCode(err))
}
