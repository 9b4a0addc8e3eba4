package fs

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/pinnedref"
)

// Ensure NoteStore implements pinnedref.NoteStore at compile time.
var _ pinnedref.NoteStore = (*NoteStore)(nil)

// NoteStore writes notes as Markdown files with atomic publication.
// Notes are saved to a temporary directory, then moved into place on Commit.
type NoteStore struct {
	baseDir string
	name    string
}

// NewNoteStore creates a new NoteStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewNoteStore(baseDir, name string) *NoteStore {
	return &NoteStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *NoteStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *NoteStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// NotePath returns the path of a note relative to the export directory:
// one directory per domain, one file per bookmark.
func NotePath(note *pinnedref.Note) string {
	domain := note.Domain
	if domain == "" {
		domain = "unknown"
	}
	return filepath.Join(domain, strconv.FormatInt(note.BookmarkID, 10)+".md")
}

// Save writes the note into the temporary directory.
func (s *NoteStore) Save(ctx context.Context, note *pinnedref.Note) error {
	if err := note.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), NotePath(note))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(FormatNote(note)), 0644)
}

// FormatNote formats a note with YAML frontmatter.
func FormatNote(note *pinnedref.Note) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(note.Source)
	b.WriteString("\ntitle: ")
	b.WriteString(strconv.Quote(note.Title))
	b.WriteString("\ndomain: ")
	b.WriteString(note.Domain)
	b.WriteString("\nhighlights: ")
	b.WriteString(strconv.Itoa(note.Highlights))
	b.WriteString("\n---\n\n")
	b.WriteString(note.Content)
	return b.String()
}

// Commit replaces the output directory with the saved notes.
func (s *NoteStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved notes.
func (s *NoteStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
