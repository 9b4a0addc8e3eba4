package pinnedref

import "context"

// Note is a card exported as a standalone Markdown document.
type Note struct {
	BookmarkID int64
	Source     string
	Title      string
	Domain     string
	Highlights int

	// Content is the Markdown body below the frontmatter.
	Content string
}

// Validate returns an error if the note is missing required fields.
func (n *Note) Validate() error {
	if n.BookmarkID == 0 {
		return Errorf(EINVALID, "note bookmark id required")
	}
	if n.Source == "" {
		return Errorf(EINVALID, "note source required")
	}
	return nil
}

// NoteStore stores exported notes with atomic publication.
//
// Notes are staged by Save and only become visible on Commit. Abort discards
// everything saved since the store was created.
type NoteStore interface {
	Save(ctx context.Context, note *Note) error
	Commit() error
	Abort() error
}
