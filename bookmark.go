package pinnedref

import "context"

// Bookmark is a saved article reference from the read-it-later provider.
type Bookmark struct {
	BookmarkID        int64   `json:"bookmark_id"`
	Title             string  `json:"title"`
	URL               string  `json:"url"`
	Description       string  `json:"description,omitempty"`
	Hash              string  `json:"hash,omitempty"`
	Starred           string  `json:"starred,omitempty"`
	Time              float64 `json:"time,omitempty"`
	ProgressTimestamp float64 `json:"progress_timestamp,omitempty"`
}

// Highlight is a user-selected excerpt attached to a bookmark.
// Text may contain several fragments separated by line breaks.
type Highlight struct {
	HighlightID int64   `json:"highlight_id"`
	BookmarkID  int64   `json:"bookmark_id"`
	Text        string  `json:"text"`
	Note        *string `json:"note"`
	Time        int64   `json:"time"`
	Position    int64   `json:"position"`
}

// RawArticle is the raw markup body of a bookmarked article.
type RawArticle struct {
	BookmarkID int64  `json:"bookmark_id"`
	Text       string `json:"text"`
}

// Library is the fully materialized archive the pipeline runs over.
type Library struct {
	Bookmarks  []Bookmark
	Highlights []Highlight
	Articles   []RawArticle
}

// MissingArticles returns the ids of bookmarks that own at least one highlight
// but have no raw article body, in first-highlight order.
func (l *Library) MissingArticles() []int64 {
	have := make(map[int64]bool, len(l.Articles))
	for _, a := range l.Articles {
		have[a.BookmarkID] = true
	}

	var ids []int64
	for _, h := range l.Highlights {
		if have[h.BookmarkID] {
			continue
		}
		have[h.BookmarkID] = true
		ids = append(ids, h.BookmarkID)
	}
	return ids
}

// LibraryService provides access to the archive downloaded from the provider.
type LibraryService interface {
	// Library returns the bookmarks, highlights and raw article bodies.
	Library(ctx context.Context) (*Library, error)

	// AddArticles stores additional raw article bodies. An article whose
	// bookmark already has a body replaces it.
	AddArticles(ctx context.Context, articles []RawArticle) error
}

// BookmarkIndex resolves bookmark ids to bookmarks. It is built once per run.
type BookmarkIndex struct {
	bookmarks map[int64]*Bookmark
	conflicts map[int64]bool
}

// NewBookmarkIndex indexes bookmarks by id. Repeated records for the same id
// are tolerated when identical; differing records make the id ambiguous.
func NewBookmarkIndex(bookmarks []Bookmark) *BookmarkIndex {
	idx := &BookmarkIndex{
		bookmarks: make(map[int64]*Bookmark, len(bookmarks)),
		conflicts: make(map[int64]bool),
	}
	for i := range bookmarks {
		bm := &bookmarks[i]
		if prev, ok := idx.bookmarks[bm.BookmarkID]; ok {
			if *prev != *bm {
				idx.conflicts[bm.BookmarkID] = true
			}
			continue
		}
		idx.bookmarks[bm.BookmarkID] = bm
	}
	return idx
}

// Lookup returns the bookmark with the given id.
// Returns ENOTFOUND if no bookmark has the id and ECONFLICT if several
// differing bookmarks share it.
func (idx *BookmarkIndex) Lookup(id int64) (*Bookmark, error) {
	if idx.conflicts[id] {
		return nil, Errorf(ECONFLICT, "bookmark %d is ambiguous", id)
	}
	bm, ok := idx.bookmarks[id]
	if !ok {
		return nil, Errorf(ENOTFOUND, "bookmark %d not found", id)
	}
	return bm, nil
}

// Len returns the number of distinct bookmark ids.
func (idx *BookmarkIndex) Len() int {
	return len(idx.bookmarks)
}
