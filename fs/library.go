package fs

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fwojciec/pinnedref"
)

// Ensure LibraryService implements pinnedref.LibraryService at compile time.
var _ pinnedref.LibraryService = (*LibraryService)(nil)

// archive is the layout of bookmarks.json as downloaded from the provider.
type archive struct {
	Bookmarks  []pinnedref.Bookmark  `json:"bookmarks"`
	Highlights []pinnedref.Highlight `json:"highlights"`
}

// LibraryService reads the provider archive from a data directory.
type LibraryService struct {
	mu  sync.Mutex
	dir string
}

// NewLibraryService creates a LibraryService rooted at dir.
func NewLibraryService(dir string) *LibraryService {
	return &LibraryService{dir: dir}
}

// Library reads bookmarks.json and full_text.json.
// Returns ENOTFOUND if bookmarks.json is missing. A missing full_text.json
// yields a library without article bodies.
func (s *LibraryService) Library(ctx context.Context) (*pinnedref.Library, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var a archive
	if err := readJSON(filepath.Join(s.dir, BookmarksFile), &a); err != nil {
		return nil, err
	}

	articles, err := s.readArticles()
	if err != nil {
		return nil, err
	}

	return &pinnedref.Library{
		Bookmarks:  a.Bookmarks,
		Highlights: a.Highlights,
		Articles:   articles,
	}, nil
}

// AddArticles merges articles into full_text.json. Bodies for bookmarks that
// are already present are replaced in place; new ones are appended.
func (s *LibraryService) AddArticles(ctx context.Context, articles []pinnedref.RawArticle) error {
	if len(articles) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.readArticles()
	if err != nil {
		return err
	}

	pos := make(map[int64]int, len(existing))
	for i, a := range existing {
		pos[a.BookmarkID] = i
	}
	for _, a := range articles {
		if i, ok := pos[a.BookmarkID]; ok {
			existing[i] = a
			continue
		}
		pos[a.BookmarkID] = len(existing)
		existing = append(existing, a)
	}

	return writeJSON(filepath.Join(s.dir, FullTextFile), existing)
}

func (s *LibraryService) readArticles() ([]pinnedref.RawArticle, error) {
	var articles []pinnedref.RawArticle
	err := readJSON(filepath.Join(s.dir, FullTextFile), &articles)
	if pinnedref.ErrorCode(err) == pinnedref.ENOTFOUND {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return articles, nil
}
