package fs

import (
	"context"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fwojciec/pinnedref"
)

// Ensure SearchIndexService implements pinnedref.SearchIndexService at compile time.
var _ pinnedref.SearchIndexService = (*SearchIndexService)(nil)

// SearchIndexService stores the search index as a JSON object mapping tokens
// to bookmark ids in search_index.json.
type SearchIndexService struct {
	mu  sync.Mutex
	dir string
}

// NewSearchIndexService creates a SearchIndexService rooted at dir.
func NewSearchIndexService(dir string) *SearchIndexService {
	return &SearchIndexService{dir: dir}
}

func (s *SearchIndexService) path() string {
	return filepath.Join(s.dir, IndexFile)
}

// ReplaceSearchIndex writes idx, replacing any previous index.
func (s *SearchIndexService) ReplaceSearchIndex(ctx context.Context, idx pinnedref.SearchIndex) error {
	if idx == nil {
		idx = pinnedref.SearchIndex{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.path(), idx)
}

// FindSearchIndex reads the stored index. Id lists are returned sorted and
// distinct whatever their order in the file, and tokens without ids are
// dropped. Returns ENOTFOUND if no index has been written.
func (s *SearchIndexService) FindSearchIndex(ctx context.Context) (pinnedref.SearchIndex, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var idx pinnedref.SearchIndex
	if err := readJSON(s.path(), &idx); err != nil {
		return nil, err
	}
	return normalizeIndex(idx), nil
}

func normalizeIndex(idx pinnedref.SearchIndex) pinnedref.SearchIndex {
	out := make(pinnedref.SearchIndex, len(idx))
	for token, ids := range idx {
		ids = slices.Clone(ids)
		slices.Sort(ids)
		ids = slices.Compact(ids)
		if len(ids) == 0 {
			continue
		}
		out[token] = ids
	}
	return out
}

// Search loads the index and looks up query.
func (s *SearchIndexService) Search(ctx context.Context, query string) ([]int64, error) {
	idx, err := s.FindSearchIndex(ctx)
	if err != nil {
		return nil, err
	}
	return idx.Lookup(query), nil
}
