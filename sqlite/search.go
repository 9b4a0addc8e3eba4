package sqlite

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/fwojciec/pinnedref"
)

// Compile-time interface verification.
var _ pinnedref.SearchIndexService = (*SearchIndexService)(nil)

// SearchIndexService implements pinnedref.SearchIndexService using SQLite.
// Each (token, bookmark) pair is a row; queries intersect in SQL.
type SearchIndexService struct {
	db *DB
}

// NewSearchIndexService creates a new SearchIndexService.
func NewSearchIndexService(db *DB) *SearchIndexService {
	return &SearchIndexService{db: db}
}

// ReplaceSearchIndex replaces the stored index in a single transaction.
func (s *SearchIndexService) ReplaceSearchIndex(ctx context.Context, idx pinnedref.SearchIndex) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tokens"); err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO tokens (token, bookmark_id) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for token, ids := range idx {
		for _, id := range ids {
			if _, err := stmt.ExecContext(ctx, token, id); err != nil {
				return fmt.Errorf("failed to insert token %q: %w", token, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO search_index (id, built_at) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET built_at = excluded.built_at
	`, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to record index build: %w", err)
	}

	return tx.Commit()
}

// FindSearchIndex reads the whole stored index.
// Returns ENOTFOUND if no index has been stored.
func (s *SearchIndexService) FindSearchIndex(ctx context.Context) (pinnedref.SearchIndex, error) {
	if err := s.checkBuilt(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT token, bookmark_id FROM tokens ORDER BY token, bookmark_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	idx := pinnedref.SearchIndex{}
	for rows.Next() {
		var token string
		var id int64
		if err := rows.Scan(&token, &id); err != nil {
			return nil, err
		}
		idx[token] = append(idx[token], id)
	}
	return idx, rows.Err()
}

// Search returns the ids of bookmarks indexed under every token of query.
// Returns ENOTFOUND if no index has been stored.
func (s *SearchIndexService) Search(ctx context.Context, query string) ([]int64, error) {
	if err := s.checkBuilt(ctx); err != nil {
		return nil, err
	}

	tokens := pinnedref.Tokenize(query)
	slices.Sort(tokens)
	tokens = slices.Compact(tokens)
	if len(tokens) == 0 {
		return nil, nil
	}

	var q strings.Builder
	var args []any
	q.WriteString("SELECT bookmark_id FROM tokens WHERE ")
	appendInClause(&q, &args, "token", tokens)
	q.WriteString(" GROUP BY bookmark_id HAVING COUNT(*) = ? ORDER BY bookmark_id")
	args = append(args, len(tokens))

	rows, err := s.db.QueryContext(ctx, q.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *SearchIndexService) checkBuilt(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM search_index").Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		return pinnedref.Errorf(pinnedref.ENOTFOUND, "search index not built")
	}
	return nil
}
