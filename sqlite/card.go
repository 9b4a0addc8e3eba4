package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pinnedref"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pinnedref.CardService = (*CardService)(nil)

// CardService implements pinnedref.CardService using SQLite.
type CardService struct {
	db *DB
}

// NewCardService creates a new CardService.
func NewCardService(db *DB) *CardService {
	return &CardService{db: db}
}

// ReplaceCards replaces the stored corpus in a single transaction.
// Each card fragment is stored as its own row with a generated id and an
// xxHash of its content.
func (s *CardService) ReplaceCards(ctx context.Context, cards []*pinnedref.Card) error {
	seen := make(map[int64]bool, len(cards))
	for _, c := range cards {
		if err := c.Validate(); err != nil {
			return err
		}
		if seen[c.BookmarkID] {
			return pinnedref.Errorf(pinnedref.ECONFLICT, "duplicate card for bookmark %d", c.BookmarkID)
		}
		seen[c.BookmarkID] = true
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM articles"); err != nil {
		return fmt.Errorf("failed to clear articles: %w", err)
	}

	for i, c := range cards {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO articles (bookmark_id, title, url, domain, ranking, position)
			VALUES (?, ?, ?, ?, ?, ?)
		`, c.BookmarkID, c.Title, c.URL, c.Domain, c.Ranking, i); err != nil {
			return fmt.Errorf("failed to insert article %d: %w", c.BookmarkID, err)
		}
		for j, content := range c.Cards {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO cards (id, bookmark_id, position, content, content_hash)
				VALUES (?, ?, ?, ?, ?)
			`, uuid.New().String(), c.BookmarkID, j, content, hashContent(content)); err != nil {
				return fmt.Errorf("failed to insert card for article %d: %w", c.BookmarkID, err)
			}
		}
	}

	return tx.Commit()
}

// FindCardByBookmarkID retrieves the card for a bookmark.
func (s *CardService) FindCardByBookmarkID(ctx context.Context, id int64) (*pinnedref.Card, error) {
	cards, err := s.FindCards(ctx, pinnedref.CardFilter{BookmarkIDs: []int64{id}})
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, pinnedref.Errorf(pinnedref.ENOTFOUND, "card for bookmark %d not found", id)
	}
	return cards[0], nil
}

// FindCards retrieves cards matching the filter in corpus order.
func (s *CardService) FindCards(ctx context.Context, filter pinnedref.CardFilter) ([]*pinnedref.Card, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT bookmark_id, title, url, domain, ranking FROM articles WHERE 1=1")

	if len(filter.BookmarkIDs) > 0 {
		query.WriteString(" AND ")
		appendInClause(&query, &args, "bookmark_id", filter.BookmarkIDs)
	}
	if filter.Domain != nil {
		query.WriteString(" AND domain = ?")
		args = append(args, *filter.Domain)
	}

	query.WriteString(" ORDER BY position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	var cards []*pinnedref.Card
	for rows.Next() {
		var c pinnedref.Card
		if err := rows.Scan(&c.BookmarkID, &c.Title, &c.URL, &c.Domain, &c.Ranking); err != nil {
			rows.Close()
			return nil, err
		}
		cards = append(cards, &c)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	// The article rows must be released before loading fragments since the
	// pool holds a single connection.
	for _, c := range cards {
		if c.Cards, err = s.findContents(ctx, c.BookmarkID); err != nil {
			return nil, err
		}
	}
	return cards, nil
}

func (s *CardService) findContents(ctx context.Context, bookmarkID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT content FROM cards
		WHERE bookmark_id = ?
		ORDER BY position ASC
	`, bookmarkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contents []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}
	return contents, rows.Err()
}

// FindCardHashes returns the content hashes of a bookmark's cards in order.
func (s *CardService) FindCardHashes(ctx context.Context, bookmarkID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT content_hash FROM cards
		WHERE bookmark_id = ?
		ORDER BY position ASC
	`, bookmarkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hashes []string
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(hashes) == 0 {
		return nil, pinnedref.Errorf(pinnedref.ENOTFOUND, "card for bookmark %d not found", bookmarkID)
	}
	return hashes, nil
}
