// Package fs provides file-based storage for the archive, the card corpus,
// the search index and exported notes.
package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/pinnedref"
)

// File names inside the data directory.
const (
	BookmarksFile = "bookmarks.json"
	FullTextFile  = "full_text.json"
	CardsFile     = "article_data.json"
	IndexFile     = "search_index.json"
	SummaryFile   = "summary_cards.html"
)

// readJSON decodes the JSON file at path into v.
// Returns ENOTFOUND if the file does not exist.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return pinnedref.Errorf(pinnedref.ENOTFOUND, "%s not found", filepath.Base(path))
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return pinnedref.Errorf(pinnedref.EINVALID, "decode %s: %v", filepath.Base(path), err)
	}
	return nil
}

// writeJSON encodes v and writes it atomically to path.
func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return writeFileAtomic(path, data)
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// into place, so readers never observe a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// WriteSummary writes the summary fragment to summary_cards.html in dir.
func WriteSummary(dir, fragment string) error {
	return writeFileAtomic(filepath.Join(dir, SummaryFile), []byte(fragment))
}
