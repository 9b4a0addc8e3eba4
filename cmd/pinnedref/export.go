package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/pinnedref"
	"github.com/fwojciec/pinnedref/cards"
	"github.com/fwojciec/pinnedref/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	corpus, err := findCorpus(deps)
	if err != nil {
		return err
	}

	dir := filepath.Clean(c.Dir)
	store := fs.NewNoteStore(filepath.Dir(dir), filepath.Base(dir))
	if err := exportNotes(deps, corpus, store); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinnedref.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d notes to %s\n", len(corpus), dir)
	return nil
}

func exportNotes(deps *Dependencies, corpus []*pinnedref.Card, store pinnedref.NoteStore) error {
	for _, card := range corpus {
		note, err := cards.RenderNote(card, deps.Converter)
		if err != nil {
			return err
		}
		if err := store.Save(deps.Ctx, note); err != nil {
			return err
		}
	}
	return store.Commit()
}
