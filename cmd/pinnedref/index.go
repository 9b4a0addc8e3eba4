package main

import (
	"fmt"

	"github.com/fwojciec/pinnedref"
	"github.com/fwojciec/pinnedref/cards"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	corpus, err := findCorpus(deps)
	if err != nil {
		return err
	}

	idx := cards.BuildIndex(corpus)
	if err := deps.Index.ReplaceSearchIndex(deps.Ctx, idx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinnedref.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d words across %d articles\n", len(idx), len(corpus))
	return nil
}
