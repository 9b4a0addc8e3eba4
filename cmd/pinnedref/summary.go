package main

import (
	"fmt"

	"github.com/fwojciec/pinnedref"
	"github.com/fwojciec/pinnedref/cards"
	"github.com/fwojciec/pinnedref/fs"
)

// Run executes the summary command.
func (c *SummaryCmd) Run(deps *Dependencies) error {
	corpus, err := findCorpus(deps)
	if err != nil {
		return err
	}

	selections := cards.Sample(corpus, c.Sample, newRand(c.Seed))
	if err := fs.WriteSummary(deps.DataDir, cards.RenderSummary(selections)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Summary of %d cards written to %s\n", len(selections), fs.SummaryFile)
	return nil
}

// findCorpus loads every stored card, pointing at the build command when
// there is none.
func findCorpus(deps *Dependencies) ([]*pinnedref.Card, error) {
	corpus, err := deps.Cards.FindCards(deps.Ctx, pinnedref.CardFilter{})
	if pinnedref.ErrorCode(err) == pinnedref.ENOTFOUND {
		fmt.Fprintln(deps.Stderr, "error: no cards found. Run 'pinnedref build' first.")
		return nil, err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinnedref.ErrorMessage(err))
		return nil, err
	}
	return corpus, nil
}
