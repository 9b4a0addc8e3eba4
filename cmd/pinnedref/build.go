package main

import (
	"fmt"

	"github.com/fwojciec/pinnedref"
	"github.com/fwojciec/pinnedref/cards"
	"github.com/fwojciec/pinnedref/fs"
	pinslog "github.com/fwojciec/pinnedref/slog"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	lib, err := deps.Library.Library(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinnedref.ErrorMessage(err))
		return err
	}

	builder := &cards.Builder{Concurrency: c.Concurrency}
	result, err := builder.Build(deps.Ctx, lib)
	if err != nil {
		return err
	}
	pinslog.LogDiagnostics(deps.Logger, result.Diagnostics)

	if err := deps.Cards.ReplaceCards(deps.Ctx, result.Cards); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinnedref.ErrorMessage(err))
		return err
	}

	idx := cards.BuildIndex(result.Cards)
	if err := deps.Index.ReplaceSearchIndex(deps.Ctx, idx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinnedref.ErrorMessage(err))
		return err
	}

	selections := cards.Sample(result.Cards, c.Sample, newRand(c.Seed))
	if err := fs.WriteSummary(deps.DataDir, cards.RenderSummary(selections)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	total := 0
	for _, card := range result.Cards {
		total += len(card.Cards)
	}
	fmt.Fprintf(deps.Stdout, "Built %d cards for %d articles (%d skipped, %d warnings)\n",
		total, len(result.Cards), result.Skipped, result.Diagnostics.Len())
	fmt.Fprintf(deps.Stdout, "Indexed %d words, summary of %d cards written\n", len(idx), len(selections))
	return nil
}
