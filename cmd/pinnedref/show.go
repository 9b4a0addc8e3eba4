package main

import (
	"fmt"

	"github.com/fwojciec/pinnedref"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	card, err := deps.Cards.FindCardByBookmarkID(deps.Ctx, c.BookmarkID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinnedref.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, pinnedref.FormatCard(card))
	return nil
}
