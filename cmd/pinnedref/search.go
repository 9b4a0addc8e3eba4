package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pinnedref"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	ids, err := deps.Index.Search(deps.Ctx, query)
	if pinnedref.ErrorCode(err) == pinnedref.ENOTFOUND {
		fmt.Fprintln(deps.Stderr, "error: no search index found. Run 'pinnedref build' first.")
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinnedref.ErrorMessage(err))
		return err
	}

	if len(ids) == 0 {
		fmt.Fprintf(deps.Stdout, "No articles match %q.\n", query)
		return nil
	}

	found, err := deps.Cards.FindCards(deps.Ctx, pinnedref.CardFilter{BookmarkIDs: ids})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinnedref.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, pinnedref.FormatCardList(found))
	return nil
}
