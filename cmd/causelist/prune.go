package main

import (
	"fmt"
	"time"
)

// Run executes the prune command.
func (c *PruneCmd) Run(deps *Dependencies) error {
	cutoff := time.Now().AddDate(0, 0, -c.OlderThan)
	n, err := deps.Store.DeleteCauseListsBefore(deps.Ctx, cutoff)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Deleted %d cached cause list(s) older than %d days\n", n, c.OlderThan)
	return nil
}
