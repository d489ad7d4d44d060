package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/DJCoolVR/soundboard"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, soundboard.RunFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", soundboard.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'soundboard sync' to record one.")
		return nil
	}

	headers := []string{"Started", "Duration", "Scraped", "Total", "Added", "Stale", "Downloaded", "Failed", "Hash"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.FinishedAt.Sub(r.StartedAt).Round(time.Second).String(),
			strconv.Itoa(r.Scraped),
			strconv.Itoa(r.Total),
			strconv.Itoa(r.Added),
			strconv.Itoa(r.Stale),
			strconv.Itoa(r.Downloaded),
			strconv.Itoa(r.Failed),
			r.ListingHash,
		})
	}

	fmt.Fprintln(deps.Stdout, renderTable(headers, rows, aligns))
	return nil
}
