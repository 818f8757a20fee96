// Package pages implements the stateful page objects of the client: the item
// catalog, the item detail and swap flow, the login and register prompts, and
// the dashboard. Pages convert every fetch failure into local visible state;
// no backend error propagates past a page boundary.
package pages

import (
	"fmt"
	"io"
	"text/tabwriter"

	"swapcli/internal/models"
)

// Status is the lifecycle state of a fetching page.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusErrored
)

// Notifier surfaces one-off user-facing notifications.
type Notifier interface {
	Notify(message string)
}

// writeItems renders an item list as an aligned table.
func writeItems(w io.Writer, items []models.Item) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tCATEGORY\tCONDITION\tOWNER")
	for _, item := range items {
		available := ""
		if !item.IsAvailable {
			available = " (unavailable)"
		}
		fmt.Fprintf(tw, "%s\t%s%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Name, available, item.Type, item.Category.Name, item.Condition, item.Owner.Username)
	}
	return tw.Flush()
}
