package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dkamau/studentportal/internal/catalog"
)

// Timetable renders the daily lecture timetable.
func (a *App) Timetable(ctx context.Context) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tSUBJECT\tVENUE")
	for _, slot := range catalog.Timetable() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", slot.Time, slot.Subject, slot.Venue)
	}
	return w.Flush()
}

// Results renders the published course results.
func (a *App) Results(ctx context.Context) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COURSE\tGRADE\tREMARKS")
	for _, res := range catalog.Results() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", res.Course, res.Grade, res.Remarks)
	}
	return w.Flush()
}
