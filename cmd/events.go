package main

import (
	"github.com/spf13/cobra"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/render"
)

func newEventsCmd(a *app) *cobra.Command {
	var (
		query      string
		categories []string
		page       int
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print one page of the event catalog",
		Long: `Print one page of the event catalog, filtered by search text and categories.

Examples:
  booking events
  booking events --query summit
  booking events --category workshop --category career --page 2`,
		Args:    cobra.NoArgs,
		PreRunE: a.openCmd,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, _ := a.svc.Theme(cmd.Context())
			p := a.svc.GetPage(cmd.Context(), query, categories, page)
			printLine(cmd.OutOrStdout(), render.EventsTable(p, -1, render.PaletteFor(theme)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "search text matched against name and venue")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "category to include (repeatable)")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number, clamped to the available pages")
	return cmd
}
