package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/render"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		out   string
		printTable bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the bookings as CSV or a printable table",
		Long: `Export every booking joined with its event.

Without flags a CSV file named bookings-<timestamp>.csv is written to the
current directory. Use --out - to write the CSV to stdout, or --print for a
printable table.`,
		Args:    cobra.NoArgs,
		PreRunE: a.openCmd,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := a.svc.ExportLedgerRows()
			now := time.Now()

			if printTable {
				theme, _ := a.svc.Theme(cmd.Context())
				_, err := fmt.Fprint(cmd.OutOrStdout(), render.PrintView(rows, render.PaletteFor(theme), now))
				return err
			}

			if out == "-" {
				return render.WriteLedgerCSV(cmd.OutOrStdout(), rows)
			}
			if out == "" {
				out = render.ExportFilename(now)
			}
			f, err := os.Create(out) //nolint:gosec // user-chosen output path
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			if err := render.WriteLedgerCSV(f, rows); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			printLine(cmd.OutOrStdout(), fmt.Sprintf("exported %d bookings to %s", len(rows), out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout")
	cmd.Flags().BoolVar(&printTable, "print", false, "print a table instead of writing CSV")
	return cmd
}
