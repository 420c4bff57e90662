package main

import (
	"github.com/spf13/cobra"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/logging"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/tui"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the terminal dashboard",
		Long: `Open the interactive dashboard.

Keys: ←/→ page, ↑/↓ select, enter register, / search, c category,
f registration form, t theme, R reset, q quit.

Logs are discarded unless BOOKING_LOG_FILE is set.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := logging.OpenFile(a.cfg.LogFile, a.cfg.LogLevel, a.cfg.LogFormat)
			if err != nil {
				return err
			}
			a.log = log
			a.cleanup = append(a.cleanup, closeLog)
			return a.openCmd(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.Run(cmd.Context(), a.svc)
		},
	}
}
