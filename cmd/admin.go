package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/render"
)

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "count",
		Short:   "Print the number of recorded bookings",
		Args:    cobra.NoArgs,
		PreRunE: a.openCmd,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printLine(cmd.OutOrStdout(), strconv.Itoa(a.svc.BookingCount()))
			return nil
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "reset",
		Short:   "Restore the seed catalog and clear all bookings",
		Args:    cobra.NoArgs,
		PreRunE: a.openCmd,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), render.ResetPrompt+" [y/N] ")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if ans := strings.ToLower(strings.TrimSpace(answer)); ans != "y" && ans != "yes" {
					printLine(cmd.OutOrStdout(), "reset cancelled")
					return nil
				}
			}

			res, err := a.svc.ResetToDefaults(cmd.Context())
			if err != nil {
				return err
			}
			printLine(cmd.OutOrStdout(), fmt.Sprintf("%s %d events restored.", render.ResetDone, len(res.Events)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newThemeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Show or set the display theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(model.ThemeLight), string(model.ThemeDark)},
		PreRunE:   a.openCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := a.svc.SetTheme(cmd.Context(), model.Theme(args[0])); err != nil {
					return err
				}
			}
			theme, err := a.svc.Theme(cmd.Context())
			if err != nil {
				return err
			}
			printLine(cmd.OutOrStdout(), string(theme))
			return nil
		},
	}
}
