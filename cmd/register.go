package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/render"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/service"
)

func newRegisterCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register for an event",
	}
	cmd.AddCommand(newRegisterRowCmd(a), newRegisterFormCmd(a))
	return cmd
}

func newRegisterRowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "row EVENT_ID",
		Short:   "Reserve one anonymous seat",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.openCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("event id must be a number: %q", args[0])
			}

			event, err := a.svc.RegisterRow(cmd.Context(), id)
			if err != nil {
				if errors.Is(err, service.ErrFullyBooked) {
					return errors.New(render.RowFull(event.Name))
				}
				return err
			}
			printLine(cmd.OutOrStdout(), render.RowReserved(event.Name))
			return nil
		},
	}
}

func newRegisterFormCmd(a *app) *cobra.Command {
	var req model.RegisterFormRequest
	var eventID string

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Register with name and student id",
		Long: `Register with name and student id. Every field is checked and each
failing field is reported.

Example:
  booking register form --name "Amani Otieno" --student-id 670797 --event 7`,
		Args:    cobra.NoArgs,
		PreRunE: a.openCmd,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.EventID = model.EventRef(eventID)
			res, err := a.svc.RegisterForm(cmd.Context(), req)
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				for _, f := range verr.Fields {
					printLine(cmd.ErrOrStderr(), f.Field+": "+f.Message)
				}
				return errors.New("registration is invalid")
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printLine(out, render.FormConfirmation(res.Booking.Name, res.Booking.StudentID, res.Event.Name))
			printLine(out, "booking id: "+res.Booking.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.StudentID, "student-id", "", "six digit student id")
	cmd.Flags().StringVar(&eventID, "event", "", "event id")
	return cmd
}
