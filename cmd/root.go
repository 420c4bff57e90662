package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/config"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/kvstore"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/logging"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/repository"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/service"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/tracing"
)

// app carries what every command shares: configuration and, once opened,
// the store and the booking service over it.
type app struct {
	cfg     config.Config
	log     logrus.FieldLogger
	store   kvstore.Store
	tracing *tracing.Provider
	svc     *service.BookingService
	cleanup []func()
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	var (
		store      string
		sqlitePath string
	)

	root := &cobra.Command{
		Use:   "booking",
		Short: "Event booking dashboard",
		Long: `Browse a catalog of events, register for them and export the bookings.

State lives in a key-value store (sqlite file by default) and is shared by
every command, so a booking made in the terminal dashboard shows up in the
HTTP API and in exports.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("store") {
				cfg.Store = store
			}
			if cmd.Flags().Changed("sqlite-path") {
				cfg.SQLitePath = sqlitePath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&store, "store", "", "storage backend: memory, sqlite or postgres (env BOOKING_STORE)")
	root.PersistentFlags().StringVar(&sqlitePath, "sqlite-path", "", "sqlite database file (env BOOKING_SQLITE_PATH)")

	root.AddCommand(
		newServeCmd(a),
		newBrowseCmd(a),
		newEventsCmd(a),
		newRegisterCmd(a),
		newExportCmd(a),
		newCountCmd(a),
		newResetCmd(a),
		newThemeCmd(a),
	)
	return root, a
}

// execute runs root and then releases whatever the command opened. Cleanup
// happens here rather than in a post-run hook because cobra skips those when
// a command fails.
func execute(root *cobra.Command, a *app) error {
	return errors.Join(root.Execute(), a.close())
}

// open connects the store and restores the service state.
func (a *app) open(ctx context.Context) error {
	tp, err := tracing.NewProvider(a.cfg.Tracing)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	a.tracing = tp

	store, err := kvstore.Open(ctx, a.cfg.StoreOptions(), a.log)
	if err != nil {
		return fmt.Errorf("open %s store: %w", a.cfg.Store, err)
	}
	a.store = store
	a.log.WithField("store", a.cfg.Store).Debug("store opened")

	a.svc = service.New(
		repository.NewStateRepository(store),
		repository.NewThemeRepository(store),
		service.WithLogger(a.log),
		service.WithTracer(tp.Tracer()),
	)
	a.svc.Initialize(ctx)
	return nil
}

func (a *app) close() error {
	var errs []error
	if a.store != nil {
		errs = append(errs, a.store.Close())
		a.store = nil
	}
	if a.tracing != nil {
		errs = append(errs, a.tracing.Shutdown(context.Background()))
		a.tracing = nil
	}
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	a.cleanup = nil
	return errors.Join(errs...)
}

// openCmd is the PreRunE shared by commands that need the service.
func (a *app) openCmd(cmd *cobra.Command, _ []string) error {
	return a.open(cmd.Context())
}

func printLine(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}
