// Package kvstore is the durable key-value layer the dashboard persists its
// state into. Backends: in-process memory, a SQLite file, or PostgreSQL.
package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/database"
)

// Backend kinds.
const (
	KindMemory   = "memory"
	KindSQLite   = "sqlite"
	KindPostgres = "postgres"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("kvstore: store is closed")

// Entry is one key/value pair to write.
type Entry struct {
	Key   string
	Value []byte
}

// Store is a durable byte-valued key-value store.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put writes all entries; SQL backends do it in one transaction.
	Put(ctx context.Context, entries ...Entry) error
	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Kind        string
	SQLitePath  string
	PostgresDSN string
}

// Open creates the backend described by opts.
func Open(ctx context.Context, opts Options, log logrus.FieldLogger) (Store, error) {
	switch opts.Kind {
	case KindMemory:
		return NewMemory(), nil
	case KindSQLite, "":
		db, err := database.OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return NewSQLite(db), nil
	case KindPostgres:
		pool, err := database.NewPool(ctx, opts.PostgresDSN, log)
		if err != nil {
			return nil, err
		}
		return NewPostgres(pool), nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", opts.Kind)
	}
}
