package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/database"
)

// backends returns every store the test environment can provide.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)

	stores := map[string]Store{
		KindMemory: NewMemory(),
		KindSQLite: NewSQLite(db),
	}

	if dsn := os.Getenv("BOOKING_TEST_POSTGRES_DSN"); dsn != "" {
		log, _ := test.NewNullLogger()
		pool, err := database.NewPool(context.Background(), dsn, log)
		require.NoError(t, err)
		stores[KindPostgres] = NewPostgres(pool)
	}

	for _, s := range stores {
		t.Cleanup(func() { _ = s.Close() })
	}
	return stores
}

func TestStore_GetMissing(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			v, ok, err := s.Get(context.Background(), "missing/"+name)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, v)
		})
	}
}

func TestStore_PutGetOverwrite(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			key := "test/put/" + name
			require.NoError(t, s.Put(ctx, Entry{Key: key, Value: []byte("one")}))

			v, ok, err := s.Get(ctx, key)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "one", string(v))

			require.NoError(t, s.Put(ctx, Entry{Key: key, Value: []byte("two")}))
			v, _, err = s.Get(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, "two", string(v))

			require.NoError(t, s.Delete(ctx, key))
		})
	}
}

func TestStore_PutManyAndDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			a, b, keep := "test/a/"+name, "test/b/"+name, "test/keep/"+name
			require.NoError(t, s.Put(ctx,
				Entry{Key: a, Value: []byte("A")},
				Entry{Key: b, Value: []byte("B")},
				Entry{Key: keep, Value: []byte("K")},
			))

			require.NoError(t, s.Delete(ctx, a, b, "test/never-written"))

			_, ok, err := s.Get(ctx, a)
			require.NoError(t, err)
			assert.False(t, ok)
			_, ok, err = s.Get(ctx, b)
			require.NoError(t, err)
			assert.False(t, ok)

			v, ok, err := s.Get(ctx, keep)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "K", string(v))

			require.NoError(t, s.Delete(ctx, keep))
		})
	}
}

func TestMemory_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	in := []byte("abc")
	require.NoError(t, m.Put(ctx, Entry{Key: "k", Value: in}))
	in[0] = 'x'

	out, _, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))

	out[0] = 'y'
	again, _, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestMemory_Closed(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Close())

	_, _, err := m.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, m.Put(context.Background(), Entry{Key: "k"}), ErrClosed)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	db, err := database.OpenSQLite(path)
	require.NoError(t, err)
	s := NewSQLite(db)
	require.NoError(t, s.Put(ctx, Entry{Key: "k", Value: []byte("persisted")}))
	require.NoError(t, s.Close())

	db, err = database.OpenSQLite(path)
	require.NoError(t, err)
	s = NewSQLite(db)
	defer s.Close()

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "persisted", string(v))
}

func TestOpen(t *testing.T) {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	s, err := Open(context.Background(), Options{Kind: KindMemory}, log)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open(context.Background(), Options{Kind: KindSQLite, SQLitePath: filepath.Join(t.TempDir(), "x.db")}, log)
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, s)
	require.NoError(t, s.Close())

	_, err = Open(context.Background(), Options{Kind: "redis"}, log)
	require.Error(t, err)
}
