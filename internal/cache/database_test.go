package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jobboardhq/jobboard/internal/database/testutil"
	"github.com/jobboardhq/jobboard/internal/models"
)

func TestDatabaseStoreSetAndGet(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	store := NewDatabaseStore(db)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "users_None_None_None_0_10", []byte("[]"), 0))

	value, ok, err := store.Get(ctx, "users_None_None_None_0_10")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "[]", string(value))
}

func TestDatabaseStoreMissing(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	store := NewDatabaseStore(db)

	_, ok, err := store.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDatabaseStoreUpsertOverwrites(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	store := NewDatabaseStore(db)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "jobs_1", []byte("first"), 0))
	require.NoError(t, store.Set(ctx, "jobs_1", []byte("second"), 0))

	value, ok, err := store.Get(ctx, "jobs_1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "second", string(value))

	var count int64
	require.NoError(t, db.Model(&models.CacheEntry{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestDatabaseStoreExpiry(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())

	current := time.Unix(1000, 0)
	store := NewDatabaseStore(db, WithDatabaseNow(func() time.Time { return current }))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "users_7", []byte(`{"id":7}`), 300*time.Second))

	current = current.Add(299 * time.Second)
	_, ok, err := store.Get(ctx, "users_7")
	require.NoError(t, err)
	require.True(t, ok)

	current = current.Add(2 * time.Second)
	_, ok, err = store.Get(ctx, "users_7")
	require.NoError(t, err)
	require.False(t, ok)

	// expired row reclaimed
	var count int64
	require.NoError(t, db.Model(&models.CacheEntry{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestNewDatabaseStoreNilDB(t *testing.T) {
	require.Nil(t, NewDatabaseStore(nil))
}
