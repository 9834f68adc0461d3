package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(Config{Driver: "mongodb"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported database driver")
}

func TestMigrateCreatesTables(t *testing.T) {
	db, err := Open(Config{Driver: "sqlite", DSN: "file:migrate_test?mode=memory&cache=shared&_foreign_keys=1"})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"jobs", "users", "resumes", "cache_entries"} {
		require.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestMigrateNilHandle(t *testing.T) {
	require.Error(t, Migrate(nil))
}

func TestBuildMySQLDSN(t *testing.T) {
	dsn, err := buildMySQLDSN(Config{
		User:     "board",
		Password: "secret",
		Name:     "jobboard",
		Options:  map[string]string{"tls": "skip-verify"},
	})
	require.NoError(t, err)
	require.Equal(t, "board:secret@tcp(127.0.0.1:3306)/jobboard?charset=utf8mb4&loc=Local&parseTime=True&tls=skip-verify", dsn)

	_, err = buildMySQLDSN(Config{User: "board"})
	require.Error(t, err)
}

func TestBuildPostgresDSNDefaults(t *testing.T) {
	dsn, err := buildPostgresDSN(Config{User: "board", Name: "jobboard"})
	require.NoError(t, err)
	require.Equal(t, "host=localhost port=5432 user=board dbname=jobboard sslmode=disable", dsn)

	_, err = buildPostgresDSN(Config{Name: "jobboard"})
	require.Error(t, err)
}
