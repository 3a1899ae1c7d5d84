// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(db, Postgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, Postgres)
	assert.ErrorIs(t, err, ErrNilDB)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, Dialect("oracle"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dialect")
}

func TestMigrate_SQLiteCreatesSnapshotTable(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, SQLite))
	require.NoError(t, Migrate(db, SQLite), "second run is a no-op")

	_, err = db.Exec(`INSERT INTO note_versions (key, entity_id, value, updated_at) VALUES ('a+t', 'a', '{}', 't')`)
	assert.NoError(t, err)
}

func TestEmbeddedMigrations_HaveGooseAnnotations(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite"} {
		entries, err := fs.ReadDir(embedMigrations, dir)
		require.NoError(t, err)
		require.NotEmpty(t, entries, dir)

		for _, e := range entries {
			data, err := fs.ReadFile(embedMigrations, dir+"/"+e.Name())
			require.NoError(t, err)
			assert.True(t, strings.Contains(string(data), "-- +goose Up"), e.Name())
			assert.True(t, strings.Contains(string(data), "-- +goose Down"), e.Name())
		}
	}
}
