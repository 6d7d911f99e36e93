// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemorySQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	// every connection of an in-memory database is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the DB on its own; no expectation matches

	err = Migrate(db, Postgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, Postgres)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, Dialect("oracle"))
	assert.ErrorIs(t, err, errUnknownDialect)
}

func TestMigrate_SQLiteCreatesSchema(t *testing.T) {
	db := newMemorySQLite(t)

	require.NoError(t, Migrate(db, SQLite))

	for _, table := range []string{
		"user", "characters", "planets", "vehicles",
		"favorite_characters", "favorite_planets", "favorite_vehicles",
	} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_SQLiteTwiceIsNoOp(t *testing.T) {
	db := newMemorySQLite(t)

	require.NoError(t, Migrate(db, SQLite))
	require.NoError(t, Migrate(db, SQLite))
}

func TestMigrate_SQLiteFavoritesAreUnique(t *testing.T) {
	db := newMemorySQLite(t)
	require.NoError(t, Migrate(db, SQLite))

	_, err := db.Exec(`INSERT INTO "user" (username, name, lastname, email, subscription_date, password)
		VALUES ('u', 'n', 'l', 'e@x', '2020-05-17 00:00:00', 'p')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO characters (name, age, eye_color, hair_color) VALUES ('Luke', 22, 'Blue', 'Blonde')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO favorite_characters (user_id, character_id) VALUES (1, 1)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO favorite_characters (user_id, character_id) VALUES (1, 1)`)
	assert.Error(t, err)

	// foreign keys reject links to missing rows
	_, err = db.Exec(`INSERT INTO favorite_characters (user_id, character_id) VALUES (1, 99)`)
	assert.Error(t, err)
}
