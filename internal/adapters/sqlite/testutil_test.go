// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/poochyard/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
// Uses db.GetSchemaSQL() to prevent test schemas from drifting.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedServer inserts a test server and returns its ID.
func seedServer(t *testing.T, db *sql.DB, id int64) int64 {
	t.Helper()
	if id == 0 {
		id = 100
	}
	_, err := db.Exec("INSERT INTO servers (id) VALUES (?)", id)
	if err != nil {
		t.Fatalf("failed to seed server: %v", err)
	}
	return id
}

// seedOwner inserts a test owner and returns its discord ID.
func seedOwner(t *testing.T, db *sql.DB, serverID, discordID int64) int64 {
	t.Helper()
	if discordID == 0 {
		discordID = 5000
	}
	_, err := db.Exec("INSERT INTO owners (server_id, discord_id) VALUES (?, ?)", serverID, discordID)
	if err != nil {
		t.Fatalf("failed to seed owner: %v", err)
	}
	return discordID
}

// seedKennel inserts a test kennel and returns its ID.
func seedKennel(t *testing.T, db *sql.DB, serverID, ownerDiscordID int64, name string, limit int) int64 {
	t.Helper()
	if name == "" {
		name = "Test Kennel"
	}
	if limit == 0 {
		limit = 10
	}
	result, err := db.Exec(
		"INSERT INTO kennels (server_id, owner_discord_id, name, pooch_limit) VALUES (?, ?, ?, ?)",
		serverID, ownerDiscordID, name, limit)
	if err != nil {
		t.Fatalf("failed to seed kennel: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedVendor inserts a test vendor and returns its ID.
func seedVendor(t *testing.T, db *sql.DB, serverID int64, name string) int64 {
	t.Helper()
	if name == "" {
		name = "Test Vendor"
	}
	result, err := db.Exec("INSERT INTO vendors (server_id, name) VALUES (?, ?)", serverID, name)
	if err != nil {
		t.Fatalf("failed to seed vendor: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedPooch inserts a living adult pooch owned by the given owner and
// returns its ID. Pass ownerDiscordID 0 for an ownerless pooch.
func seedPooch(t *testing.T, db *sql.DB, serverID, ownerDiscordID int64, name, sex string) int64 {
	t.Helper()
	if name == "" {
		name = "Rex"
	}
	if sex == "" {
		sex = "male"
	}
	var owner any
	if ownerDiscordID != 0 {
		owner = ownerDiscordID
	}
	result, err := db.Exec(
		`INSERT INTO pooches (server_id, name, age, sex, base_health, owner_discord_id)
		VALUES (?, ?, 3, ?, 10, ?)`,
		serverID, name, sex, owner)
	if err != nil {
		t.Fatalf("failed to seed pooch: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedFetus inserts a fetal pooch (age -1) and returns its ID.
func seedFetus(t *testing.T, db *sql.DB, serverID int64) int64 {
	t.Helper()
	result, err := db.Exec(
		`INSERT INTO pooches (server_id, name, age, sex, base_health)
		VALUES (?, 'unborn', -1, 'female', 10)`,
		serverID)
	if err != nil {
		t.Fatalf("failed to seed fetus: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedStockedPooch inserts a vendor-owned pooch with a stock row and
// returns the pooch ID.
func seedStockedPooch(t *testing.T, db *sql.DB, serverID, vendorID int64, name string, price int) int64 {
	t.Helper()
	if name == "" {
		name = "Forsale"
	}
	if price == 0 {
		price = 75
	}
	result, err := db.Exec(
		`INSERT INTO pooches (server_id, name, age, sex, base_health, vendor_id)
		VALUES (?, ?, 1, 'male', 9, ?)`,
		serverID, name, vendorID)
	if err != nil {
		t.Fatalf("failed to seed stocked pooch: %v", err)
	}
	poochID, _ := result.LastInsertId()
	_, err = db.Exec(
		"INSERT INTO vendor_stock (server_id, vendor_id, pooch_id, price) VALUES (?, ?, ?, ?)",
		serverID, vendorID, poochID, price)
	if err != nil {
		t.Fatalf("failed to seed stock row: %v", err)
	}
	return poochID
}
