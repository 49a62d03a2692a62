// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"autohub/internal/database"
	"autohub/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "autohub")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "autohub")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testDealership returns the ID of a dealership to hang test rows off,
// creating one when the database is empty.
func testDealership(t *testing.T, db *sql.DB) *models.Dealership {
	t.Helper()

	ds := NewDealershipStore(db)
	d, err := ds.Default()
	if err != nil {
		t.Fatalf("default dealership: %v", err)
	}
	if d == nil {
		d, err = ds.Create("Test Motors")
		if err != nil {
			t.Fatalf("create dealership: %v", err)
		}
	}
	return d
}

// cleanVehicles removes test vehicles by plate. Call in t.Cleanup().
func cleanVehicles(t *testing.T, db *sql.DB, plates ...string) {
	t.Helper()
	for _, plate := range plates {
		db.Exec("DELETE FROM vehicles WHERE plate = $1", plate)
	}
}

// cleanLeads removes test leads by name. Call in t.Cleanup().
func cleanLeads(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		db.Exec("DELETE FROM leads WHERE name = $1", name)
	}
}

// cleanTransactions removes test ledger entries by description. Call in t.Cleanup().
func cleanTransactions(t *testing.T, db *sql.DB, descriptions ...string) {
	t.Helper()
	for _, desc := range descriptions {
		db.Exec("DELETE FROM financial_transactions WHERE description = $1", desc)
	}
}

// cleanSiteConfigs removes all site configs. Call in t.Cleanup().
func cleanSiteConfigs(t *testing.T, db *sql.DB) {
	t.Helper()
	db.Exec("DELETE FROM site_configs")
}
