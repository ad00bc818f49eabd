// Package export builds a queryable SQLite snapshot of the registry for
// administrative reporting. The JSON collection files remain the source of
// truth; the database is rebuilt from scratch on every export.
package export

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/lostfound/pkg/types"
)

// Schema DDL for the exported tables.
const (
	createUsers = `CREATE TABLE users (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    password TEXT NOT NULL,
    role TEXT NOT NULL
);`

	createItems = `CREATE TABLE items (
    item_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    location TEXT,
    item_type TEXT NOT NULL,
    status TEXT NOT NULL
);`

	createClaims = `CREATE TABLE claims (
    claim_id TEXT PRIMARY KEY,
    user_id INTEGER NOT NULL,
    item_id TEXT NOT NULL,
    status TEXT NOT NULL
);`
)

// Index DDL for common reporting queries.
const (
	idxItemsStatus  = `CREATE INDEX idx_items_status ON items(status);`
	idxItemsType    = `CREATE INDEX idx_items_type ON items(item_type);`
	idxClaimsStatus = `CREATE INDEX idx_claims_status ON claims(status);`
	idxClaimsItem   = `CREATE INDEX idx_claims_item ON claims(item_id);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createUsers,
	createItems,
	createClaims,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxItemsStatus,
	idxItemsType,
	idxClaimsStatus,
	idxClaimsItem,
}

// Snapshot holds the collections to export, as returned by the registry's
// read accessors.
type Snapshot struct {
	Accounts []types.Account
	Items    []types.Item
	Claims   []types.Claim
}

// Write creates a SQLite database at dbPath containing the snapshot. An
// existing database file is replaced. Inserts are transactional: the
// database ends up complete or is left with empty tables.
func Write(dbPath string, snap Snapshot) error {
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing existing database: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating indexes: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning export transaction: %w", err)
	}
	defer tx.Rollback()

	for _, a := range snap.Accounts {
		_, err := tx.Exec(
			"INSERT INTO users (id, name, email, password, role) VALUES (?, ?, ?, ?, ?)",
			a.ID, a.Name, a.Email, a.Password, a.Role,
		)
		if err != nil {
			return fmt.Errorf("inserting user %d: %w", a.ID, err)
		}
	}

	for _, i := range snap.Items {
		_, err := tx.Exec(
			"INSERT INTO items (item_id, name, description, location, item_type, status) VALUES (?, ?, ?, ?, ?, ?)",
			i.ItemID, i.Name, i.Description, i.Location, i.ItemType, i.Status,
		)
		if err != nil {
			return fmt.Errorf("inserting item %s: %w", i.ItemID, err)
		}
	}

	for _, c := range snap.Claims {
		_, err := tx.Exec(
			"INSERT INTO claims (claim_id, user_id, item_id, status) VALUES (?, ?, ?, ?)",
			c.ClaimID, c.UserID, c.ItemID, c.Status,
		)
		if err != nil {
			return fmt.Errorf("inserting claim %s: %w", c.ClaimID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export transaction: %w", err)
	}
	return nil
}
