package types

import "errors"

// Registry defines the interface for the authoritative record store.
// Callers attach to a backend, perform operations, and detach when done.
// The registry owns the three collections (accounts, items, claims) for the
// lifetime of the process; every mutation is persisted before it returns.
type Registry interface {
	// Attach connects the Registry to the storage described by config.
	// Creates the DataDir if it does not exist and bootstraps default
	// accounts on first run. Returns ErrAlreadyAttached if called while
	// already attached.
	Attach(config Config) error

	// Detach releases storage resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrRegistryDetached.
	Detach() error

	// Authenticate matches email and password exactly against the
	// accounts collection. Returns ErrNotFound when no account matches;
	// a credential mismatch is never a fatal condition.
	Authenticate(email, password string) (*Account, error)

	// AddAccount creates an account with the given fields. Unrecognized
	// roles are coerced to "user". The updated collection is persisted
	// and the in-memory view refreshed from the persisted copy.
	AddAccount(id int, name, email, password, role string) error

	// ReportItem creates an item with status "reported" and returns its
	// generated ID. reporterID identifies the logged-in reporter but is
	// not attached to the stored record.
	ReportItem(name, description, location, itemType string, reporterID int) (string, error)

	// SearchByName returns items whose name contains keyword,
	// case-insensitively.
	SearchByName(keyword string) ([]Item, error)

	// SearchByLocation returns items whose location contains location,
	// case-insensitively.
	SearchByLocation(location string) ([]Item, error)

	// SearchByType returns items whose item type contains itemType,
	// case-insensitively.
	SearchByType(itemType string) ([]Item, error)

	// ClaimItem creates a pending claim referencing userID and itemID and
	// returns the generated claim ID. The item reference is not validated.
	ClaimItem(userID int, itemID string) (string, error)

	// ApproveClaim approves the claim with the given ID and marks the
	// referenced item "claimed" if it exists. Returns false when no claim
	// matches; nothing is mutated in that case.
	ApproveClaim(claimID string) (bool, error)

	// Items returns a copy of the full items collection.
	Items() ([]Item, error)

	// Accounts returns a copy of the full accounts collection.
	Accounts() ([]Account, error)

	// Claims returns a copy of the full claims collection.
	Claims() ([]Claim, error)
}

// Registry lifecycle errors.
var (
	ErrRegistryDetached = errors.New("registry is detached")
	ErrAlreadyAttached  = errors.New("registry is already attached")
	ErrNotFound         = errors.New("record not found")
)
