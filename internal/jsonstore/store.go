// Store implements the Registry interface over JSON file storage. The three
// collections live in memory; every mutation is written through to disk
// before it returns, and queries never round-trip to storage.
package jsonstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dukaforge/lostfound/pkg/types"
)

// Store is the sole mutator of the accounts, items, and claims collections.
// A single RWMutex covers every read-modify-persist sequence so the store
// stays consistent even if a future caller exposes it to concurrent use.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config

	accounts []types.Account
	items    []types.Item
	claims   []types.Claim
}

var _ types.Registry = (*Store)(nil)

// New creates a new JSON file store. The store is not attached; call Attach
// with a Config to initialize.
func New() *Store {
	return &Store{}
}

// Attach initializes the store with the given configuration. Creates the
// data directory if needed, bootstraps missing collection files, and loads
// all three collections into memory.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	if err := bootstrapFiles(dataDir); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	config.DataDir = dataDir
	s.config = config

	if err := s.loadAllLocked(); err != nil {
		return err
	}

	s.attached = true
	return nil
}

// Detach releases the in-memory collections. Idempotent: multiple calls
// succeed. All writes are synchronous, so there is nothing to flush.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}

	s.accounts = nil
	s.items = nil
	s.claims = nil
	s.attached = false
	return nil
}

// loadAllLocked reads all three collections from disk into memory.
// The caller must hold s.mu.
func (s *Store) loadAllLocked() error {
	accounts, err := s.loadAccountsLocked()
	if err != nil {
		return err
	}

	itemRecords, err := readRecords[itemJSON](s.path(itemsFile))
	if err != nil {
		return err
	}
	items := make([]types.Item, 0, len(itemRecords))
	for _, r := range itemRecords {
		items = append(items, itemFromJSON(r))
	}

	claimRecords, err := readRecords[claimJSON](s.path(claimsFile))
	if err != nil {
		return err
	}
	claims := make([]types.Claim, 0, len(claimRecords))
	for _, r := range claimRecords {
		claims = append(claims, claimFromJSON(r))
	}

	s.accounts = accounts
	s.items = items
	s.claims = claims
	return nil
}

// loadAccountsLocked reads the accounts collection from disk.
// The caller must hold s.mu.
func (s *Store) loadAccountsLocked() ([]types.Account, error) {
	records, err := readRecords[accountJSON](s.path(usersFile))
	if err != nil {
		return nil, err
	}
	accounts := make([]types.Account, 0, len(records))
	for _, r := range records {
		accounts = append(accounts, accountFromJSON(r))
	}
	return accounts, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.config.DataDir, name)
}

// persistAccountsLocked writes the accounts collection to users.json.
// The caller must hold s.mu.
func (s *Store) persistAccountsLocked() error {
	records := make([]accountJSON, 0, len(s.accounts))
	for _, a := range s.accounts {
		records = append(records, accountToJSON(a))
	}
	return writeRecords(s.path(usersFile), records)
}

// persistItemsLocked writes the items collection to items.json.
// The caller must hold s.mu.
func (s *Store) persistItemsLocked() error {
	records := make([]itemJSON, 0, len(s.items))
	for _, i := range s.items {
		records = append(records, itemToJSON(i))
	}
	return writeRecords(s.path(itemsFile), records)
}

// persistClaimsLocked writes the claims collection to claims.json.
// The caller must hold s.mu.
func (s *Store) persistClaimsLocked() error {
	records := make([]claimJSON, 0, len(s.claims))
	for _, c := range s.claims {
		records = append(records, claimToJSON(c))
	}
	return writeRecords(s.path(claimsFile), records)
}

// Authenticate matches email and password exactly against the accounts
// collection and returns the first match. Returns ErrNotFound when no
// account matches; the caller decides the user-facing message.
func (s *Store) Authenticate(email, password string) (*types.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrRegistryDetached
	}

	for _, a := range s.accounts {
		if a.Email == email && a.Password == password {
			cp := a
			return &cp, nil
		}
	}
	return nil, types.ErrNotFound
}

// AddAccount creates an account and persists the updated collection. An
// unrecognized role is coerced to "user", never stored verbatim. After
// persisting, the in-memory collection is refreshed from the persisted copy
// so the two views cannot silently diverge.
func (s *Store) AddAccount(id int, name, email, password, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrRegistryDetached
	}

	s.accounts = append(s.accounts, types.Account{
		ID:       id,
		Name:     name,
		Email:    email,
		Password: password,
		Role:     types.NormalizeRole(role),
	})

	if err := s.persistAccountsLocked(); err != nil {
		return fmt.Errorf("persisting accounts: %w", err)
	}

	accounts, err := s.loadAccountsLocked()
	if err != nil {
		return fmt.Errorf("reloading accounts: %w", err)
	}
	s.accounts = accounts
	return nil
}

// ReportItem creates an item with status "reported" and returns the
// generated item ID. reporterID identifies the logged-in reporter but is
// not attached to the stored record; items are anonymous on disk.
func (s *Store) ReportItem(name, description, location, itemType string, reporterID int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return "", types.ErrRegistryDetached
	}

	itemID := newShortID(itemIDPrefix, func(id string) bool {
		for _, i := range s.items {
			if i.ItemID == id {
				return true
			}
		}
		return false
	})

	s.items = append(s.items, types.Item{
		ItemID:      itemID,
		Name:        name,
		Description: description,
		Location:    location,
		ItemType:    itemType,
		Status:      types.ItemStatusReported,
	})

	if err := s.persistItemsLocked(); err != nil {
		return "", fmt.Errorf("persisting items: %w", err)
	}
	return itemID, nil
}

// SearchByName returns items whose name contains keyword, case-insensitively.
func (s *Store) SearchByName(keyword string) ([]types.Item, error) {
	return s.searchItems(keyword, func(i types.Item) string { return i.Name })
}

// SearchByLocation returns items whose location contains location,
// case-insensitively.
func (s *Store) SearchByLocation(location string) ([]types.Item, error) {
	return s.searchItems(location, func(i types.Item) string { return i.Location })
}

// SearchByType returns items whose item type contains itemType,
// case-insensitively. The value domain is {lost, found}, so in practice
// this is an exact match.
func (s *Store) SearchByType(itemType string) ([]types.Item, error) {
	return s.searchItems(itemType, func(i types.Item) string { return i.ItemType })
}

// searchItems returns items where the selected field contains query,
// case-insensitively, in insertion order.
func (s *Store) searchItems(query string, field func(types.Item) string) ([]types.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrRegistryDetached
	}

	needle := strings.ToLower(query)
	var results []types.Item
	for _, i := range s.items {
		if strings.Contains(strings.ToLower(field(i)), needle) {
			results = append(results, i)
		}
	}
	return results, nil
}

// ClaimItem creates a pending claim referencing userID and itemID and
// returns the generated claim ID. The item reference is not validated;
// approval silently skips the item update if the reference dangles.
func (s *Store) ClaimItem(userID int, itemID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return "", types.ErrRegistryDetached
	}

	claimID := newShortID(claimIDPrefix, func(id string) bool {
		for _, c := range s.claims {
			if c.ClaimID == id {
				return true
			}
		}
		return false
	})

	s.claims = append(s.claims, types.Claim{
		ClaimID: claimID,
		UserID:  userID,
		ItemID:  itemID,
		Status:  types.ClaimStatusPending,
	})

	if err := s.persistClaimsLocked(); err != nil {
		return "", fmt.Errorf("persisting claims: %w", err)
	}
	return claimID, nil
}

// ApproveClaim approves the claim with the given ID and marks the
// referenced item "claimed" if it exists. Returns false when no claim
// matches; nothing is mutated or persisted in that case.
func (s *Store) ApproveClaim(claimID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return false, types.ErrRegistryDetached
	}

	claimIdx := -1
	for i := range s.claims {
		if s.claims[i].ClaimID == claimID {
			claimIdx = i
			break
		}
	}
	if claimIdx == -1 {
		return false, nil
	}

	s.claims[claimIdx].Approve()
	for i := range s.items {
		if s.items[i].ItemID == s.claims[claimIdx].ItemID {
			s.items[i].Status = types.ItemStatusClaimed
		}
	}

	if err := s.persistClaimsLocked(); err != nil {
		return false, fmt.Errorf("persisting claims: %w", err)
	}
	if err := s.persistItemsLocked(); err != nil {
		return false, fmt.Errorf("persisting items: %w", err)
	}
	return true, nil
}

// Items returns a copy of the full items collection in insertion order.
func (s *Store) Items() ([]types.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrRegistryDetached
	}

	out := make([]types.Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Accounts returns a copy of the full accounts collection.
func (s *Store) Accounts() ([]types.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrRegistryDetached
	}

	out := make([]types.Account, len(s.accounts))
	copy(out, s.accounts)
	return out, nil
}

// Claims returns a copy of the full claims collection.
func (s *Store) Claims() ([]types.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrRegistryDetached
	}

	out := make([]types.Claim, len(s.claims))
	copy(out, s.claims)
	return out, nil
}
