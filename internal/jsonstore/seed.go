// First-run seeding for the registry data directory.
package jsonstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dukaforge/lostfound/pkg/types"
)

// seededAccounts are the accounts written to users.json on first run.
// The credentials are fixed and documented; they exist so a fresh
// installation always has a working admin login.
var seededAccounts = []accountJSON{
	{ID: 1, Name: "Admin", Email: "admin@dlfs.com", Password: "admin123", Role: types.RoleAdmin},
	{ID: 2, Name: "User", Email: "User@dlfs.com", Password: "user123", Role: types.RoleUser},
}

// bootstrapFiles creates any missing collection files: users.json with the
// two seeded accounts, items.json and claims.json as empty arrays. Seeding
// is idempotent: a file that already exists is never touched, so running
// bootstrap twice yields exactly the same two seeded accounts.
func bootstrapFiles(dataDir string) error {
	for _, name := range []string{usersFile, itemsFile, claimsFile} {
		path := filepath.Join(dataDir, name)

		_, err := os.Stat(path)
		if err == nil {
			continue
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		if name == usersFile {
			if err := writeRecords(path, seededAccounts); err != nil {
				return fmt.Errorf("seeding %s: %w", name, err)
			}
			continue
		}
		if err := writeRecords(path, []itemJSON{}); err != nil {
			return fmt.Errorf("initializing %s: %w", name, err)
		}
	}
	return nil
}
