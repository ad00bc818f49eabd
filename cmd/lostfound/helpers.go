// Shared helpers for lostfound CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dukaforge/lostfound/internal/jsonstore"
	"github.com/dukaforge/lostfound/pkg/types"
)

// attachRegistry resolves the data directory, creates a JSON store, and
// attaches it. The caller must defer registry.Detach().
func attachRegistry() (*jsonstore.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendJSON,
		DataDir: dataDir,
	}

	store := jsonstore.New()
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach registry: %w", err)
	}

	return store, nil
}

// requireAdmin authenticates the given credentials and verifies the account
// has the administrator role.
func requireAdmin(registry types.Registry, email, password string) (*types.Account, error) {
	account, err := registry.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, fmt.Errorf("invalid email or password")
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if !account.IsAdmin() {
		return nil, fmt.Errorf("account %q is not an administrator", email)
	}
	return account, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printItemTable prints items in a human-readable table format.
func printItemTable(items []types.Item) {
	if len(items) == 0 {
		fmt.Println("No items found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tTYPE\tSTATUS")
	fmt.Fprintln(w, "--\t----\t--------\t----\t------")
	for _, i := range items {
		name := i.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", i.ItemID, name, i.Location, i.ItemType, i.Status)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d item(s)\n", len(items))
}

// printItems renders search or listing results honoring --json.
func printItems(items []types.Item) error {
	if flagJSON {
		return printJSON(items)
	}
	printItemTable(items)
	return nil
}
