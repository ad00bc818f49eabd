// JSON record structures for the registry data files. Field names are
// stable identifiers; the on-disk format carries no version field.
package jsonstore

import "github.com/dukaforge/lostfound/pkg/types"

// accountJSON represents an account in users.json.
type accountJSON struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// itemJSON represents an item in items.json.
type itemJSON struct {
	ItemID      string `json:"item_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ItemType    string `json:"item_type"`
	Status      string `json:"status"`
}

// claimJSON represents a claim in claims.json.
type claimJSON struct {
	ClaimID string `json:"claim_id"`
	UserID  int    `json:"user_id"`
	ItemID  string `json:"item_id"`
	Status  string `json:"status"`
}

func accountToJSON(a types.Account) accountJSON {
	return accountJSON{ID: a.ID, Name: a.Name, Email: a.Email, Password: a.Password, Role: a.Role}
}

func accountFromJSON(r accountJSON) types.Account {
	return types.Account{ID: r.ID, Name: r.Name, Email: r.Email, Password: r.Password, Role: r.Role}
}

func itemToJSON(i types.Item) itemJSON {
	return itemJSON{
		ItemID:      i.ItemID,
		Name:        i.Name,
		Description: i.Description,
		Location:    i.Location,
		ItemType:    i.ItemType,
		Status:      i.Status,
	}
}

func itemFromJSON(r itemJSON) types.Item {
	return types.Item{
		ItemID:      r.ItemID,
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		ItemType:    r.ItemType,
		Status:      r.Status,
	}
}

func claimToJSON(c types.Claim) claimJSON {
	return claimJSON{ClaimID: c.ClaimID, UserID: c.UserID, ItemID: c.ItemID, Status: c.Status}
}

func claimFromJSON(r claimJSON) types.Claim {
	return types.Claim{ClaimID: r.ClaimID, UserID: r.UserID, ItemID: r.ItemID, Status: r.Status}
}
