package types

import "errors"

// Item types. An item is reported either as lost by its owner or as found
// by whoever picked it up.
const (
	ItemTypeLost  = "lost"
	ItemTypeFound = "found"
)

// Item statuses. An item progresses through these statuses during its
// lifecycle. "approved" and "returned" are reserved for administrative
// follow-up; no registry operation currently drives them.
const (
	ItemStatusReported = "reported"
	ItemStatusClaimed  = "claimed"
	ItemStatusApproved = "approved"
	ItemStatusReturned = "returned"
)

// validItemTypes is the set of recognized item type values.
var validItemTypes = map[string]bool{
	ItemTypeLost:  true,
	ItemTypeFound: true,
}

// validItemStatuses is the set of recognized item status values.
var validItemStatuses = map[string]bool{
	ItemStatusReported: true,
	ItemStatusClaimed:  true,
	ItemStatusApproved: true,
	ItemStatusReturned: true,
}

// Entity validation errors.
var (
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrInvalidItemType = errors.New("invalid item type")
)

// Item represents a lost or found object report. Items are created with
// status "reported" and are never deleted.
type Item struct {
	ItemID      string // Short readable ID like ITEM-1234, generated on creation.
	Name        string
	Description string
	Location    string // Free text, where the item was lost or found.
	ItemType    string // One of the ItemType constants.
	Status      string // One of the ItemStatus constants.
}

// SetStatus sets the item status to the given value.
// Returns ErrInvalidStatus if the status is not recognized.
// Idempotent: setting the current status succeeds without error.
func (i *Item) SetStatus(status string) error {
	if !validItemStatuses[status] {
		return ErrInvalidStatus
	}
	i.Status = status
	return nil
}

// ValidItemType reports whether itemType is a recognized item type value.
func ValidItemType(itemType string) bool {
	return validItemTypes[itemType]
}
