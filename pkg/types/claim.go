package types

// Claim statuses. A claim starts pending and moves one way to approved;
// there is no rejection or cancellation path.
const (
	ClaimStatusPending  = "pending"
	ClaimStatusApproved = "approved"
)

// Claim represents a user's assertion of ownership over a found item,
// subject to admin approval. UserID and ItemID are references only; their
// existence is not enforced at claim time.
type Claim struct {
	ClaimID string // Short readable ID like CLM-5678, generated on creation.
	UserID  int    // References an Account ID.
	ItemID  string // References an Item ID.
	Status  string // One of the ClaimStatus constants.
}

// Approve marks the claim as approved. One-way and idempotent.
func (c *Claim) Approve() {
	c.Status = ClaimStatusApproved
}
