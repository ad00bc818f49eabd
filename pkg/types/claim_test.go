package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimApprove(t *testing.T) {
	c := &Claim{ClaimID: "CLM-5678", UserID: 2, ItemID: "ITEM-1234", Status: ClaimStatusPending}

	c.Approve()
	assert.Equal(t, ClaimStatusApproved, c.Status)

	// Idempotent.
	c.Approve()
	assert.Equal(t, ClaimStatusApproved, c.Status)
}
