package request

import (
	"github.com/google/uuid"
)

// VoteRequest is the body of both POST and DELETE /api/votes.
type VoteRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func (r VoteRequest) ParseProductID() (uuid.UUID, error) {
	return uuid.Parse(r.ProductID)
}
