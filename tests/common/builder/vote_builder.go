//go:build unit || e2e

package builder

import (
	"time"

	"sneakdrop/internal/domain/vote"
	reqdto "sneakdrop/internal/handler/dto/request"
	"sneakdrop/internal/usecase/commands"
	"sneakdrop/internal/usecase/queries"

	"github.com/google/uuid"
)

type VoteBuilder struct {
	VoteID    uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	CreatedAt time.Time
	Votes     int64
	UserVoted bool
}

func NewVoteBuilder() *VoteBuilder {
	return &VoteBuilder{
		VoteID:    uuid.New(),
		UserID:    uuid.New(),
		ProductID: uuid.New(),
		CreatedAt: time.Now(),
		Votes:     7,
		UserVoted: false,
	}
}

func (b *VoteBuilder) BuildRecord() vote.Record {
	return vote.Record{
		ID:        b.VoteID,
		UserID:    b.UserID,
		ProductID: b.ProductID,
		CreatedAt: b.CreatedAt,
	}
}

func (b *VoteBuilder) BuildRequestDTO() reqdto.VoteRequest {
	return reqdto.VoteRequest{ProductID: b.ProductID.String()}
}

func (b *VoteBuilder) BuildResult() *commands.VoteResult {
	return &commands.VoteResult{
		VoteID: b.VoteID,
		Votes:  b.Votes,
	}
}

func (b *VoteBuilder) BuildStatus() *queries.VoteStatus {
	return &queries.VoteStatus{
		Votes:     b.Votes,
		UserVoted: b.UserVoted,
	}
}

func (b *VoteBuilder) WithUserID(userID uuid.UUID) *VoteBuilder {
	b.UserID = userID
	return b
}

func (b *VoteBuilder) WithProductID(productID uuid.UUID) *VoteBuilder {
	b.ProductID = productID
	return b
}

func (b *VoteBuilder) WithCreatedAt(createdAt time.Time) *VoteBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *VoteBuilder) WithVotes(votes int64) *VoteBuilder {
	b.Votes = votes
	return b
}

func (b *VoteBuilder) AsUserVoted() *VoteBuilder {
	b.UserVoted = true
	return b
}
