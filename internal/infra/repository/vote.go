package repository

import (
	"context"
	"hash/fnv"
	"time"

	"sneakdrop/internal/infra"
	"sneakdrop/internal/infra/db"

	"github.com/google/uuid"
)

type VoteRepository struct{}

func NewVoteRepository() *VoteRepository {
	return &VoteRepository{}
}

// LockPair takes a transaction-scoped advisory lock keyed on the (user,
// product) pair. Held until commit/rollback, it serializes the
// read-check-insert sequence for concurrent casts of the same pair. A plain
// unique index cannot express the rolling window because historical rows
// outlive their eligibility.
func (r *VoteRepository) LockPair(ctx context.Context, tx db.DBTX, userID, productID uuid.UUID) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, pairLockKey(userID, productID))
	if err != nil {
		return infra.WrapRepoErr("failed to lock vote pair", err)
	}
	return nil
}

func (r *VoteRepository) Insert(ctx context.Context, tx db.DBTX, userID, productID uuid.UUID, createdAt time.Time) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO votes (id, user_id, product_id, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3)
		RETURNING id`,
		userID, productID, createdAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert vote", err)
	}
	return id, nil
}

func (r *VoteRepository) Delete(ctx context.Context, tx db.DBTX, voteID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM votes WHERE id = $1`, voteID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete vote", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vote not found", nil, infra.KindNotFound)
	}
	return nil
}

func pairLockKey(userID, productID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(userID[:])
	h.Write(productID[:])
	// #nosec G115 -- advisory lock keys are opaque bigints, wraparound is fine
	return int64(h.Sum64())
}
