package readstore

import (
	"context"
	"time"

	"sneakdrop/internal/domain/vote"
	"sneakdrop/internal/infra"
	"sneakdrop/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VoteReadStore struct {
	db db.DBTX
}

func NewVoteReadStore(db db.DBTX) *VoteReadStore {
	return &VoteReadStore{db: db}
}

func (s *VoteReadStore) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM votes WHERE product_id = $1`,
		productID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count votes", err)
	}
	return count, nil
}

func (s *VoteReadStore) HasVoteSince(ctx context.Context, userID, productID uuid.UUID, since time.Time) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM votes
			WHERE user_id = $1 AND product_id = $2 AND created_at >= $3
		)`,
		userID, productID, since,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user vote", err)
	}
	return exists, nil
}

// RecentByUser returns the user's votes at or after since, oldest first.
func (s *VoteReadStore) RecentByUser(ctx context.Context, userID uuid.UUID, since time.Time) ([]vote.Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, product_id, created_at
		FROM votes
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at ASC`,
		userID, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent votes", err)
	}
	defer rows.Close()

	records := make([]vote.Record, 0)
	for rows.Next() {
		var r vote.Record
		if err := rows.Scan(&r.ID, &r.UserID, &r.ProductID, &r.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan vote", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list recent votes", err)
	}
	return records, nil
}

// LatestByUserAndProduct returns the newest vote row for the pair, or nil.
func (s *VoteReadStore) LatestByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*vote.Record, error) {
	var r vote.Record
	err := s.db.QueryRow(ctx, `
		SELECT id, user_id, product_id, created_at
		FROM votes
		WHERE user_id = $1 AND product_id = $2
		ORDER BY created_at DESC
		LIMIT 1`,
		userID, productID,
	).Scan(&r.ID, &r.UserID, &r.ProductID, &r.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find latest vote", err)
	}
	return &r, nil
}
