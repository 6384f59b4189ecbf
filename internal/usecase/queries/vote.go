package queries

import (
	"context"
	"time"

	"sneakdrop/internal/domain/vote"
	"sneakdrop/internal/pkg/clock"
	"sneakdrop/internal/pkg/config"

	"github.com/google/uuid"
)

type VoteStatus struct {
	Votes     int64 `json:"votes"`
	UserVoted bool  `json:"userVoted"`
}

type VoteReadStore interface {
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
	HasVoteSince(ctx context.Context, userID, productID uuid.UUID, since time.Time) (bool, error)
}

// CountCache caches all-time product counts. Misses and errors both fall
// through to the store; the DB stays the source of truth.
type CountCache interface {
	Get(ctx context.Context, productID uuid.UUID) (int64, bool)
	Set(ctx context.Context, productID uuid.UUID, count int64)
}

type VoteQueries interface {
	// Status reports the all-time count and, when userID is non-nil,
	// whether that user holds an active (windowed) vote for the product.
	Status(ctx context.Context, productID uuid.UUID, userID *uuid.UUID) (*VoteStatus, error)
}

type voteQueriesImpl struct {
	store VoteReadStore
	cache CountCache
	clock clock.Clock
	cfg   config.VoteConfig
}

func NewVoteQueries(store VoteReadStore, cache CountCache, clk clock.Clock, cfg config.Config) VoteQueries {
	return &voteQueriesImpl{store: store, cache: cache, clock: clk, cfg: cfg.Vote}
}

func (q *voteQueriesImpl) Status(ctx context.Context, productID uuid.UUID, userID *uuid.UUID) (*VoteStatus, error) {
	count, err := q.countByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	status := &VoteStatus{Votes: count}
	if userID == nil {
		return status, nil
	}

	since := vote.WindowStart(q.clock.Now(), q.cfg.Window)
	voted, err := q.store.HasVoteSince(ctx, *userID, productID, since)
	if err != nil {
		return nil, err
	}
	status.UserVoted = voted
	return status, nil
}

func (q *voteQueriesImpl) countByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	if q.cache != nil {
		if count, ok := q.cache.Get(ctx, productID); ok {
			return count, nil
		}
	}

	count, err := q.store.CountByProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	if q.cache != nil {
		q.cache.Set(ctx, productID, count)
	}
	return count, nil
}
