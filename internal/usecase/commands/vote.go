package commands

import (
	"context"

	"sneakdrop/internal/domain/vote"
	"sneakdrop/internal/pkg/clock"
	"sneakdrop/internal/pkg/config"
	"sneakdrop/internal/pkg/errs"
	"sneakdrop/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrDuplicateVote   = errs.New("user already voted for this product in the current window")
	ErrVoteLimit       = errs.New("vote limit reached for the current window")
	ErrVoteNotFound    = errs.New("no vote to remove")
)

type VoteResult struct {
	VoteID uuid.UUID
	Votes  int64 // all-time count after the mutation
}

type VoteCommands interface {
	Cast(ctx context.Context, userID, productID uuid.UUID) (*VoteResult, error)
	Remove(ctx context.Context, userID, productID uuid.UUID) (*VoteResult, error)
}

// CountInvalidator lets the command layer drop a cached product count after
// a mutation. Best effort: failures are ignored, the cache self-heals on TTL.
type CountInvalidator interface {
	Invalidate(ctx context.Context, productID uuid.UUID)
}

type voteUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.VoteConfig
	cache CountInvalidator
}

func NewVoteUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, cache CountInvalidator) VoteCommands {
	return &voteUseCaseImpl{uow: uow, clock: clk, cfg: cfg.Vote, cache: cache}
}

// Cast applies the windowed eligibility rules server-side and inserts the
// vote row, all inside one transaction. The per-pair advisory lock makes the
// read-check-insert sequence safe against a concurrent double cast.
func (uc *voteUseCaseImpl) Cast(ctx context.Context, userID, productID uuid.UUID) (*VoteResult, error) {
	now := uc.clock.Now()
	result := &VoteResult{}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().ProductByID(ctx, productID); derr != nil {
			return errs.Mark(derr, ErrProductNotFound)
		}

		if derr := tx.Votes().LockPair(ctx, tx.DB(), userID, productID); derr != nil {
			return derr
		}

		since := vote.WindowStart(now, uc.cfg.Window)
		records, derr := tx.Reads().RecentVotesByUser(ctx, userID, since)
		if derr != nil {
			return derr
		}

		decision := vote.Evaluate(records, productID, now, uc.cfg.Limit, uc.cfg.Window)
		if !decision.CanVote {
			switch decision.Reason {
			case vote.ReasonDuplicate:
				return ErrDuplicateVote
			default:
				return ErrVoteLimit
			}
		}

		id, derr := tx.Votes().Insert(ctx, tx.DB(), userID, productID, now)
		if derr != nil {
			return derr
		}
		result.VoteID = id

		count, derr := tx.Reads().CountVotes(ctx, productID)
		if derr != nil {
			return derr
		}
		result.Votes = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, productID)
	}
	return result, nil
}

// Remove deletes the user's newest vote row for the product, windowed or
// not. Only the owning user's row is ever touched.
func (uc *voteUseCaseImpl) Remove(ctx context.Context, userID, productID uuid.UUID) (*VoteResult, error) {
	result := &VoteResult{}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, derr := tx.Reads().LatestUserVote(ctx, userID, productID)
		if derr != nil {
			return derr
		}
		if rec == nil {
			return ErrVoteNotFound
		}

		if derr := tx.Votes().Delete(ctx, tx.DB(), rec.ID); derr != nil {
			return derr
		}
		result.VoteID = rec.ID

		count, derr := tx.Reads().CountVotes(ctx, productID)
		if derr != nil {
			return derr
		}
		result.Votes = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, productID)
	}
	return result, nil
}
