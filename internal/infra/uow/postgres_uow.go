package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"sneakdrop/internal/domain/vote"
	"sneakdrop/internal/infra/db"
	"sneakdrop/internal/infra/readstore"
	"sneakdrop/internal/infra/repository"
	"sneakdrop/internal/pkg/errs"
	"sneakdrop/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	voteRepo       shared.VoteRepository
	productRepo    shared.ProductRepository
	submissionRepo shared.SubmissionRepository
	userRepo       shared.UserRepository
	commandReads   shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Votes() shared.VoteRepository {
	if t.voteRepo == nil {
		t.voteRepo = repository.NewVoteRepository()
	}
	return t.voteRepo
}

func (t *pgTx) Products() shared.ProductRepository {
	if t.productRepo == nil {
		t.productRepo = repository.NewProductRepository()
	}
	return t.productRepo
}

func (t *pgTx) Submissions() shared.SubmissionRepository {
	if t.submissionRepo == nil {
		t.submissionRepo = repository.NewSubmissionRepository()
	}
	return t.submissionRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository()
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	productStore    *readstore.ProductReadStore
	voteStore       *readstore.VoteReadStore
	submissionStore *readstore.SubmissionReadStore
}

func (r *commandReads) ProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	if r.productStore == nil {
		r.productStore = readstore.NewProductReadStore(r.dbtx)
	}

	view, err := r.productStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.ProductSnapshot{
		ID:        view.ID,
		Name:      view.Name,
		GoalLikes: view.GoalLikes,
	}, nil
}

func (r *commandReads) RecentVotesByUser(ctx context.Context, userID uuid.UUID, since time.Time) ([]vote.Record, error) {
	if r.voteStore == nil {
		r.voteStore = readstore.NewVoteReadStore(r.dbtx)
	}
	return r.voteStore.RecentByUser(ctx, userID, since)
}

func (r *commandReads) LatestUserVote(ctx context.Context, userID, productID uuid.UUID) (*vote.Record, error) {
	if r.voteStore == nil {
		r.voteStore = readstore.NewVoteReadStore(r.dbtx)
	}
	return r.voteStore.LatestByUserAndProduct(ctx, userID, productID)
}

func (r *commandReads) CountVotes(ctx context.Context, productID uuid.UUID) (int64, error) {
	if r.voteStore == nil {
		r.voteStore = readstore.NewVoteReadStore(r.dbtx)
	}
	return r.voteStore.CountByProduct(ctx, productID)
}

func (r *commandReads) SubmissionByID(ctx context.Context, id uuid.UUID) (*shared.SubmissionSnapshot, error) {
	if r.submissionStore == nil {
		r.submissionStore = readstore.NewSubmissionReadStore(r.dbtx)
	}

	view, err := r.submissionStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.SubmissionSnapshot{
		ID:     view.ID,
		UserID: view.UserID,
		Status: view.Status,
	}, nil
}
