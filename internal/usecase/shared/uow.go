package shared

import (
	"context"
	"time"

	"sneakdrop/internal/domain/product"
	"sneakdrop/internal/domain/submission"
	"sneakdrop/internal/domain/vote"
	"sneakdrop/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Votes() VoteRepository
	Products() ProductRepository
	Submissions() SubmissionRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the write-path reads: minimal snapshots used to validate
// commands before mutating. The windowed recent-votes read here and the
// evaluator must share the same window start.
type CommandReads interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	RecentVotesByUser(ctx context.Context, userID uuid.UUID, since time.Time) ([]vote.Record, error)
	LatestUserVote(ctx context.Context, userID, productID uuid.UUID) (*vote.Record, error)
	CountVotes(ctx context.Context, productID uuid.UUID) (int64, error)
	SubmissionByID(ctx context.Context, id uuid.UUID) (*SubmissionSnapshot, error)
}

type VoteRepository interface {
	// LockPair serializes concurrent casts for the same (user, product)
	// within the surrounding transaction.
	LockPair(ctx context.Context, tx db.DBTX, userID, productID uuid.UUID) error
	Insert(ctx context.Context, tx db.DBTX, userID, productID uuid.UUID, createdAt time.Time) (uuid.UUID, error)
	Delete(ctx context.Context, tx db.DBTX, voteID uuid.UUID) error
}

type ProductRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *product.Product) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, name, brand string, goalLikes int, imageURL string) error
}

type SubmissionRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *submission.Submission) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status submission.Status) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, email, username, passwordHash, role string) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
