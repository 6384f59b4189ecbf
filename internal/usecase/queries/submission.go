package queries

import (
	"context"
	"time"

	"sneakdrop/internal/domain/user"

	"github.com/google/uuid"
)

var ErrSubmissionAccess = ErrAccessDenied

type SubmissionView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Note      string    `json:"note"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type SubmissionReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*SubmissionView, error)
	ListAll(ctx context.Context) ([]*SubmissionView, error)
}

type SubmissionQueries interface {
	ListByUser(ctx context.Context, userID, actorID uuid.UUID, actorRole string) ([]*SubmissionView, error)
	ListAll(ctx context.Context, actorRole string) ([]*SubmissionView, error)
}

type submissionQueriesImpl struct {
	store SubmissionReadStore
}

func NewSubmissionQueries(store SubmissionReadStore) SubmissionQueries {
	return &submissionQueriesImpl{store: store}
}

func (q *submissionQueriesImpl) ListByUser(ctx context.Context, userID, actorID uuid.UUID, actorRole string) ([]*SubmissionView, error) {
	if actorRole != user.RoleAdmin.String() && userID != actorID {
		return nil, ErrSubmissionAccess
	}
	return q.store.ListByUser(ctx, userID)
}

func (q *submissionQueriesImpl) ListAll(ctx context.Context, actorRole string) ([]*SubmissionView, error) {
	if actorRole != user.RoleAdmin.String() {
		return nil, ErrSubmissionAccess
	}
	return q.store.ListAll(ctx)
}
