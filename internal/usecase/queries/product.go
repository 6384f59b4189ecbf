package queries

import (
	"context"
	"time"

	"sneakdrop/internal/domain/product"
	"sneakdrop/internal/infra"

	"github.com/google/uuid"
)

var ErrProductNotFound = ErrNotFound

type ProductView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	GoalLikes int       `json:"goal_likes"`
	ImageURL  string    `json:"image_url"`
	Votes     int64     `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// PreorderUnlocked derives the display state from the all-time count.
func (v *ProductView) PreorderUnlocked() bool {
	return product.PreorderUnlocked(v.Votes, v.GoalLikes)
}

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context) ([]*ProductView, error)
}

type ProductQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context) ([]*ProductView, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *productQueriesImpl) List(ctx context.Context) ([]*ProductView, error) {
	return q.store.List(ctx)
}
