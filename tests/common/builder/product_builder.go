//go:build unit || e2e

package builder

import (
	"time"

	reqdto "sneakdrop/internal/handler/dto/request"
	"sneakdrop/internal/usecase/queries"
	"sneakdrop/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID        uuid.UUID
	Name      string
	Brand     string
	GoalLikes int
	ImageURL  string
	Votes     int64
	CreatedAt time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:        uuid.New(),
		Name:      "Air Max 95 OG Neon",
		Brand:     "Nike",
		GoalLikes: 100,
		ImageURL:  "https://example.com/airmax95.jpg",
		Votes:     42,
		CreatedAt: time.Now(),
	}
}

func (b *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	return reqdto.CreateProductRequest{
		Name:      b.Name,
		Brand:     b.Brand,
		GoalLikes: b.GoalLikes,
		ImageURL:  b.ImageURL,
	}
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:        b.ID,
		Name:      b.Name,
		Brand:     b.Brand,
		GoalLikes: b.GoalLikes,
		ImageURL:  b.ImageURL,
		Votes:     b.Votes,
		CreatedAt: b.CreatedAt,
	}
}

func (b *ProductBuilder) BuildSnapshot() *shared.ProductSnapshot {
	return &shared.ProductSnapshot{
		ID:        b.ID,
		Name:      b.Name,
		GoalLikes: b.GoalLikes,
	}
}

func (b *ProductBuilder) WithID(id uuid.UUID) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithVotes(votes int64) *ProductBuilder {
	b.Votes = votes
	return b
}

func (b *ProductBuilder) WithGoalLikes(goal int) *ProductBuilder {
	b.GoalLikes = goal
	return b
}
