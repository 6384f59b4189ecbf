package response

import (
	"time"

	"sneakdrop/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Brand            string    `json:"brand"`
	GoalLikes        int       `json:"goalLikes"`
	ImageURL         string    `json:"imageUrl"`
	Votes            int64     `json:"votes"`
	PreorderUnlocked bool      `json:"preorderUnlocked"`
	CreatedAt        time.Time `json:"createdAt"`
}

type CreateProductResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:               v.ID,
		Name:             v.Name,
		Brand:            v.Brand,
		GoalLikes:        v.GoalLikes,
		ImageURL:         v.ImageURL,
		Votes:            v.Votes,
		PreorderUnlocked: v.PreorderUnlocked(),
		CreatedAt:        v.CreatedAt,
	}
}

func FromProductViews(views []*queries.ProductView) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromProductView(v))
	}
	return out
}
