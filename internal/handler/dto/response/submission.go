package response

import (
	"time"

	"sneakdrop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SubmissionResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Note      string    `json:"note"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateSubmissionResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromSubmissionView(v *queries.SubmissionView) *SubmissionResponse {
	var resp SubmissionResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromSubmissionViews(views []*queries.SubmissionView) []*SubmissionResponse {
	out := make([]*SubmissionResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromSubmissionView(v))
	}
	return out
}
