package response

import (
	"sneakdrop/internal/usecase/queries"
)

// VoteMutationResponse is returned by POST and DELETE /api/votes.
type VoteMutationResponse struct {
	Message string `json:"message"`
	Votes   int64  `json:"votes"`
}

// VoteStatusResponse is returned by GET /api/votes.
type VoteStatusResponse struct {
	Votes     int64 `json:"votes"`
	UserVoted bool  `json:"userVoted"`
}

func FromVoteStatus(status *queries.VoteStatus) *VoteStatusResponse {
	return &VoteStatusResponse{
		Votes:     status.Votes,
		UserVoted: status.UserVoted,
	}
}
