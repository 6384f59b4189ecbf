package request

type CreateSubmissionRequest struct {
	Brand string `json:"brand" binding:"required"`
	Model string `json:"model" binding:"required"`
	Note  string `json:"note" binding:"max=500"`
}

type UpdateSubmissionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}
