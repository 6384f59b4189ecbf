package request

type CreateProductRequest struct {
	Name      string `json:"name" binding:"required"`
	Brand     string `json:"brand" binding:"required"`
	GoalLikes int    `json:"goalLikes" binding:"required,gt=0"`
	ImageURL  string `json:"imageUrl"`
}

type UpdateProductRequest struct {
	Name      string `json:"name" binding:"required"`
	Brand     string `json:"brand" binding:"required"`
	GoalLikes int    `json:"goalLikes" binding:"required,gt=0"`
	ImageURL  string `json:"imageUrl"`
}
