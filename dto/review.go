package dto

type CreateReviewRequest struct {
	UserID  uint   `json:"userId" binding:"required"`
	Comment string `json:"comment" binding:"required,notblank"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}
