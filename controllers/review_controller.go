package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism-backend/dto"
	"tourism-backend/services"
)

type ReviewController struct {
	ReviewSvc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{ReviewSvc: svc}
}

// GET /api/location/:id/review
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	locationID, ok := paramID(c)
	if !ok {
		return
	}
	reviews, err := ctrl.ReviewSvc.ListByLocation(c.Request.Context(), locationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// POST /api/location/:id/review
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	locationID, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	review, err := ctrl.ReviewSvc.Create(c.Request.Context(), locationID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}
