package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism-backend/dto"
	"tourism-backend/services"
)

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

// POST /api/location/:id/reservation
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	locationID, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	reservation, err := ctrl.ReservationSvc.Create(c.Request.Context(), locationID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// GET /api/users/:id/reservation
func (ctrl *ReservationController) GetUserReservations(c *gin.Context) {
	userID, ok := paramID(c)
	if !ok {
		return
	}
	reservations, err := ctrl.ReservationSvc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}
