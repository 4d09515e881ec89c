package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism-backend/dto"
	"tourism-backend/services"
	"tourism-backend/utils"
)

type LocationController struct {
	LocationSvc *services.LocationService
}

func NewLocationController(svc *services.LocationService) *LocationController {
	return &LocationController{LocationSvc: svc}
}

// GET /api/location
func (ctrl *LocationController) GetLocations(c *gin.Context) {
	locations, err := ctrl.LocationSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// GET /api/location/:id answers 200 null for an unknown id.
func (ctrl *LocationController) GetLocation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	detail, err := ctrl.LocationSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if detail == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// POST /api/location
func (ctrl *LocationController) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if !bindJSON(c, &req) {
		return
	}
	location, err := ctrl.LocationSvc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// PUT /api/location?id=
func (ctrl *LocationController) UpdateLocation(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		utils.JSONError(c, http.StatusBadRequest, "id is required")
		return
	}
	id, ok := parseID(c, raw)
	if !ok {
		return
	}

	var req dto.UpdateLocationRequest
	if !bindJSON(c, &req) {
		return
	}
	location, err := ctrl.LocationSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// DELETE /api/location/:id returns the deleted record, or null.
func (ctrl *LocationController) DeleteLocation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	deleted, err := ctrl.LocationSvc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if deleted == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
