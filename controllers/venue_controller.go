package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism-backend/dto"
	"tourism-backend/services"
)

type HotelController struct {
	HotelSvc *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{HotelSvc: svc}
}

func (ctrl *HotelController) GetHotels(c *gin.Context) {
	hotels, err := ctrl.HotelSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (ctrl *HotelController) CreateHotel(c *gin.Context) {
	var req dto.CreateVenueRequest
	if !bindJSON(c, &req) {
		return
	}
	hotel, err := ctrl.HotelSvc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (ctrl *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctrl.HotelSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hotel deleted successfully"})
}

type RestaurantController struct {
	RestaurantSvc *services.RestaurantService
}

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{RestaurantSvc: svc}
}

func (ctrl *RestaurantController) GetRestaurants(c *gin.Context) {
	restaurants, err := ctrl.RestaurantSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

func (ctrl *RestaurantController) CreateRestaurant(c *gin.Context) {
	var req dto.CreateVenueRequest
	if !bindJSON(c, &req) {
		return
	}
	restaurant, err := ctrl.RestaurantSvc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (ctrl *RestaurantController) DeleteRestaurant(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctrl.RestaurantSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted successfully"})
}
