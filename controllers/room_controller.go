package controllers

import (
	"net/http"

	"elysianshores/services"
	"elysianshores/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

type roomFilterRequest struct {
	Checkin  string `json:"checkin" binding:"required"`
	Checkout string `json:"checkout" binding:"required"`
	Guests   int    `json:"guests" binding:"required,min=1"`
}

// Filter lists room types available for every night of the requested range.
func (rc *RoomController) Filter(c *gin.Context) {
	var req roomFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "Invalid filter payload")
		return
	}

	checkin, err := utils.ParseDate(req.Checkin)
	if err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "checkin must be YYYY-MM-DD")
		return
	}
	checkout, err := utils.ParseDate(req.Checkout)
	if err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "checkout must be YYYY-MM-DD")
		return
	}

	listings, err := rc.Rooms.Filter(services.RoomFilter{
		Checkin:  checkin,
		Checkout: checkout,
		Guests:   req.Guests,
	})
	if err != nil {
		utils.JSONDetailError(c, http.StatusInternalServerError, "Failed to load rooms")
		return
	}

	c.JSON(http.StatusOK, listings)
}
