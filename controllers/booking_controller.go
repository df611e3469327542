package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"elysianshores/middleware"
	"elysianshores/services"
	"elysianshores/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type bookingConfirmRequest struct {
	Items []services.BookingItem `json:"items" binding:"required,min=1"`
}

// Confirm books the whole submitted batch atomically and returns the created
// bookings with 201. A sold-out night anywhere fails the entire request.
func (bc *BookingController) Confirm(c *gin.Context) {
	var req bookingConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "Invalid booking payload")
		return
	}

	user := middleware.CurrentUser(c)
	created, err := bc.Bookings.Confirm(user.ID, req.Items)
	if err != nil {
		var soldOut *services.NoRoomsLeftError
		if errors.As(err, &soldOut) {
			utils.JSONDetailError(c, http.StatusBadRequest, soldOut.Error())
			return
		}
		utils.JSONDetailError(c, http.StatusInternalServerError, "Booking failed")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List returns the authenticated user's bookings.
func (bc *BookingController) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	bookings, err := bc.Bookings.ListForUser(user.ID)
	if err != nil {
		utils.JSONDetailError(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// Delete cancels one of the user's bookings and restores availability for
// each of its nights.
func (bc *BookingController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	user := middleware.CurrentUser(c)
	if err := bc.Bookings.Cancel(user.ID, uint(id)); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONDetailError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONDetailError(c, http.StatusInternalServerError, "Failed to cancel booking")
		return
	}

	c.Status(http.StatusNoContent)
}
