package handlers

import (
	"net/http"

	bookingRepo "groupmeet/database/repository/booking"
	"groupmeet/models"
	"groupmeet/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the external booking list. The scheduling core
// treats bookings as read-only; Replace exists for the coordinator who
// maintains the list.
type BookingHandler struct {
	Repo bookingRepo.BookingRepository
}

func NewBookingHandler(repo bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Repo: repo}
}

// ListBookingsHandler returns all external bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Repo.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ReplaceBookingsHandler replaces the external booking list wholesale.
func (h *BookingHandler) ReplaceBookingsHandler(c *gin.Context) {
	var input struct {
		Bookings []models.ExternalBooking `json:"bookings"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Repo.Replace(c.Request.Context(), input.Bookings); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to replace bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bookings replaced", "count": len(input.Bookings)})
}
