package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Roopkumar213/KNG/internal/models"
	"github.com/Roopkumar213/KNG/internal/services"
	"github.com/Roopkumar213/KNG/internal/validators"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

type bookingRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Date       string `json:"date"`
	Size       int    `json:"size"`
	Experience string `json:"experience"`
	Message    string `json:"message"`
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	booking := &models.Booking{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            req.Date,
		GroupSize:       req.Size,
		ExperienceLevel: req.Experience,
		Message:         req.Message,
	}

	id, err := h.bookingService.Create(booking)
	if err != nil {
		var ve *validators.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": ve.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"bookingId": id,
		"message":   "Booking request received.",
	})
}

// List handles GET /admin/bookings.
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.bookingService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
		return
	}
	if bookings == nil {
		bookings = []*models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
