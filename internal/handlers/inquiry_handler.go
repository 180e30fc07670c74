package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Roopkumar213/KNG/internal/models"
	"github.com/Roopkumar213/KNG/internal/services"
	"github.com/Roopkumar213/KNG/internal/validators"
)

type InquiryHandler struct {
	inquiryService *services.InquiryService
}

func NewInquiryHandler(inquiryService *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

type inquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Create handles POST /api/inquiries.
func (h *InquiryHandler) Create(c *gin.Context) {
	var req inquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	inquiry := &models.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if _, err := h.inquiryService.Create(inquiry); err != nil {
		var ve *validators.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": ve.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Inquiry received.",
	})
}

// List handles GET /admin/inquiries.
func (h *InquiryHandler) List(c *gin.Context) {
	inquiries, err := h.inquiryService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
		return
	}
	if inquiries == nil {
		inquiries = []*models.Inquiry{}
	}
	c.JSON(http.StatusOK, inquiries)
}
