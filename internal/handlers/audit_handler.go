package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Roopkumar213/KNG/internal/models"
	"github.com/Roopkumar213/KNG/internal/services"
)

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List handles GET /admin/audit, returning the most recent entries first.
func (h *AuditHandler) List(c *gin.Context) {
	entries, err := h.auditService.Recent()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
		return
	}
	if entries == nil {
		entries = []*models.AuditLog{}
	}
	c.JSON(http.StatusOK, entries)
}
