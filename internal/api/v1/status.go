package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStatus reports service health and registry sizes.
// GET /api/v1/status
func (h *Handler) GetStatus(c *gin.Context) {
	resources, err := h.store.ListResources()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	managers, err := h.store.ListManagers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"resources": len(resources),
		"managers":  len(managers),
	})
}
