package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type createNameRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListResources returns the worker registry.
// GET /api/v1/resources
func (h *Handler) ListResources(c *gin.Context) {
	resources, err := h.store.ListResources()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resources)
}

// CreateResource adds a worker to the registry.
// POST /api/v1/resources
func (h *Handler) CreateResource(c *gin.Context) {
	var req createNameRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	resource, err := h.store.CreateResource(strings.TrimSpace(req.Name))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resource)
}

// ListManagers returns the manager registry.
// GET /api/v1/managers
func (h *Handler) ListManagers(c *gin.Context) {
	managers, err := h.store.ListManagers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, managers)
}

// CreateManager adds a manager to the registry.
// POST /api/v1/managers
func (h *Handler) CreateManager(c *gin.Context) {
	var req createNameRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	manager, err := h.store.CreateManager(strings.TrimSpace(req.Name))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, manager)
}
