package v1

import (
	"github.com/gin-gonic/gin"

	"crewcal/internal/config"
	"crewcal/internal/store"
)

// Handler is the V1 API handler.
type Handler struct {
	store *store.Store
	cfg   *config.AppConfig
}

// NewHandler creates the V1 API handler.
func NewHandler(store *store.Store, cfg *config.AppConfig) *Handler {
	return &Handler{store: store, cfg: cfg}
}

// RegisterRoutes registers the V1 API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	// schedule import
	router.POST("/import", h.Import)

	// registry management
	router.GET("/resources", h.ListResources)
	router.POST("/resources", h.CreateResource)
	router.GET("/managers", h.ListManagers)
	router.POST("/managers", h.CreateManager)

	// imported data
	router.GET("/projects", h.ListProjects)
	router.GET("/projects/:id", h.GetProject)
	router.GET("/projects/:id/assignments", h.ListProjectAssignments)
}
