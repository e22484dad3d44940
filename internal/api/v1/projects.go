package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListProjects returns all projects, newest first.
// GET /api/v1/projects
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.store.ListProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject returns one project by id.
// GET /api/v1/projects/:id
func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.store.GetProject(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// ListProjectAssignments returns a project's assignments.
// GET /api/v1/projects/:id/assignments
func (h *Handler) ListProjectAssignments(c *gin.Context) {
	assignments, err := h.store.FindAssignmentsByProject(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assignments)
}
