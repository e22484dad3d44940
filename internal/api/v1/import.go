package v1

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"crewcal/internal/importer"
	"crewcal/internal/model"
)

// Import ingests an uploaded workbook and runs the importer over it.
// POST /api/v1/import (multipart, field "file"; ?format=text for the
// rendered summary instead of JSON)
func (h *Handler) Import(c *gin.Context) {
	uploaded, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no uploaded file"})
		return
	}

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("crewcal_import_%d_%s", time.Now().Unix(), filepath.Base(uploaded.Filename)))
	if err := c.SaveUploadedFile(uploaded, tempPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save uploaded file failed"})
		return
	}
	defer os.Remove(tempPath)

	result, err := h.runImport(tempPath)
	if err != nil && result == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, importer.RenderSummary(result))
		return
	}
	c.JSON(http.StatusOK, result)
}

// runImport loads a fresh registry snapshot and executes one run. The
// returned result is non-nil even when the run failed outright; it then
// carries the failure diagnostic and zero counts.
func (h *Handler) runImport(path string) (*model.ImportResult, error) {
	registry, err := h.store.LoadRegistry()
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}

	coordinator := importer.NewCoordinator(h.store, registry, importer.Options{
		FilePath:       path,
		Status:         model.ProjectStatus(h.cfg.Import.ProjectStatus),
		TravelOutDays:  h.cfg.Import.TravelOutDays,
		TravelBackDays: h.cfg.Import.TravelBackDays,
		Filter:         h.cfg.Import.CellFilter(),
	})
	return coordinator.Run()
}
