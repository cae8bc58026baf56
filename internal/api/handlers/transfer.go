package handlers

import (
	"fmt"
	"net/http"

	apperrors "staffing-portal-backend/internal/errors"
	"staffing-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransferHandler handles HTTP requests for team export and import
type TransferHandler struct {
	transferService service.TransferServiceInterface
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferService service.TransferServiceInterface) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// ExportTeam handles GET /transfer/export/:projectId
// @Summary Export a project's team as JSON
// @Description Streams a self-contained record of the project, its team, leader and programmers
// @Tags transfer
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {object} service.TransferRecord "Transfer record"
// @Failure 404 {object} map[string]interface{} "Project not found or has no team"
// @Security BearerAuth
// @Router /transfer/export/{projectId} [get]
func (h *TransferHandler) ExportTeam(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	c.Header("Content-Type", "application/json")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=team-%s.json", projectID))

	if err := h.transferService.Export(projectID, c.Writer); err != nil {
		// headers may already be written; only map errors raised before encoding
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsIOFailure(err):
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
}

// ImportTeam handles POST /transfer/import
// @Summary Import a team from an uploaded JSON record
// @Description Recreates the project, leader, programmers and team from a transfer record in one transaction
// @Tags transfer
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Transfer record (JSON)"
// @Success 201 {object} service.TeamResponse "Imported team"
// @Failure 400 {object} map[string]interface{} "Missing file or malformed record"
// @Failure 409 {object} map[string]interface{} "Imported leader or project already assigned"
// @Security BearerAuth
// @Router /transfer/import [post]
func (h *TransferHandler) ImportTeam(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	team, err := h.transferService.Import(file)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsIOFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, team)
}
