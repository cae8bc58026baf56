package handlers

import (
	"errors"
	"net/http"

	apperrors "staffing-portal-backend/internal/errors"
	"staffing-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkerHandler handles HTTP requests for programmers and leaders
type WorkerHandler struct {
	workerService service.WorkerServiceInterface
}

// NewWorkerHandler creates a new worker handler
func NewWorkerHandler(workerService service.WorkerServiceInterface) *WorkerHandler {
	return &WorkerHandler{workerService: workerService}
}

// CreateProgrammer handles POST /programmers
// @Summary Create a new programmer
// @Description Create a programmer; unknown language names are created on the fly
// @Tags workers
// @Accept json
// @Produce json
// @Param programmer body service.CreateProgrammerRequest true "Programmer data"
// @Success 201 {object} service.WorkerResponse "Successfully created programmer"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /programmers [post]
func (h *WorkerHandler) CreateProgrammer(c *gin.Context) {
	var req service.CreateProgrammerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	worker, err := h.workerService.CreateProgrammer(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, worker)
}

// CreateLeader handles POST /leaders
// @Summary Create a new leader
// @Tags workers
// @Accept json
// @Produce json
// @Param leader body service.CreateLeaderRequest true "Leader data"
// @Success 201 {object} service.WorkerResponse "Successfully created leader"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /leaders [post]
func (h *WorkerHandler) CreateLeader(c *gin.Context) {
	var req service.CreateLeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	worker, err := h.workerService.CreateLeader(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, worker)
}

// ListProgrammers handles GET /programmers
// @Summary List all programmers
// @Tags workers
// @Produce json
// @Success 200 {array} service.WorkerResponse "Programmers"
// @Security BearerAuth
// @Router /programmers [get]
func (h *WorkerHandler) ListProgrammers(c *gin.Context) {
	workers, err := h.workerService.ListProgrammers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, workers)
}

// ListLeaders handles GET /leaders
// @Summary List all leaders
// @Tags workers
// @Produce json
// @Success 200 {array} service.WorkerResponse "Leaders"
// @Security BearerAuth
// @Router /leaders [get]
func (h *WorkerHandler) ListLeaders(c *gin.Context) {
	workers, err := h.workerService.ListLeaders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, workers)
}

// GetWorker handles GET /workers/:id
// @Summary Get worker by ID
// @Tags workers
// @Produce json
// @Param id path string true "Worker ID (UUID)"
// @Success 200 {object} service.WorkerResponse "Worker"
// @Failure 400 {object} map[string]interface{} "Invalid worker ID"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Security BearerAuth
// @Router /workers/{id} [get]
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid worker ID"})
		return
	}

	worker, err := h.workerService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, worker)
}

// DeleteProgrammer handles DELETE /programmers/:id
// @Summary Delete a programmer
// @Tags workers
// @Produce json
// @Param id path string true "Programmer ID (UUID)"
// @Success 200 {object} map[string]interface{} "Deletion confirmation"
// @Failure 404 {object} map[string]interface{} "Programmer not found"
// @Security BearerAuth
// @Router /programmers/{id} [delete]
func (h *WorkerHandler) DeleteProgrammer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid programmer ID"})
		return
	}

	if err := h.workerService.DeleteProgrammer(id); err != nil {
		if errors.Is(err, apperrors.ErrProgrammerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "programmer deleted"})
}

// DeleteLeader handles DELETE /leaders/:id (admin only)
// @Summary Delete a leader
// @Description Delete a leader; any team the leader holds is released first
// @Tags workers
// @Produce json
// @Param id path string true "Leader ID (UUID)"
// @Success 200 {object} map[string]interface{} "Deletion confirmation"
// @Failure 403 {object} map[string]interface{} "Admin role required"
// @Failure 404 {object} map[string]interface{} "Leader not found"
// @Security BearerAuth
// @Router /leaders/{id} [delete]
func (h *WorkerHandler) DeleteLeader(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid leader ID"})
		return
	}

	if err := h.workerService.DeleteLeader(id); err != nil {
		if errors.Is(err, apperrors.ErrLeaderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "leader deleted"})
}

// ListLanguages handles GET /languages
// @Summary List all languages
// @Tags workers
// @Produce json
// @Success 200 {array} service.LanguageResponse "Languages"
// @Security BearerAuth
// @Router /languages [get]
func (h *WorkerHandler) ListLanguages(c *gin.Context) {
	languages, err := h.workerService.ListLanguages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, languages)
}
