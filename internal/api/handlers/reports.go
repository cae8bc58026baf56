package handlers

import (
	"net/http"

	apperrors "staffing-portal-backend/internal/errors"
	"staffing-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles HTTP requests for payroll and project reports
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// TotalPayroll handles GET /reports/payroll-total
// @Summary Total monthly payroll
// @Description Sum of salary plus bonus across every worker
// @Tags reports
// @Produce json
// @Success 200 {object} service.PayrollResponse "Total payroll"
// @Security BearerAuth
// @Router /reports/payroll-total [get]
func (h *ReportHandler) TotalPayroll(c *gin.Context) {
	total, err := h.reportService.TotalPayroll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, total)
}

// TopEarners handles GET /reports/top-earners
// @Summary Workers with the highest total compensation
// @Description All workers tied at the maximum salary plus bonus
// @Tags reports
// @Produce json
// @Success 200 {array} service.EarnerResponse "Top earners"
// @Security BearerAuth
// @Router /reports/top-earners [get]
func (h *ReportHandler) TopEarners(c *gin.Context) {
	earners, err := h.reportService.TopEarners()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, earners)
}

// ProjectsByType handles GET /reports/project-count
// @Summary Count projects per project type
// @Tags reports
// @Produce json
// @Success 200 {object} service.ProjectCountResponse "Counts per type"
// @Security BearerAuth
// @Router /reports/project-count [get]
func (h *ReportHandler) ProjectsByType(c *gin.Context) {
	counts, err := h.reportService.ProjectsByType()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, counts)
}

// EarliestProject handles GET /reports/earliest-project
// @Summary Project closest to its delivery date
// @Description The project with the smallest estimated time; null when no projects exist
// @Tags reports
// @Produce json
// @Success 200 {object} service.ProjectResponse "Earliest project, or null"
// @Security BearerAuth
// @Router /reports/earliest-project [get]
func (h *ReportHandler) EarliestProject(c *gin.Context) {
	project, err := h.reportService.EarliestProject()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, project)
}

// ProjectByProgrammer handles GET /reports/programmer-project/:id
// @Summary Project a programmer is working on
// @Tags reports
// @Produce json
// @Param id path string true "Programmer ID (UUID)"
// @Success 200 {object} service.ProjectResponse "Project"
// @Failure 404 {object} map[string]interface{} "Programmer or project not found"
// @Security BearerAuth
// @Router /reports/programmer-project/{id} [get]
func (h *ReportHandler) ProjectByProgrammer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid programmer ID"})
		return
	}

	project, err := h.reportService.ProjectByProgrammer(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, project)
}

// ProgrammersByProject handles GET /reports/project-programmers/:id
// @Summary Programmers working on a project
// @Tags reports
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} service.WorkerResponse "Programmers"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Security BearerAuth
// @Router /reports/project-programmers/{id} [get]
func (h *ReportHandler) ProgrammersByProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	programmers, err := h.reportService.ProgrammersByProject(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, programmers)
}

// ProgrammersByFramework handles GET /reports/framework-programmers/:framework
// @Summary Programmers on multimedia projects using a framework
// @Tags reports
// @Produce json
// @Param framework path string true "Framework name"
// @Success 200 {array} service.WorkerResponse "Programmers"
// @Security BearerAuth
// @Router /reports/framework-programmers/{framework} [get]
func (h *ReportHandler) ProgrammersByFramework(c *gin.Context) {
	framework := c.Param("framework")
	if framework == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "framework is required"})
		return
	}

	programmers, err := h.reportService.ProgrammersByFramework(framework)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, programmers)
}
