package service

import (
	"errors"
	"fmt"

	"staffing-portal-backend/internal/database/models"
	apperrors "staffing-portal-backend/internal/errors"
	"staffing-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	store     repository.Store
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(store repository.Store, validator *validator.Validate) *ProjectService {
	return &ProjectService{store: store, validator: validator}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Description   string  `json:"description"`
	EstimatedTime int     `json:"estimated_time" validate:"required,gt=0"`
	Price         float64 `json:"price" validate:"gte=0"`
	Type          string  `json:"type" validate:"required,oneof=gestion multimedia"`

	// Multimedia fields
	IsFlash    *bool `json:"is_flash,omitempty"`
	IsDirector *bool `json:"is_director,omitempty"`

	// Gestion fields
	DBType    *string `json:"db_type,omitempty"`
	Language  *string `json:"language,omitempty"`
	Framework *string `json:"framework,omitempty"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	EstimatedTime int                `json:"estimated_time"`
	Price         float64            `json:"price"`
	Type          models.ProjectType `json:"type"`
	IsFlash       *bool              `json:"is_flash,omitempty"`
	IsDirector    *bool              `json:"is_director,omitempty"`
	DBType        *string            `json:"db_type,omitempty"`
	Language      *string            `json:"language,omitempty"`
	Framework     *string            `json:"framework,omitempty"`
}

// Create creates a project after checking the variant fields match its type.
// Fields of the other variant must be absent, not just empty.
func (s *ProjectService) Create(req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	projectType := models.ProjectType(req.Type)
	switch projectType {
	case models.ProjectTypeMultimedia:
		if req.DBType != nil || req.Language != nil || req.Framework != nil {
			return nil, apperrors.NewValidationError("type", "gestion fields are not allowed on a multimedia project")
		}
	case models.ProjectTypeGestion:
		if req.IsFlash != nil || req.IsDirector != nil {
			return nil, apperrors.NewValidationError("type", "multimedia fields are not allowed on a gestion project")
		}
	}

	project := &models.Project{
		Name:          req.Name,
		Description:   req.Description,
		EstimatedTime: req.EstimatedTime,
		Price:         req.Price,
		ProjectType:   projectType,
		IsFlash:       req.IsFlash,
		IsDirector:    req.IsDirector,
		DBType:        req.DBType,
		Language:      req.Language,
		Framework:     req.Framework,
	}

	if err := s.store.Projects().Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return toProjectResponse(project), nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.store.Projects().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return toProjectResponse(project), nil
}

// List retrieves all projects
func (s *ProjectService) List() ([]ProjectResponse, error) {
	projects, err := s.store.Projects().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *toProjectResponse(&projects[i])
	}
	return responses, nil
}

// Delete deletes a project by ID, releasing any team it is assigned to
func (s *ProjectService) Delete(id uuid.UUID) error {
	return s.store.Transaction(func(tx repository.Store) error {
		if _, err := tx.Projects().GetByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return fmt.Errorf("failed to get project: %w", err)
		}
		team, err := tx.Teams().GetByProjectID(id)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check assigned team: %w", err)
		}
		if team != nil {
			if err := tx.Teams().UpdateFields(team.ID, map[string]interface{}{"project_id": nil}); err != nil {
				return fmt.Errorf("failed to release assigned team: %w", err)
			}
		}
		if err := tx.Projects().Delete(id); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		return nil
	})
}

func toProjectResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:            project.ID,
		Name:          project.Name,
		Description:   project.Description,
		EstimatedTime: project.EstimatedTime,
		Price:         project.Price,
		Type:          project.ProjectType,
		IsFlash:       project.IsFlash,
		IsDirector:    project.IsDirector,
		DBType:        project.DBType,
		Language:      project.Language,
		Framework:     project.Framework,
	}
}
