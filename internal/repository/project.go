package repository

import (
	"staffing-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project with its team subgraph
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Team").Preload("Team.Leader").
		Preload("Team.Programmers").Preload("Team.Programmers.Languages").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves all projects in a stable order
func (r *ProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("created_at ASC, id ASC").Find(&projects).Error
	return projects, err
}

// GetByTypeAndFramework retrieves projects of a type using a framework,
// with their team programmers
func (r *ProjectRepository) GetByTypeAndFramework(projectType models.ProjectType, framework string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Team").Preload("Team.Programmers").Preload("Team.Programmers.Languages").
		Where("project_type = ? AND framework = ?", projectType, framework).
		Order("created_at ASC, id ASC").Find(&projects).Error
	return projects, err
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
