package repository

import (
	"staffing-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team with leader, project and programmers
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Leader").Preload("Project").
		Preload("Programmers").Preload("Programmers.Languages").
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams with their associations
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Preload("Leader").Preload("Project").
		Preload("Programmers").Preload("Programmers.Languages").
		Order("created_at ASC").Find(&teams).Error
	return teams, err
}

// GetByLeaderID retrieves the team a leader is assigned to
func (r *TeamRepository) GetByLeaderID(leaderID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "leader_id = ?", leaderID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByProjectID retrieves the team a project is assigned to
func (r *TeamRepository) GetByProjectID(projectID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "project_id = ?", projectID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// UpdateFields applies a partial update to a team row
func (r *TeamRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&models.Team{}).Where("id = ?", id).Updates(fields).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
