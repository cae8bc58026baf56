package repository

import (
	"staffing-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkerRepository handles database operations for workers
type WorkerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// Create creates a new worker
func (r *WorkerRepository) Create(worker *models.Worker) error {
	return r.db.Create(worker).Error
}

// GetByID retrieves a worker by ID with languages and team linkage
func (r *WorkerRepository) GetByID(id uuid.UUID) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.Preload("Languages").Preload("Team").Preload("Team.Project").Preload("LedTeam").Preload("LedTeam.Project").
		First(&worker, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// GetByIDAndType retrieves a worker by ID restricted to one variant
func (r *WorkerRepository) GetByIDAndType(id uuid.UUID, workerType models.WorkerType) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.Preload("Languages").Preload("Team").Preload("Team.Project").Preload("LedTeam").Preload("LedTeam.Project").
		First(&worker, "id = ? AND worker_type = ?", id, workerType).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// GetAll retrieves every worker with the associations the compensation
// computations need
func (r *WorkerRepository) GetAll() ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.Preload("Languages").Preload("Team").Preload("Team.Project").Preload("LedTeam").Preload("LedTeam.Project").
		Order("created_at ASC").Find(&workers).Error
	return workers, err
}

// GetAllByType retrieves all workers of one variant
func (r *WorkerRepository) GetAllByType(workerType models.WorkerType) ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.Preload("Languages").Preload("Team").Preload("Team.Project").Preload("LedTeam").Preload("LedTeam.Project").
		Where("worker_type = ?", workerType).
		Order("created_at ASC").Find(&workers).Error
	return workers, err
}

// GetByTeamID retrieves the programmers assigned to a team
func (r *WorkerRepository) GetByTeamID(teamID uuid.UUID) ([]models.Worker, error) {
	var workers []models.Worker
	err := r.db.Preload("Languages").
		Where("team_id = ?", teamID).
		Order("created_at ASC").Find(&workers).Error
	return workers, err
}

// AssignTeam sets team_id on every listed worker
func (r *WorkerRepository) AssignTeam(workerIDs []uuid.UUID, teamID uuid.UUID) error {
	if len(workerIDs) == 0 {
		return nil
	}
	return r.db.Model(&models.Worker{}).
		Where("id IN ?", workerIDs).
		Update("team_id", teamID).Error
}

// DetachTeam nulls team_id on every worker of a team
func (r *WorkerRepository) DetachTeam(teamID uuid.UUID) error {
	return r.db.Model(&models.Worker{}).
		Where("team_id = ?", teamID).
		Update("team_id", nil).Error
}

// ReplaceLanguages replaces the worker's language associations
func (r *WorkerRepository) ReplaceLanguages(worker *models.Worker, languages []models.Language) error {
	return r.db.Model(worker).Association("Languages").Replace(languages)
}

// Update updates a worker
func (r *WorkerRepository) Update(worker *models.Worker) error {
	return r.db.Save(worker).Error
}

// Delete deletes a worker along with its language join rows
func (r *WorkerRepository) Delete(id uuid.UUID) error {
	return r.db.Select(clause.Associations).
		Delete(&models.Worker{BaseModel: models.BaseModel{ID: id}}).Error
}
