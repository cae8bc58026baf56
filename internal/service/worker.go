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

// WorkerService handles business logic for programmers and leaders
type WorkerService struct {
	store     repository.Store
	validator *validator.Validate
}

// NewWorkerService creates a new worker service
func NewWorkerService(store repository.Store, validator *validator.Validate) *WorkerService {
	return &WorkerService{store: store, validator: validator}
}

// CreateProgrammerRequest represents the request to create a programmer
type CreateProgrammerRequest struct {
	Name       string   `json:"name" validate:"required,max=200"`
	Age        int      `json:"age" validate:"required,gt=0"`
	Gender     string   `json:"gender" validate:"required,max=20"`
	BaseSalary float64  `json:"base_salary" validate:"gte=0"`
	Category   string   `json:"category" validate:"required,oneof=A B C"`
	Languages  []string `json:"languages" validate:"dive,required"`
}

// CreateLeaderRequest represents the request to create a leader
type CreateLeaderRequest struct {
	Name             string  `json:"name" validate:"required,max=200"`
	Age              int     `json:"age" validate:"required,gt=0"`
	Gender           string  `json:"gender" validate:"required,max=20"`
	BaseSalary       float64 `json:"base_salary" validate:"gte=0"`
	ExperienceYears  int     `json:"experience_years" validate:"gte=0"`
	DirectedProjects int     `json:"directed_projects" validate:"gte=0"`
}

// WorkerResponse represents the response for worker operations
type WorkerResponse struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	Age        int               `json:"age"`
	Gender     string            `json:"gender"`
	BaseSalary float64           `json:"base_salary"`
	WorkerType models.WorkerType `json:"worker_type"`

	// Programmer fields
	Category  *models.ProgrammerCategory `json:"category,omitempty"`
	TeamID    *uuid.UUID                 `json:"team_id,omitempty"`
	Languages []string                   `json:"languages,omitempty"`

	// Leader fields
	ExperienceYears  *int `json:"experience_years,omitempty"`
	DirectedProjects *int `json:"directed_projects,omitempty"`
}

// LanguageResponse represents a language
type LanguageResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CreateProgrammer creates a programmer, creating any language that does not
// exist yet by name
func (s *WorkerService) CreateProgrammer(req *CreateProgrammerRequest) (*WorkerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := models.ProgrammerCategory(req.Category)
	worker := &models.Worker{
		Name:       req.Name,
		Age:        req.Age,
		Gender:     req.Gender,
		BaseSalary: req.BaseSalary,
		WorkerType: models.WorkerTypeProgrammer,
		Category:   &category,
	}

	err := s.store.Transaction(func(tx repository.Store) error {
		languages := make([]models.Language, 0, len(req.Languages))
		for _, name := range req.Languages {
			lang, err := tx.Languages().FindOrCreateByName(name)
			if err != nil {
				return fmt.Errorf("failed to resolve language %q: %w", name, err)
			}
			languages = append(languages, *lang)
		}
		if err := tx.Workers().Create(worker); err != nil {
			return fmt.Errorf("failed to create programmer: %w", err)
		}
		if len(languages) > 0 {
			if err := tx.Workers().ReplaceLanguages(worker, languages); err != nil {
				return fmt.Errorf("failed to assign languages: %w", err)
			}
		}
		worker.Languages = languages
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toWorkerResponse(worker), nil
}

// CreateLeader creates a leader
func (s *WorkerService) CreateLeader(req *CreateLeaderRequest) (*WorkerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	worker := &models.Worker{
		Name:             req.Name,
		Age:              req.Age,
		Gender:           req.Gender,
		BaseSalary:       req.BaseSalary,
		WorkerType:       models.WorkerTypeLeader,
		ExperienceYears:  &req.ExperienceYears,
		DirectedProjects: &req.DirectedProjects,
	}

	if err := s.store.Workers().Create(worker); err != nil {
		return nil, fmt.Errorf("failed to create leader: %w", err)
	}

	return toWorkerResponse(worker), nil
}

// GetByID retrieves a worker of either variant by ID
func (s *WorkerService) GetByID(id uuid.UUID) (*WorkerResponse, error) {
	worker, err := s.store.Workers().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	return toWorkerResponse(worker), nil
}

// ListProgrammers retrieves all programmers
func (s *WorkerService) ListProgrammers() ([]WorkerResponse, error) {
	workers, err := s.store.Workers().GetAllByType(models.WorkerTypeProgrammer)
	if err != nil {
		return nil, fmt.Errorf("failed to list programmers: %w", err)
	}
	return toWorkerResponses(workers), nil
}

// ListLeaders retrieves all leaders
func (s *WorkerService) ListLeaders() ([]WorkerResponse, error) {
	workers, err := s.store.Workers().GetAllByType(models.WorkerTypeLeader)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaders: %w", err)
	}
	return toWorkerResponses(workers), nil
}

// ListLanguages retrieves all languages
func (s *WorkerService) ListLanguages() ([]LanguageResponse, error) {
	languages, err := s.store.Languages().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	responses := make([]LanguageResponse, len(languages))
	for i, lang := range languages {
		responses[i] = LanguageResponse{ID: lang.ID, Name: lang.Name}
	}
	return responses, nil
}

// DeleteProgrammer deletes a programmer by ID
func (s *WorkerService) DeleteProgrammer(id uuid.UUID) error {
	return s.deleteWorker(id, models.WorkerTypeProgrammer, apperrors.ErrProgrammerNotFound)
}

// DeleteLeader deletes a leader by ID, releasing any team the leader holds
func (s *WorkerService) DeleteLeader(id uuid.UUID) error {
	return s.deleteWorker(id, models.WorkerTypeLeader, apperrors.ErrLeaderNotFound)
}

func (s *WorkerService) deleteWorker(id uuid.UUID, workerType models.WorkerType, notFound error) error {
	return s.store.Transaction(func(tx repository.Store) error {
		if _, err := tx.Workers().GetByIDAndType(id, workerType); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound
			}
			return fmt.Errorf("failed to get worker: %w", err)
		}
		if workerType == models.WorkerTypeLeader {
			// Free the led team before the leader row goes away
			team, err := tx.Teams().GetByLeaderID(id)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check led team: %w", err)
			}
			if team != nil {
				if err := tx.Teams().UpdateFields(team.ID, map[string]interface{}{"leader_id": nil}); err != nil {
					return fmt.Errorf("failed to release led team: %w", err)
				}
			}
		}
		if err := tx.Workers().Delete(id); err != nil {
			return fmt.Errorf("failed to delete worker: %w", err)
		}
		return nil
	})
}

func toWorkerResponse(worker *models.Worker) *WorkerResponse {
	resp := &WorkerResponse{
		ID:         worker.ID,
		Name:       worker.Name,
		Age:        worker.Age,
		Gender:     worker.Gender,
		BaseSalary: worker.BaseSalary,
		WorkerType: worker.WorkerType,
	}
	switch worker.WorkerType {
	case models.WorkerTypeProgrammer:
		resp.Category = worker.Category
		resp.TeamID = worker.TeamID
		resp.Languages = worker.LanguageNames()
	case models.WorkerTypeLeader:
		resp.ExperienceYears = worker.ExperienceYears
		resp.DirectedProjects = worker.DirectedProjects
	}
	return resp
}

func toWorkerResponses(workers []models.Worker) []WorkerResponse {
	responses := make([]WorkerResponse, len(workers))
	for i := range workers {
		responses[i] = *toWorkerResponse(&workers[i])
	}
	return responses
}
