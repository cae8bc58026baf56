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

// TeamService handles business logic for team assignment. Every mutation runs
// inside one store transaction so the uniqueness checks and the writes they
// guard cannot interleave with a concurrent conflicting mutation; the unique
// indexes on teams.leader_id and teams.project_id are the storage backstop.
type TeamService struct {
	store     repository.Store
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(store repository.Store, validator *validator.Validate) *TeamService {
	return &TeamService{store: store, validator: validator}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	LeaderID      uuid.UUID   `json:"leader_id" validate:"required"`
	ProjectID     uuid.UUID   `json:"project_id" validate:"required"`
	ProgrammerIDs []uuid.UUID `json:"programmer_ids"`
}

// UpdateTeamRequest represents a partial team update; nil fields are left
// unchanged, not nulled
type UpdateTeamRequest struct {
	LeaderID  *uuid.UUID `json:"leader_id,omitempty"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uuid.UUID        `json:"id"`
	ProjectID   *uuid.UUID       `json:"project_id,omitempty"`
	LeaderID    *uuid.UUID       `json:"leader_id,omitempty"`
	Project     *ProjectResponse `json:"project,omitempty"`
	Leader      *WorkerResponse  `json:"leader,omitempty"`
	Programmers []WorkerResponse `json:"programmers"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// Create creates a team binding a leader, a project and a set of programmers.
// A listed programmer already belonging to another team is silently moved to
// the new one; membership changes otherwise go through delete-and-recreate.
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var teamID uuid.UUID
	err := s.store.Transaction(func(tx repository.Store) error {
		if _, err := tx.Workers().GetByIDAndType(req.LeaderID, models.WorkerTypeLeader); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrLeaderNotFound
			}
			return fmt.Errorf("failed to verify leader: %w", err)
		}
		if _, err := tx.Projects().GetByID(req.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return fmt.Errorf("failed to verify project: %w", err)
		}
		for _, programmerID := range req.ProgrammerIDs {
			if _, err := tx.Workers().GetByIDAndType(programmerID, models.WorkerTypeProgrammer); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrProgrammerNotFound
				}
				return fmt.Errorf("failed to verify programmer: %w", err)
			}
		}

		if _, err := tx.Teams().GetByLeaderID(req.LeaderID); err == nil {
			return apperrors.ErrLeaderAssigned
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check leader assignment: %w", err)
		}
		if _, err := tx.Teams().GetByProjectID(req.ProjectID); err == nil {
			return apperrors.ErrProjectAssigned
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check project assignment: %w", err)
		}

		leaderID := req.LeaderID
		projectID := req.ProjectID
		team := &models.Team{LeaderID: &leaderID, ProjectID: &projectID}
		if err := tx.Teams().Create(team); err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}
		if err := tx.Workers().AssignTeam(req.ProgrammerIDs, team.ID); err != nil {
			return fmt.Errorf("failed to assign programmers: %w", err)
		}
		teamID = team.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(teamID)
}

// Update applies a partial update to a team's leader and/or project
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	err := s.store.Transaction(func(tx repository.Store) error {
		team, err := tx.Teams().GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return fmt.Errorf("failed to get team: %w", err)
		}

		fields := map[string]interface{}{}

		if req.LeaderID != nil {
			if _, err := tx.Workers().GetByIDAndType(*req.LeaderID, models.WorkerTypeLeader); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrLeaderNotFound
				}
				return fmt.Errorf("failed to verify leader: %w", err)
			}
			if other, err := tx.Teams().GetByLeaderID(*req.LeaderID); err == nil {
				if other.ID != team.ID {
					return apperrors.ErrLeaderAssigned
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check leader assignment: %w", err)
			}
			fields["leader_id"] = *req.LeaderID
		}

		if req.ProjectID != nil {
			if _, err := tx.Projects().GetByID(*req.ProjectID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrProjectNotFound
				}
				return fmt.Errorf("failed to verify project: %w", err)
			}
			if other, err := tx.Teams().GetByProjectID(*req.ProjectID); err == nil {
				if other.ID != team.ID {
					return apperrors.ErrProjectAssigned
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check project assignment: %w", err)
			}
			fields["project_id"] = *req.ProjectID
		}

		if len(fields) == 0 {
			return nil
		}
		if err := tx.Teams().UpdateFields(team.ID, fields); err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// Delete detaches the team's programmers and removes the team row, freeing
// the leader and the project for reassignment. The programmers, leader and
// project themselves are untouched.
func (s *TeamService) Delete(id uuid.UUID) error {
	return s.store.Transaction(func(tx repository.Store) error {
		if _, err := tx.Teams().GetByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return fmt.Errorf("failed to get team: %w", err)
		}
		if err := tx.Workers().DetachTeam(id); err != nil {
			return fmt.Errorf("failed to detach programmers: %w", err)
		}
		if err := tx.Teams().Delete(id); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a team with its leader, project and programmers
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.store.Teams().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return toTeamResponse(team), nil
}

// List retrieves all teams
func (s *TeamService) List() ([]TeamResponse, error) {
	teams, err := s.store.Teams().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}
	return responses, nil
}

// AvailableLeaders returns the leaders not assigned to any team, computed as
// a set difference over all leaders and all teams
func (s *TeamService) AvailableLeaders() ([]WorkerResponse, error) {
	leaders, err := s.store.Workers().GetAllByType(models.WorkerTypeLeader)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaders: %w", err)
	}
	teams, err := s.store.Teams().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	assigned := make(map[uuid.UUID]struct{}, len(teams))
	for _, team := range teams {
		if team.LeaderID != nil {
			assigned[*team.LeaderID] = struct{}{}
		}
	}

	available := make([]WorkerResponse, 0, len(leaders))
	for i := range leaders {
		if _, ok := assigned[leaders[i].ID]; !ok {
			available = append(available, *toWorkerResponse(&leaders[i]))
		}
	}
	return available, nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	resp := &TeamResponse{
		ID:          team.ID,
		ProjectID:   team.ProjectID,
		LeaderID:    team.LeaderID,
		Programmers: toWorkerResponses(team.Programmers),
		CreatedAt:   team.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   team.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if team.Project != nil {
		resp.Project = toProjectResponse(team.Project)
	}
	if team.Leader != nil {
		resp.Leader = toWorkerResponse(team.Leader)
	}
	return resp
}
