package repository

import (
	"staffing-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// WorkerRepositoryInterface defines the interface for worker repository operations
type WorkerRepositoryInterface interface {
	Create(worker *models.Worker) error
	GetByID(id uuid.UUID) (*models.Worker, error)
	GetByIDAndType(id uuid.UUID, workerType models.WorkerType) (*models.Worker, error)
	GetAll() ([]models.Worker, error)
	GetAllByType(workerType models.WorkerType) ([]models.Worker, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Worker, error)
	AssignTeam(workerIDs []uuid.UUID, teamID uuid.UUID) error
	DetachTeam(teamID uuid.UUID) error
	ReplaceLanguages(worker *models.Worker, languages []models.Language) error
	Update(worker *models.Worker) error
	Delete(id uuid.UUID) error
}

// LanguageRepositoryInterface defines the interface for language repository operations
type LanguageRepositoryInterface interface {
	GetAll() ([]models.Language, error)
	GetByName(name string) (*models.Language, error)
	FindOrCreateByName(name string) (*models.Language, error)
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetAll() ([]models.Project, error)
	GetByTypeAndFramework(projectType models.ProjectType, framework string) ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetAll() ([]models.Team, error)
	GetByLeaderID(leaderID uuid.UUID) (*models.Team, error)
	GetByProjectID(projectID uuid.UUID) (*models.Team, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// Store bundles the entity repositories with transactional scoping. Mutations
// that check an invariant before writing must run inside Transaction so the
// check-then-act sequence cannot interleave with a concurrent writer.
type Store interface {
	Workers() WorkerRepositoryInterface
	Languages() LanguageRepositoryInterface
	Projects() ProjectRepositoryInterface
	Teams() TeamRepositoryInterface
	Users() UserRepositoryInterface
	Transaction(fn func(Store) error) error
}
