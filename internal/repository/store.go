package repository

import (
	"gorm.io/gorm"
)

// GormStore is the gorm-backed Store implementation
type GormStore struct {
	db        *gorm.DB
	workers   *WorkerRepository
	languages *LanguageRepository
	projects  *ProjectRepository
	teams     *TeamRepository
	users     *UserRepository
}

// NewStore creates a Store bound to the given database handle
func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:        db,
		workers:   NewWorkerRepository(db),
		languages: NewLanguageRepository(db),
		projects:  NewProjectRepository(db),
		teams:     NewTeamRepository(db),
		users:     NewUserRepository(db),
	}
}

// Workers returns the worker repository
func (s *GormStore) Workers() WorkerRepositoryInterface {
	return s.workers
}

// Languages returns the language repository
func (s *GormStore) Languages() LanguageRepositoryInterface {
	return s.languages
}

// Projects returns the project repository
func (s *GormStore) Projects() ProjectRepositoryInterface {
	return s.projects
}

// Teams returns the team repository
func (s *GormStore) Teams() TeamRepositoryInterface {
	return s.teams
}

// Users returns the user repository
func (s *GormStore) Users() UserRepositoryInterface {
	return s.users
}

// Transaction runs fn against a Store bound to a database transaction.
// Returning an error rolls back everything fn did.
func (s *GormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
