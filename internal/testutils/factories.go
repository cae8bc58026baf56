package testutils

import (
	"time"

	"staffing-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// ProgrammerFactory provides methods to create test programmer data
type ProgrammerFactory struct{}

// NewProgrammerFactory creates a new ProgrammerFactory
func NewProgrammerFactory() *ProgrammerFactory {
	return &ProgrammerFactory{}
}

// Create creates a test programmer with default values
func (f *ProgrammerFactory) Create() *models.Worker {
	category := models.ProgrammerCategoryB
	return &models.Worker{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Ada Developer",
		Age:        30,
		Gender:     "female",
		BaseSalary: 2000,
		WorkerType: models.WorkerTypeProgrammer,
		Category:   &category,
	}
}

// WithCategory sets a custom category for the programmer
func (f *ProgrammerFactory) WithCategory(category models.ProgrammerCategory) *models.Worker {
	p := f.Create()
	p.Category = &category
	return p
}

// WithLanguages attaches language records to the programmer
func (f *ProgrammerFactory) WithLanguages(names ...string) *models.Worker {
	p := f.Create()
	for _, name := range names {
		p.Languages = append(p.Languages, models.Language{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Name:      name,
		})
	}
	return p
}

// WithTeam places the programmer in a team
func (f *ProgrammerFactory) WithTeam(teamID uuid.UUID) *models.Worker {
	p := f.Create()
	p.TeamID = &teamID
	return p
}

// WithSalary sets a custom base salary
func (f *ProgrammerFactory) WithSalary(salary float64) *models.Worker {
	p := f.Create()
	p.BaseSalary = salary
	return p
}

// LeaderFactory provides methods to create test leader data
type LeaderFactory struct{}

// NewLeaderFactory creates a new LeaderFactory
func NewLeaderFactory() *LeaderFactory {
	return &LeaderFactory{}
}

// Create creates a test leader with default values
func (f *LeaderFactory) Create() *models.Worker {
	experience := 6
	directed := 4
	return &models.Worker{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:             "Grace Leader",
		Age:              42,
		Gender:           "female",
		BaseSalary:       3000,
		WorkerType:       models.WorkerTypeLeader,
		ExperienceYears:  &experience,
		DirectedProjects: &directed,
	}
}

// WithExperience sets the leader's years of experience
func (f *LeaderFactory) WithExperience(years int) *models.Worker {
	l := f.Create()
	l.ExperienceYears = &years
	return l
}

// WithSalary sets a custom base salary
func (f *LeaderFactory) WithSalary(salary float64) *models.Worker {
	l := f.Create()
	l.BaseSalary = salary
	return l
}

// ProjectFactory provides methods to create test project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test gestion project with default values
func (f *ProjectFactory) Create() *models.Project {
	dbType := "postgres"
	language := "Go"
	framework := "gin"
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:          "Billing Revamp",
		Description:   "A test project",
		EstimatedTime: 90,
		Price:         24000,
		ProjectType:   models.ProjectTypeGestion,
		DBType:        &dbType,
		Language:      &language,
		Framework:     &framework,
	}
}

// Multimedia creates a test multimedia project
func (f *ProjectFactory) Multimedia() *models.Project {
	isFlash := true
	isDirector := false
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:          "Product Showcase",
		Description:   "A test multimedia project",
		EstimatedTime: 45,
		Price:         12000,
		ProjectType:   models.ProjectTypeMultimedia,
		IsFlash:       &isFlash,
		IsDirector:    &isDirector,
	}
}

// WithPrice sets a custom price
func (f *ProjectFactory) WithPrice(price float64) *models.Project {
	p := f.Create()
	p.Price = price
	return p
}

// WithEstimatedTime sets a custom estimated time in days
func (f *ProjectFactory) WithEstimatedTime(days int) *models.Project {
	p := f.Create()
	p.EstimatedTime = days
	return p
}

// TeamFactory provides methods to create test team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates an empty test team
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

// WithLeaderAndProject binds a leader and a project to the team
func (f *TeamFactory) WithLeaderAndProject(leaderID, projectID uuid.UUID) *models.Team {
	team := f.Create()
	team.LeaderID = &leaderID
	team.ProjectID = &projectID
	return team
}

// UserFactory provides methods to create test user data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test user with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username: "user-" + id.String()[:8],
		Email:    "user-" + id.String()[:8] + "@test.com",
		// bcrypt hash of "password123"
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         models.UserRoleUser,
		IsActive:     true,
	}
}

// Admin creates a test admin user
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.Role = models.UserRoleAdmin
	return user
}

// FactorySet bundles all factories for convenient test setup
type FactorySet struct {
	Programmer *ProgrammerFactory
	Leader     *LeaderFactory
	Project    *ProjectFactory
	Team       *TeamFactory
	User       *UserFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Programmer: NewProgrammerFactory(),
		Leader:     NewLeaderFactory(),
		Project:    NewProjectFactory(),
		Team:       NewTeamFactory(),
		User:       NewUserFactory(),
	}
}
