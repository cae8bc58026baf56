package service

import (
	"io"

	"github.com/google/uuid"
)

// WorkerServiceInterface defines the interface for worker operations
type WorkerServiceInterface interface {
	CreateProgrammer(req *CreateProgrammerRequest) (*WorkerResponse, error)
	CreateLeader(req *CreateLeaderRequest) (*WorkerResponse, error)
	GetByID(id uuid.UUID) (*WorkerResponse, error)
	ListProgrammers() ([]WorkerResponse, error)
	ListLeaders() ([]WorkerResponse, error)
	ListLanguages() ([]LanguageResponse, error)
	DeleteProgrammer(id uuid.UUID) error
	DeleteLeader(id uuid.UUID) error
}

// ProjectServiceInterface defines the interface for project operations
type ProjectServiceInterface interface {
	Create(req *CreateProjectRequest) (*ProjectResponse, error)
	GetByID(id uuid.UUID) (*ProjectResponse, error)
	List() ([]ProjectResponse, error)
	Delete(id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team assignment operations
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (*TeamResponse, error)
	List() ([]TeamResponse, error)
	AvailableLeaders() ([]WorkerResponse, error)
}

// ReportServiceInterface defines the interface for payroll and project reports
type ReportServiceInterface interface {
	TotalPayroll() (*PayrollResponse, error)
	TopEarners() ([]EarnerResponse, error)
	ProjectsByType() (*ProjectCountResponse, error)
	EarliestProject() (*ProjectResponse, error)
	ProjectByProgrammer(programmerID uuid.UUID) (*ProjectResponse, error)
	ProgrammersByProject(projectID uuid.UUID) ([]WorkerResponse, error)
	ProgrammersByFramework(framework string) ([]WorkerResponse, error)
}

// TransferServiceInterface defines the interface for team export/import
type TransferServiceInterface interface {
	Export(projectID uuid.UUID, w io.Writer) error
	Import(r io.Reader) (*TeamResponse, error)
}
