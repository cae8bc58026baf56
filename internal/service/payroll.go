package service

import (
	"errors"
	"fmt"

	"staffing-portal-backend/internal/database/models"
	apperrors "staffing-portal-backend/internal/errors"
	"staffing-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bonus rates per worker variant
const (
	programmerProjectRate   = 0.05
	programmerLanguageBonus = 3.0
	leaderProjectRate       = 0.10
	leaderExperienceBonus   = 5.0
)

// Bonus computes the compensation component a worker derives from an active
// team/project linkage. Workers without a team, or on a team without a
// project, earn no bonus.
func Bonus(worker *models.Worker) float64 {
	project := worker.ActiveProject()
	if project == nil {
		return 0
	}
	switch worker.WorkerType {
	case models.WorkerTypeProgrammer:
		return programmerProjectRate*project.Price + programmerLanguageBonus*float64(len(worker.Languages))
	case models.WorkerTypeLeader:
		years := 0
		if worker.ExperienceYears != nil {
			years = *worker.ExperienceYears
		}
		return leaderProjectRate*project.Price + leaderExperienceBonus*float64(years)
	}
	return 0
}

// TotalCompensation computes a worker's base salary plus bonus
func TotalCompensation(worker *models.Worker) float64 {
	return worker.BaseSalary + Bonus(worker)
}

// TotalPayroll sums TotalCompensation over the whole worker set, visiting
// each worker exactly once
func TotalPayroll(workers []models.Worker) float64 {
	total := 0.0
	for i := range workers {
		total += TotalCompensation(&workers[i])
	}
	return total
}

// TopEarnersOf returns every worker whose total compensation equals the
// maximum over the set, with the computed salary. Ties are not broken; an
// empty set yields an empty result.
func TopEarnersOf(workers []models.Worker) []models.Worker {
	if len(workers) == 0 {
		return nil
	}
	max := TotalCompensation(&workers[0])
	for i := 1; i < len(workers); i++ {
		if salary := TotalCompensation(&workers[i]); salary > max {
			max = salary
		}
	}
	var top []models.Worker
	for i := range workers {
		if TotalCompensation(&workers[i]) == max {
			top = append(top, workers[i])
		}
	}
	return top
}

// CountProjectsByType counts gestion and multimedia projects. Rows with any
// other type value are ignored, not counted and not errored.
func CountProjectsByType(projects []models.Project) map[models.ProjectType]int {
	counts := map[models.ProjectType]int{
		models.ProjectTypeGestion:    0,
		models.ProjectTypeMultimedia: 0,
	}
	for i := range projects {
		switch projects[i].ProjectType {
		case models.ProjectTypeGestion, models.ProjectTypeMultimedia:
			counts[projects[i].ProjectType]++
		}
	}
	return counts
}

// EarliestProjectOf returns the project with the minimum estimated time.
// Ties resolve deterministically to the earliest-created row, then by id.
func EarliestProjectOf(projects []models.Project) *models.Project {
	var earliest *models.Project
	for i := range projects {
		p := &projects[i]
		if earliest == nil {
			earliest = p
			continue
		}
		switch {
		case p.EstimatedTime < earliest.EstimatedTime:
			earliest = p
		case p.EstimatedTime == earliest.EstimatedTime:
			if p.CreatedAt.Before(earliest.CreatedAt) ||
				(p.CreatedAt.Equal(earliest.CreatedAt) && p.ID.String() < earliest.ID.String()) {
				earliest = p
			}
		}
	}
	return earliest
}

// ReportService exposes the payroll and project reports over the store
type ReportService struct {
	store repository.Store
}

// NewReportService creates a new report service
func NewReportService(store repository.Store) *ReportService {
	return &ReportService{store: store}
}

// EarnerResponse pairs a worker with the computed total compensation
type EarnerResponse struct {
	Worker WorkerResponse `json:"worker"`
	Salary float64        `json:"salary"`
}

// ProjectCountResponse reports project counts per type
type ProjectCountResponse struct {
	Gestion    int `json:"gestion"`
	Multimedia int `json:"multimedia"`
}

// PayrollResponse reports the total payroll
type PayrollResponse struct {
	Total float64 `json:"total"`
}

// TotalPayroll computes the company-wide payroll over every worker
func (s *ReportService) TotalPayroll() (*PayrollResponse, error) {
	workers, err := s.store.Workers().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load workers: %w", err)
	}
	return &PayrollResponse{Total: TotalPayroll(workers)}, nil
}

// TopEarners returns the full tied set of highest-compensated workers
func (s *ReportService) TopEarners() ([]EarnerResponse, error) {
	workers, err := s.store.Workers().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load workers: %w", err)
	}
	top := TopEarnersOf(workers)
	responses := make([]EarnerResponse, len(top))
	for i := range top {
		responses[i] = EarnerResponse{
			Worker: *toWorkerResponse(&top[i]),
			Salary: TotalCompensation(&top[i]),
		}
	}
	return responses, nil
}

// ProjectsByType counts projects per type
func (s *ReportService) ProjectsByType() (*ProjectCountResponse, error) {
	projects, err := s.store.Projects().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	counts := CountProjectsByType(projects)
	return &ProjectCountResponse{
		Gestion:    counts[models.ProjectTypeGestion],
		Multimedia: counts[models.ProjectTypeMultimedia],
	}, nil
}

// EarliestProject returns the project with minimum estimated time, or nil
// when there are no projects
func (s *ReportService) EarliestProject() (*ProjectResponse, error) {
	projects, err := s.store.Projects().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	earliest := EarliestProjectOf(projects)
	if earliest == nil {
		return nil, nil
	}
	return toProjectResponse(earliest), nil
}

// ProjectByProgrammer returns the project a programmer works on through the
// team linkage, or nil when there is none
func (s *ReportService) ProjectByProgrammer(programmerID uuid.UUID) (*ProjectResponse, error) {
	worker, err := s.store.Workers().GetByIDAndType(programmerID, models.WorkerTypeProgrammer)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgrammerNotFound
		}
		return nil, fmt.Errorf("failed to get programmer: %w", err)
	}
	project := worker.ActiveProject()
	if project == nil {
		return nil, nil
	}
	return toProjectResponse(project), nil
}

// ProgrammersByProject returns the programmers on the team assigned to a
// project; a project without a team yields an empty list
func (s *ReportService) ProgrammersByProject(projectID uuid.UUID) ([]WorkerResponse, error) {
	project, err := s.store.Projects().GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project.Team == nil {
		return []WorkerResponse{}, nil
	}
	return toWorkerResponses(project.Team.Programmers), nil
}

// ProgrammersByFramework returns the programmers on teams whose gestion
// project uses the given framework
func (s *ReportService) ProgrammersByFramework(framework string) ([]WorkerResponse, error) {
	projects, err := s.store.Projects().GetByTypeAndFramework(models.ProjectTypeGestion, framework)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	programmers := []WorkerResponse{}
	for i := range projects {
		if projects[i].Team == nil {
			continue
		}
		programmers = append(programmers, toWorkerResponses(projects[i].Team.Programmers)...)
	}
	return programmers, nil
}
