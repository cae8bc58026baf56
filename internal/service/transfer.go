package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"staffing-portal-backend/internal/database/models"
	apperrors "staffing-portal-backend/internal/errors"
	"staffing-portal-backend/internal/logger"
	"staffing-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransferService serializes a team's full subgraph to an external JSON
// record and reconstructs it with regenerated identities
type TransferService struct {
	store repository.Store
}

// NewTransferService creates a new transfer service
func NewTransferService(store repository.Store) *TransferService {
	return &TransferService{store: store}
}

// TransferRecord is the external form of a team subgraph
type TransferRecord struct {
	Project *ProjectRecord `json:"project"`
	Team    *TeamRecord    `json:"team"`
}

// ProjectRecord carries the full project fields. The id is informational
// only; import always assigns fresh identities.
type ProjectRecord struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	EstimatedTime int       `json:"estimated_time"`
	Price         float64   `json:"price"`
	Type          string    `json:"type"`
	IsFlash       *bool     `json:"is_flash"`
	IsDirector    *bool     `json:"is_director"`
	DBType        *string   `json:"db_type"`
	Language      *string   `json:"language"`
	Framework     *string   `json:"framework"`
}

// TeamRecord carries the leader and the ordered programmer list
type TeamRecord struct {
	Leader      *LeaderRecord      `json:"leader"`
	Programmers []ProgrammerRecord `json:"programmers"`
}

// LeaderRecord carries the leader fields
type LeaderRecord struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	Gender           string    `json:"gender"`
	BaseSalary       float64   `json:"base_salary"`
	ExperienceYears  int       `json:"experience_years"`
	DirectedProjects int       `json:"directed_projects"`
}

// ProgrammerRecord carries the programmer fields with languages resolved to
// names
type ProgrammerRecord struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	BaseSalary float64   `json:"base_salary"`
	Category   string    `json:"category"`
	Languages  []string  `json:"languages"`
}

// Export writes the transfer record for the team assigned to a project
func (s *TransferService) Export(projectID uuid.UUID, w io.Writer) error {
	project, err := s.store.Projects().GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}
	if project.Team == nil {
		return apperrors.ErrTeamNotFound
	}
	// a team without a leader cannot round-trip through Import, refuse it
	if project.Team.LeaderID == nil {
		return apperrors.ErrLeaderNotFound
	}
	if project.Team.Leader == nil {
		// GetByID preloads Leader, so a nil here means a dangling leader_id
		return fmt.Errorf("team %s references a missing leader", project.Team.ID)
	}

	record := &TransferRecord{
		Project: &ProjectRecord{
			ID:            project.ID,
			Name:          project.Name,
			Description:   project.Description,
			EstimatedTime: project.EstimatedTime,
			Price:         project.Price,
			Type:          string(project.ProjectType),
			IsFlash:       project.IsFlash,
			IsDirector:    project.IsDirector,
			DBType:        project.DBType,
			Language:      project.Language,
			Framework:     project.Framework,
		},
		Team: &TeamRecord{
			Programmers: make([]ProgrammerRecord, 0, len(project.Team.Programmers)),
		},
	}
	if leader := project.Team.Leader; leader != nil {
		record.Team.Leader = &LeaderRecord{
			ID:         leader.ID,
			Name:       leader.Name,
			Age:        leader.Age,
			Gender:     leader.Gender,
			BaseSalary: leader.BaseSalary,
		}
		if leader.ExperienceYears != nil {
			record.Team.Leader.ExperienceYears = *leader.ExperienceYears
		}
		if leader.DirectedProjects != nil {
			record.Team.Leader.DirectedProjects = *leader.DirectedProjects
		}
	}
	for i := range project.Team.Programmers {
		p := &project.Team.Programmers[i]
		programmerRecord := ProgrammerRecord{
			ID:         p.ID,
			Name:       p.Name,
			Age:        p.Age,
			Gender:     p.Gender,
			BaseSalary: p.BaseSalary,
			Languages:  p.LanguageNames(),
		}
		if p.Category != nil {
			programmerRecord.Category = string(*p.Category)
		}
		record.Team.Programmers = append(record.Team.Programmers, programmerRecord)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(record); err != nil {
		return apperrors.NewIOFailureError("export", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"project_id":  project.ID,
		"team_id":     project.Team.ID,
		"programmers": len(record.Team.Programmers),
	}).Infof("exported team")
	return nil
}

// Import reads a transfer record and rebuilds the subgraph in dependency
// order with fresh identities: project, then leader, then programmers, then
// the team linking them. The whole import is one transaction; any validation
// failure mid-import persists nothing.
func (s *TransferService) Import(r io.Reader) (*TeamResponse, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewIOFailureError("import", err)
	}

	var record TransferRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, apperrors.NewValidationError("", "malformed transfer record")
	}
	if err := validateTransferRecord(&record); err != nil {
		return nil, err
	}

	var teamID uuid.UUID
	err = s.store.Transaction(func(tx repository.Store) error {
		project := &models.Project{
			Name:          record.Project.Name,
			Description:   record.Project.Description,
			EstimatedTime: record.Project.EstimatedTime,
			Price:         record.Project.Price,
			ProjectType:   models.ProjectType(record.Project.Type),
			IsFlash:       record.Project.IsFlash,
			IsDirector:    record.Project.IsDirector,
			DBType:        record.Project.DBType,
			Language:      record.Project.Language,
			Framework:     record.Project.Framework,
		}
		if err := tx.Projects().Create(project); err != nil {
			return fmt.Errorf("failed to import project: %w", err)
		}

		leader := &models.Worker{
			Name:             record.Team.Leader.Name,
			Age:              record.Team.Leader.Age,
			Gender:           record.Team.Leader.Gender,
			BaseSalary:       record.Team.Leader.BaseSalary,
			WorkerType:       models.WorkerTypeLeader,
			ExperienceYears:  &record.Team.Leader.ExperienceYears,
			DirectedProjects: &record.Team.Leader.DirectedProjects,
		}
		if err := tx.Workers().Create(leader); err != nil {
			return fmt.Errorf("failed to import leader: %w", err)
		}

		programmerIDs := make([]uuid.UUID, 0, len(record.Team.Programmers))
		for i := range record.Team.Programmers {
			pr := &record.Team.Programmers[i]
			category := models.ProgrammerCategory(pr.Category)
			programmer := &models.Worker{
				Name:       pr.Name,
				Age:        pr.Age,
				Gender:     pr.Gender,
				BaseSalary: pr.BaseSalary,
				WorkerType: models.WorkerTypeProgrammer,
				Category:   &category,
			}
			if err := tx.Workers().Create(programmer); err != nil {
				return fmt.Errorf("failed to import programmer: %w", err)
			}
			languages := make([]models.Language, 0, len(pr.Languages))
			for _, name := range pr.Languages {
				lang, err := tx.Languages().FindOrCreateByName(name)
				if err != nil {
					return fmt.Errorf("failed to resolve language %q: %w", name, err)
				}
				languages = append(languages, *lang)
			}
			if len(languages) > 0 {
				if err := tx.Workers().ReplaceLanguages(programmer, languages); err != nil {
					return fmt.Errorf("failed to assign languages: %w", err)
				}
			}
			programmerIDs = append(programmerIDs, programmer.ID)
		}

		team := &models.Team{LeaderID: &leader.ID, ProjectID: &project.ID}
		if err := tx.Teams().Create(team); err != nil {
			return fmt.Errorf("failed to import team: %w", err)
		}
		if err := tx.Workers().AssignTeam(programmerIDs, team.ID); err != nil {
			return fmt.Errorf("failed to assign programmers: %w", err)
		}
		teamID = team.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	team, err := s.store.Teams().GetByID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load imported team: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"team_id":     team.ID,
		"programmers": len(record.Team.Programmers),
	}).Infof("imported team")
	return toTeamResponse(team), nil
}

func validateTransferRecord(record *TransferRecord) error {
	if record.Project == nil {
		return apperrors.NewValidationError("project", "missing key")
	}
	if record.Team == nil {
		return apperrors.NewValidationError("team", "missing key")
	}
	if record.Team.Leader == nil {
		return apperrors.NewValidationError("team.leader", "missing key")
	}
	if record.Project.Name == "" {
		return apperrors.NewValidationError("project.name", "required")
	}
	if record.Project.EstimatedTime <= 0 {
		return apperrors.NewValidationError("project.estimated_time", "must be a positive number of days")
	}
	if record.Project.Price < 0 {
		return apperrors.NewValidationError("project.price", "must be non-negative")
	}
	if !models.ProjectType(record.Project.Type).IsValid() {
		return apperrors.NewValidationError("project.type", "unrecognized project type")
	}
	switch models.ProjectType(record.Project.Type) {
	case models.ProjectTypeMultimedia:
		if record.Project.DBType != nil || record.Project.Language != nil || record.Project.Framework != nil {
			return apperrors.NewValidationError("project.type", "gestion fields are not allowed on a multimedia project")
		}
	case models.ProjectTypeGestion:
		if record.Project.IsFlash != nil || record.Project.IsDirector != nil {
			return apperrors.NewValidationError("project.type", "multimedia fields are not allowed on a gestion project")
		}
	}
	if record.Team.Leader.Name == "" {
		return apperrors.NewValidationError("team.leader.name", "required")
	}
	for i := range record.Team.Programmers {
		pr := &record.Team.Programmers[i]
		if pr.Name == "" {
			return apperrors.NewValidationError("team.programmers.name", "required")
		}
		if !models.ProgrammerCategory(pr.Category).IsValid() {
			return apperrors.NewValidationError("team.programmers.category", "unrecognized category")
		}
	}
	return nil
}
