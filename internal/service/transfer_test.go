package service_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"staffing-portal-backend/internal/database/models"
	apperrors "staffing-portal-backend/internal/errors"
	"staffing-portal-backend/internal/mocks"
	"staffing-portal-backend/internal/repository"
	"staffing-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TransferServiceTestSuite defines the test suite for TransferService
type TransferServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockStore        *mocks.MockStore
	mockWorkerRepo   *mocks.MockWorkerRepositoryInterface
	mockLanguageRepo *mocks.MockLanguageRepositoryInterface
	mockProjectRepo  *mocks.MockProjectRepositoryInterface
	mockTeamRepo     *mocks.MockTeamRepositoryInterface
	transferService  *service.TransferService
}

// SetupTest sets up the test suite
func (suite *TransferServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStore = mocks.NewMockStore(suite.ctrl)
	suite.mockWorkerRepo = mocks.NewMockWorkerRepositoryInterface(suite.ctrl)
	suite.mockLanguageRepo = mocks.NewMockLanguageRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)

	suite.mockStore.EXPECT().Workers().Return(suite.mockWorkerRepo).AnyTimes()
	suite.mockStore.EXPECT().Languages().Return(suite.mockLanguageRepo).AnyTimes()
	suite.mockStore.EXPECT().Projects().Return(suite.mockProjectRepo).AnyTimes()
	suite.mockStore.EXPECT().Teams().Return(suite.mockTeamRepo).AnyTimes()
	suite.mockStore.EXPECT().Transaction(gomock.Any()).DoAndReturn(
		func(fn func(repository.Store) error) error { return fn(suite.mockStore) },
	).AnyTimes()

	suite.transferService = service.NewTransferService(suite.mockStore)
}

// TearDownTest cleans up after each test
func (suite *TransferServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TransferServiceTestSuite) projectWithTeam() *models.Project {
	experience := 7
	directed := 5
	categoryB := models.ProgrammerCategoryB
	teamID := uuid.New()
	leaderID := uuid.New()
	projectID := uuid.New()

	leader := models.Worker{
		BaseModel:        models.BaseModel{ID: leaderID},
		Name:             "Pablo Herrera",
		Age:              48,
		Gender:           "male",
		BaseSalary:       3100,
		WorkerType:       models.WorkerTypeLeader,
		ExperienceYears:  &experience,
		DirectedProjects: &directed,
	}
	programmer := models.Worker{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Name:       "Ines Castro",
		Age:        27,
		Gender:     "female",
		BaseSalary: 1900,
		WorkerType: models.WorkerTypeProgrammer,
		Category:   &categoryB,
		TeamID:     &teamID,
		Languages: []models.Language{
			{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Go"},
			{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "SQL"},
		},
	}
	dbType := "postgres"
	project := &models.Project{
		BaseModel:     models.BaseModel{ID: projectID},
		Name:          "Warehouse Ledger",
		Description:   "stock movements ledger",
		EstimatedTime: 90,
		Price:         24000,
		ProjectType:   models.ProjectTypeGestion,
		DBType:        &dbType,
	}
	project.Team = &models.Team{
		BaseModel:   models.BaseModel{ID: teamID},
		LeaderID:    &leaderID,
		ProjectID:   &projectID,
		Leader:      &leader,
		Programmers: []models.Worker{programmer},
	}
	return project
}

// TestExport tests exporting a project's team subgraph as JSON
func (suite *TransferServiceTestSuite) TestExport() {
	project := suite.projectWithTeam()

	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	var buf bytes.Buffer
	err := suite.transferService.Export(project.ID, &buf)

	assert.NoError(suite.T(), err)

	var record service.TransferRecord
	assert.NoError(suite.T(), json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(suite.T(), "Warehouse Ledger", record.Project.Name)
	assert.Equal(suite.T(), "gestion", record.Project.Type)
	assert.Equal(suite.T(), "Pablo Herrera", record.Team.Leader.Name)
	assert.Equal(suite.T(), 7, record.Team.Leader.ExperienceYears)
	assert.Len(suite.T(), record.Team.Programmers, 1)
	assert.Equal(suite.T(), "B", record.Team.Programmers[0].Category)
	assert.Equal(suite.T(), []string{"Go", "SQL"}, record.Team.Programmers[0].Languages)
	// the encoder writes indented output
	assert.True(suite.T(), strings.HasPrefix(buf.String(), "{\n    "))
}

// TestExportProjectNotFound tests exporting a missing project
func (suite *TransferServiceTestSuite) TestExportProjectNotFound() {
	id := uuid.New()

	suite.mockProjectRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	var buf bytes.Buffer
	err := suite.transferService.Export(id, &buf)

	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
	assert.Zero(suite.T(), buf.Len())
}

// TestExportProjectWithoutTeam tests exporting a project no team is assigned to
func (suite *TransferServiceTestSuite) TestExportProjectWithoutTeam() {
	project := &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "Launch Teaser",
		ProjectType: models.ProjectTypeMultimedia,
	}

	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	err := suite.transferService.Export(project.ID, &bytes.Buffer{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

// TestExportTeamWithoutLeader tests that a leaderless team is refused rather
// than exported as a record Import would reject
func (suite *TransferServiceTestSuite) TestExportTeamWithoutLeader() {
	project := suite.projectWithTeam()
	project.Team.LeaderID = nil
	project.Team.Leader = nil

	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	err := suite.transferService.Export(project.ID, &bytes.Buffer{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaderNotFound)
}

// TestImport tests that a valid record rebuilds the subgraph with fresh identities
func (suite *TransferServiceTestSuite) TestImport() {
	payload := `{
        "project": {
            "id": "b3b4c1f2-0000-0000-0000-000000000001",
            "name": "Warehouse Ledger",
            "description": "stock movements ledger",
            "estimated_time": 90,
            "price": 24000,
            "type": "gestion",
            "db_type": "postgres"
        },
        "team": {
            "leader": {
                "name": "Pablo Herrera",
                "age": 48,
                "gender": "male",
                "base_salary": 3100,
                "experience_years": 7,
                "directed_projects": 5
            },
            "programmers": [
                {
                    "name": "Ines Castro",
                    "age": 27,
                    "gender": "female",
                    "base_salary": 1900,
                    "category": "B",
                    "languages": ["Go", "SQL"]
                }
            ]
        }
    }`

	newProjectID := uuid.New()
	newLeaderID := uuid.New()
	newProgrammerID := uuid.New()
	newTeamID := uuid.New()

	suite.mockProjectRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(project *models.Project) error {
		// identities from the record never survive import
		assert.Equal(suite.T(), uuid.Nil, project.ID)
		project.ID = newProjectID
		return nil
	})
	suite.mockWorkerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(worker *models.Worker) error {
		assert.Equal(suite.T(), models.WorkerTypeLeader, worker.WorkerType)
		worker.ID = newLeaderID
		return nil
	})
	suite.mockWorkerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(worker *models.Worker) error {
		assert.Equal(suite.T(), models.WorkerTypeProgrammer, worker.WorkerType)
		worker.ID = newProgrammerID
		return nil
	})
	suite.mockLanguageRepo.EXPECT().FindOrCreateByName("Go").
		Return(&models.Language{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Go"}, nil)
	suite.mockLanguageRepo.EXPECT().FindOrCreateByName("SQL").
		Return(&models.Language{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "SQL"}, nil)
	suite.mockWorkerRepo.EXPECT().ReplaceLanguages(gomock.Any(), gomock.Len(2)).Return(nil)
	suite.mockTeamRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(team *models.Team) error {
		assert.Equal(suite.T(), newProjectID, *team.ProjectID)
		assert.Equal(suite.T(), newLeaderID, *team.LeaderID)
		team.ID = newTeamID
		return nil
	})
	suite.mockWorkerRepo.EXPECT().AssignTeam([]uuid.UUID{newProgrammerID}, newTeamID).Return(nil)
	suite.mockTeamRepo.EXPECT().GetByID(newTeamID).Return(&models.Team{
		BaseModel: models.BaseModel{ID: newTeamID},
		LeaderID:  &newLeaderID,
		ProjectID: &newProjectID,
	}, nil)

	resp, err := suite.transferService.Import(strings.NewReader(payload))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), newTeamID, resp.ID)
}

// TestExportImportRoundTrip tests that an exported record imports back into
// an equivalent subgraph under fresh identities
func (suite *TransferServiceTestSuite) TestExportImportRoundTrip() {
	project := suite.projectWithTeam()

	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	var buf bytes.Buffer
	suite.Require().NoError(suite.transferService.Export(project.ID, &buf))

	newTeamID := uuid.New()
	var importedProject *models.Project
	var importedWorkers []*models.Worker

	suite.mockProjectRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Project) error {
		p.ID = uuid.New()
		importedProject = p
		return nil
	})
	suite.mockWorkerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(w *models.Worker) error {
		w.ID = uuid.New()
		importedWorkers = append(importedWorkers, w)
		return nil
	}).Times(2)
	suite.mockLanguageRepo.EXPECT().FindOrCreateByName(gomock.Any()).DoAndReturn(func(name string) (*models.Language, error) {
		return &models.Language{BaseModel: models.BaseModel{ID: uuid.New()}, Name: name}, nil
	}).Times(2)
	suite.mockWorkerRepo.EXPECT().ReplaceLanguages(gomock.Any(), gomock.Len(2)).Return(nil)
	suite.mockTeamRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(team *models.Team) error {
		team.ID = newTeamID
		return nil
	})
	suite.mockWorkerRepo.EXPECT().AssignTeam(gomock.Len(1), newTeamID).Return(nil)
	suite.mockTeamRepo.EXPECT().GetByID(newTeamID).Return(&models.Team{
		BaseModel: models.BaseModel{ID: newTeamID},
	}, nil)

	resp, err := suite.transferService.Import(&buf)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), newTeamID, resp.ID)

	// same data, new identities
	assert.Equal(suite.T(), project.Name, importedProject.Name)
	assert.Equal(suite.T(), project.Price, importedProject.Price)
	assert.NotEqual(suite.T(), project.ID, importedProject.ID)
	suite.Require().Len(importedWorkers, 2)
	assert.Equal(suite.T(), "Pablo Herrera", importedWorkers[0].Name)
	assert.Equal(suite.T(), models.WorkerTypeLeader, importedWorkers[0].WorkerType)
	assert.Equal(suite.T(), "Ines Castro", importedWorkers[1].Name)
	assert.NotEqual(suite.T(), project.Team.Leader.ID, importedWorkers[0].ID)
}

// TestImportMalformedJSON tests that unparsable input persists nothing
func (suite *TransferServiceTestSuite) TestImportMalformedJSON() {
	resp, err := suite.transferService.Import(strings.NewReader("{not json"))

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "malformed transfer record")
}

// TestImportMissingKeys tests the required top-level keys
func (suite *TransferServiceTestSuite) TestImportMissingKeys() {
	cases := []struct {
		name    string
		payload string
		field   string
	}{
		{"no project", `{"team": {"leader": {"name": "X", "age": 1, "gender": "m"}}}`, "project"},
		{"no team", `{"project": {"name": "X", "estimated_time": 1, "price": 1, "type": "gestion"}}`, "team"},
		{"no leader", `{"project": {"name": "X", "estimated_time": 1, "price": 1, "type": "gestion"}, "team": {"programmers": []}}`, "team.leader"},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			resp, err := suite.transferService.Import(strings.NewReader(tc.payload))

			assert.Nil(suite.T(), resp)
			assert.True(suite.T(), apperrors.IsValidation(err))
			assert.Contains(suite.T(), err.Error(), tc.field)
		})
	}
}

// TestImportInvalidFields tests field-level validation of the record
func (suite *TransferServiceTestSuite) TestImportInvalidFields() {
	base := func(mutate func(record *service.TransferRecord)) string {
		record := &service.TransferRecord{
			Project: &service.ProjectRecord{
				Name:          "Warehouse Ledger",
				EstimatedTime: 90,
				Price:         24000,
				Type:          "gestion",
			},
			Team: &service.TeamRecord{
				Leader: &service.LeaderRecord{Name: "Pablo Herrera", Age: 48, Gender: "male"},
				Programmers: []service.ProgrammerRecord{
					{Name: "Ines Castro", Age: 27, Gender: "female", Category: "B"},
				},
			},
		}
		mutate(record)
		data, err := json.Marshal(record)
		suite.Require().NoError(err)
		return string(data)
	}

	isFlash := true
	framework := "django"

	cases := []struct {
		name    string
		payload string
		field   string
	}{
		{"zero estimated time", base(func(r *service.TransferRecord) { r.Project.EstimatedTime = 0 }), "project.estimated_time"},
		{"negative price", base(func(r *service.TransferRecord) { r.Project.Price = -1 }), "project.price"},
		{"unknown project type", base(func(r *service.TransferRecord) { r.Project.Type = "legacy" }), "project.type"},
		{"multimedia fields on gestion project", base(func(r *service.TransferRecord) {
			r.Project.Framework = &framework
			r.Project.IsFlash = &isFlash
		}), "project.type"},
		{"gestion fields on multimedia project", base(func(r *service.TransferRecord) {
			r.Project.Type = "multimedia"
			r.Project.Framework = &framework
		}), "project.type"},
		{"unnamed leader", base(func(r *service.TransferRecord) { r.Team.Leader.Name = "" }), "team.leader.name"},
		{"unknown category", base(func(r *service.TransferRecord) { r.Team.Programmers[0].Category = "Z" }), "team.programmers.category"},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			resp, err := suite.transferService.Import(strings.NewReader(tc.payload))

			assert.Nil(suite.T(), resp)
			assert.True(suite.T(), apperrors.IsValidation(err))
			assert.Contains(suite.T(), err.Error(), tc.field)
		})
	}
}

// TestTransferServiceTestSuite runs the test suite
func TestTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}
