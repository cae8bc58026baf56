package service_test

import (
	"testing"
	"time"

	"staffing-portal-backend/internal/database/models"
	apperrors "staffing-portal-backend/internal/errors"
	"staffing-portal-backend/internal/mocks"
	"staffing-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func programmerOnProject(baseSalary, projectPrice float64, languageCount int) models.Worker {
	category := models.ProgrammerCategoryB
	teamID := uuid.New()
	languages := make([]models.Language, languageCount)
	for i := range languages {
		languages[i] = models.Language{Name: "lang"}
	}
	return models.Worker{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Name:       "programmer",
		Age:        30,
		Gender:     "female",
		BaseSalary: baseSalary,
		WorkerType: models.WorkerTypeProgrammer,
		Category:   &category,
		TeamID:     &teamID,
		Languages:  languages,
		Team: &models.Team{
			BaseModel: models.BaseModel{ID: teamID},
			Project:   &models.Project{Price: projectPrice},
		},
	}
}

func leaderOnProject(baseSalary, projectPrice float64, experienceYears int) models.Worker {
	return models.Worker{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		Name:            "leader",
		Age:             45,
		Gender:          "male",
		BaseSalary:      baseSalary,
		WorkerType:      models.WorkerTypeLeader,
		ExperienceYears: &experienceYears,
		LedTeam: &models.Team{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Project:   &models.Project{Price: projectPrice},
		},
	}
}

func TestBonusProgrammer(t *testing.T) {
	// 5% of 2000 plus 3 per language
	worker := programmerOnProject(800, 2000, 2)
	assert.Equal(t, 106.0, service.Bonus(&worker))
	assert.Equal(t, 906.0, service.TotalCompensation(&worker))
}

func TestBonusLeader(t *testing.T) {
	// 10% of 2000 plus 5 per year of experience
	worker := leaderOnProject(1000, 2000, 4)
	assert.Equal(t, 220.0, service.Bonus(&worker))
	assert.Equal(t, 1220.0, service.TotalCompensation(&worker))
}

func TestBonusWithoutTeam(t *testing.T) {
	category := models.ProgrammerCategoryA
	worker := models.Worker{
		BaseSalary: 1500,
		WorkerType: models.WorkerTypeProgrammer,
		Category:   &category,
		Languages:  []models.Language{{Name: "Go"}, {Name: "Java"}},
	}
	assert.Equal(t, 0.0, service.Bonus(&worker))
	assert.Equal(t, 1500.0, service.TotalCompensation(&worker))
}

func TestBonusTeamWithoutProject(t *testing.T) {
	worker := programmerOnProject(800, 0, 3)
	worker.Team.Project = nil
	assert.Equal(t, 0.0, service.Bonus(&worker))
}

func TestTotalPayroll(t *testing.T) {
	workers := []models.Worker{
		programmerOnProject(800, 2000, 2), // 906
		leaderOnProject(1000, 2000, 4),    // 1220
	}
	assert.Equal(t, 2126.0, service.TotalPayroll(workers))
	assert.Equal(t, 0.0, service.TotalPayroll(nil))
}

func TestTopEarnersOfTies(t *testing.T) {
	a := programmerOnProject(906, 0, 0)
	a.Team = nil
	b := leaderOnProject(906, 0, 0)
	b.LedTeam = nil
	c := programmerOnProject(500, 0, 0)
	c.Team = nil

	top := service.TopEarnersOf([]models.Worker{a, b, c})
	assert.Len(t, top, 2)
	assert.Equal(t, a.ID, top[0].ID)
	assert.Equal(t, b.ID, top[1].ID)
}

func TestTopEarnersOfEmpty(t *testing.T) {
	assert.Nil(t, service.TopEarnersOf(nil))
	assert.Nil(t, service.TopEarnersOf([]models.Worker{}))
}

func TestCountProjectsByType(t *testing.T) {
	projects := []models.Project{
		{ProjectType: models.ProjectTypeGestion},
		{ProjectType: models.ProjectTypeGestion},
		{ProjectType: models.ProjectTypeMultimedia},
		{ProjectType: models.ProjectType("legacy")}, // ignored
	}
	counts := service.CountProjectsByType(projects)
	assert.Equal(t, 2, counts[models.ProjectTypeGestion])
	assert.Equal(t, 1, counts[models.ProjectTypeMultimedia])
}

func TestEarliestProjectOf(t *testing.T) {
	now := time.Now()
	late := models.Project{BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: now}, EstimatedTime: 90}
	early := models.Project{BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: now}, EstimatedTime: 30}

	earliest := service.EarliestProjectOf([]models.Project{late, early})
	assert.Equal(t, early.ID, earliest.ID)

	assert.Nil(t, service.EarliestProjectOf(nil))
}

func TestEarliestProjectOfTieBreaksOnCreation(t *testing.T) {
	older := models.Project{
		BaseModel:     models.BaseModel{ID: uuid.New(), CreatedAt: time.Now().Add(-time.Hour)},
		EstimatedTime: 30,
	}
	newer := models.Project{
		BaseModel:     models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		EstimatedTime: 30,
	}

	earliest := service.EarliestProjectOf([]models.Project{newer, older})
	assert.Equal(t, older.ID, earliest.ID)
}

// ReportServiceTestSuite defines the test suite for ReportService
type ReportServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockStore       *mocks.MockStore
	mockWorkerRepo  *mocks.MockWorkerRepositoryInterface
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	reportService   *service.ReportService
}

// SetupTest sets up the test suite
func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStore = mocks.NewMockStore(suite.ctrl)
	suite.mockWorkerRepo = mocks.NewMockWorkerRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.reportService = service.NewReportService(suite.mockStore)
}

// TearDownTest cleans up after each test
func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestTotalPayroll tests the company-wide payroll report
func (suite *ReportServiceTestSuite) TestTotalPayroll() {
	workers := []models.Worker{
		programmerOnProject(800, 2000, 2),
		leaderOnProject(1000, 2000, 4),
	}

	suite.mockStore.EXPECT().Workers().Return(suite.mockWorkerRepo)
	suite.mockWorkerRepo.EXPECT().GetAll().Return(workers, nil)

	resp, err := suite.reportService.TotalPayroll()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2126.0, resp.Total)
}

// TestTopEarners tests that the full tied set is reported
func (suite *ReportServiceTestSuite) TestTopEarners() {
	a := programmerOnProject(800, 2000, 2)
	b := programmerOnProject(500, 0, 0)
	b.Team = nil

	suite.mockStore.EXPECT().Workers().Return(suite.mockWorkerRepo)
	suite.mockWorkerRepo.EXPECT().GetAll().Return([]models.Worker{a, b}, nil)

	earners, err := suite.reportService.TopEarners()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), earners, 1)
	assert.Equal(suite.T(), a.ID, earners[0].Worker.ID)
	assert.Equal(suite.T(), 906.0, earners[0].Salary)
}

// TestProjectsByType tests the per-type project counts
func (suite *ReportServiceTestSuite) TestProjectsByType() {
	projects := []models.Project{
		{ProjectType: models.ProjectTypeGestion},
		{ProjectType: models.ProjectTypeMultimedia},
		{ProjectType: models.ProjectTypeMultimedia},
	}

	suite.mockStore.EXPECT().Projects().Return(suite.mockProjectRepo)
	suite.mockProjectRepo.EXPECT().GetAll().Return(projects, nil)

	counts, err := suite.reportService.ProjectsByType()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, counts.Gestion)
	assert.Equal(suite.T(), 2, counts.Multimedia)
}

// TestEarliestProjectEmpty tests that no projects yields a nil report
func (suite *ReportServiceTestSuite) TestEarliestProjectEmpty() {
	suite.mockStore.EXPECT().Projects().Return(suite.mockProjectRepo)
	suite.mockProjectRepo.EXPECT().GetAll().Return([]models.Project{}, nil)

	resp, err := suite.reportService.EarliestProject()

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp)
}

// TestProjectByProgrammerNotFound tests the missing-programmer path
func (suite *ReportServiceTestSuite) TestProjectByProgrammerNotFound() {
	programmerID := uuid.New()

	suite.mockStore.EXPECT().Workers().Return(suite.mockWorkerRepo)
	suite.mockWorkerRepo.EXPECT().
		GetByIDAndType(programmerID, models.WorkerTypeProgrammer).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.reportService.ProjectByProgrammer(programmerID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProgrammerNotFound)
}

// TestProjectByProgrammerWithoutTeam tests that a teamless programmer yields nil
func (suite *ReportServiceTestSuite) TestProjectByProgrammerWithoutTeam() {
	worker := programmerOnProject(800, 2000, 1)
	worker.Team = nil
	worker.TeamID = nil

	suite.mockStore.EXPECT().Workers().Return(suite.mockWorkerRepo)
	suite.mockWorkerRepo.EXPECT().
		GetByIDAndType(worker.ID, models.WorkerTypeProgrammer).
		Return(&worker, nil)

	resp, err := suite.reportService.ProjectByProgrammer(worker.ID)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp)
}

// TestReportServiceTestSuite runs the test suite
func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
