package service_test

import (
	"testing"

	"staffing-portal-backend/internal/database/models"
	apperrors "staffing-portal-backend/internal/errors"
	"staffing-portal-backend/internal/mocks"
	"staffing-portal-backend/internal/repository"
	"staffing-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// WorkerServiceTestSuite defines the test suite for WorkerService
type WorkerServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockStore        *mocks.MockStore
	mockWorkerRepo   *mocks.MockWorkerRepositoryInterface
	mockLanguageRepo *mocks.MockLanguageRepositoryInterface
	mockTeamRepo     *mocks.MockTeamRepositoryInterface
	workerService    *service.WorkerService
}

// SetupTest sets up the test suite
func (suite *WorkerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStore = mocks.NewMockStore(suite.ctrl)
	suite.mockWorkerRepo = mocks.NewMockWorkerRepositoryInterface(suite.ctrl)
	suite.mockLanguageRepo = mocks.NewMockLanguageRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)

	suite.mockStore.EXPECT().Workers().Return(suite.mockWorkerRepo).AnyTimes()
	suite.mockStore.EXPECT().Languages().Return(suite.mockLanguageRepo).AnyTimes()
	suite.mockStore.EXPECT().Teams().Return(suite.mockTeamRepo).AnyTimes()
	suite.mockStore.EXPECT().Transaction(gomock.Any()).DoAndReturn(
		func(fn func(repository.Store) error) error { return fn(suite.mockStore) },
	).AnyTimes()

	suite.workerService = service.NewWorkerService(suite.mockStore, validator.New())
}

// TearDownTest cleans up after each test
func (suite *WorkerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateProgrammer tests creating a programmer with languages resolved by name
func (suite *WorkerServiceTestSuite) TestCreateProgrammer() {
	req := &service.CreateProgrammerRequest{
		Name:       "Marta Ibanez",
		Age:        29,
		Gender:     "female",
		BaseSalary: 2100,
		Category:   "A",
		Languages:  []string{"Java", "SQL"},
	}

	java := &models.Language{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Java"}
	sql := &models.Language{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "SQL"}

	suite.mockLanguageRepo.EXPECT().FindOrCreateByName("Java").Return(java, nil)
	suite.mockLanguageRepo.EXPECT().FindOrCreateByName("SQL").Return(sql, nil)
	suite.mockWorkerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(worker *models.Worker) error {
		worker.ID = uuid.New()
		assert.Equal(suite.T(), models.WorkerTypeProgrammer, worker.WorkerType)
		assert.Equal(suite.T(), models.ProgrammerCategoryA, *worker.Category)
		return nil
	})
	suite.mockWorkerRepo.EXPECT().ReplaceLanguages(gomock.Any(), gomock.Len(2)).Return(nil)

	resp, err := suite.workerService.CreateProgrammer(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), req.Name, resp.Name)
	assert.Equal(suite.T(), []string{"Java", "SQL"}, resp.Languages)
}

// TestCreateProgrammerInvalidCategory tests that an unknown category is rejected up front
func (suite *WorkerServiceTestSuite) TestCreateProgrammerInvalidCategory() {
	req := &service.CreateProgrammerRequest{
		Name:     "Marta Ibanez",
		Age:      29,
		Gender:   "female",
		Category: "D",
	}

	resp, err := suite.workerService.CreateProgrammer(req)

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateLeader tests creating a leader
func (suite *WorkerServiceTestSuite) TestCreateLeader() {
	req := &service.CreateLeaderRequest{
		Name:             "Carmen Soler",
		Age:              45,
		Gender:           "female",
		BaseSalary:       3200,
		ExperienceYears:  12,
		DirectedProjects: 9,
	}

	suite.mockWorkerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(worker *models.Worker) error {
		worker.ID = uuid.New()
		assert.Equal(suite.T(), models.WorkerTypeLeader, worker.WorkerType)
		assert.Nil(suite.T(), worker.Category)
		return nil
	})

	resp, err := suite.workerService.CreateLeader(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 12, *resp.ExperienceYears)
	assert.Equal(suite.T(), 9, *resp.DirectedProjects)
}

// TestGetByIDNotFound tests the missing-worker path
func (suite *WorkerServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()

	suite.mockWorkerRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.workerService.GetByID(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkerNotFound)
}

// TestDeleteProgrammer tests programmer deletion
func (suite *WorkerServiceTestSuite) TestDeleteProgrammer() {
	id := uuid.New()
	category := models.ProgrammerCategoryB
	worker := &models.Worker{
		BaseModel:  models.BaseModel{ID: id},
		WorkerType: models.WorkerTypeProgrammer,
		Category:   &category,
	}

	suite.mockWorkerRepo.EXPECT().
		GetByIDAndType(id, models.WorkerTypeProgrammer).
		Return(worker, nil)
	suite.mockWorkerRepo.EXPECT().Delete(id).Return(nil)

	err := suite.workerService.DeleteProgrammer(id)

	assert.NoError(suite.T(), err)
}

// TestDeleteLeaderFreesLedTeam tests that deleting a leader releases the led team
func (suite *WorkerServiceTestSuite) TestDeleteLeaderFreesLedTeam() {
	id := uuid.New()
	experience := 6
	leader := &models.Worker{
		BaseModel:       models.BaseModel{ID: id},
		WorkerType:      models.WorkerTypeLeader,
		ExperienceYears: &experience,
	}
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, LeaderID: &id}

	suite.mockWorkerRepo.EXPECT().
		GetByIDAndType(id, models.WorkerTypeLeader).
		Return(leader, nil)
	suite.mockTeamRepo.EXPECT().GetByLeaderID(id).Return(team, nil)
	suite.mockTeamRepo.EXPECT().
		UpdateFields(team.ID, map[string]interface{}{"leader_id": nil}).
		Return(nil)
	suite.mockWorkerRepo.EXPECT().Delete(id).Return(nil)

	err := suite.workerService.DeleteLeader(id)

	assert.NoError(suite.T(), err)
}

// TestDeleteLeaderNotFound tests deleting a missing leader
func (suite *WorkerServiceTestSuite) TestDeleteLeaderNotFound() {
	id := uuid.New()

	suite.mockWorkerRepo.EXPECT().
		GetByIDAndType(id, models.WorkerTypeLeader).
		Return(nil, gorm.ErrRecordNotFound)

	err := suite.workerService.DeleteLeader(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeaderNotFound)
}

// TestWorkerServiceTestSuite runs the test suite
func TestWorkerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerServiceTestSuite))
}
