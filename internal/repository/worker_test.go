package repository

import (
	"testing"

	"staffing-portal-backend/internal/database/models"
	"staffing-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// WorkerRepositoryTestSuite tests the WorkerRepository
type WorkerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WorkerRepository
	languageRepo  *LanguageRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *WorkerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewWorkerRepository(suite.baseTestSuite.DB)
	suite.languageRepo = NewLanguageRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WorkerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WorkerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a programmer
func (suite *WorkerRepositoryTestSuite) TestCreate() {
	programmer := suite.factories.Programmer.Create()

	err := suite.repo.Create(programmer)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, programmer.ID)
	suite.NotZero(programmer.CreatedAt)
}

// TestGetByIDPreloadsLanguages tests that languages come back with the worker
func (suite *WorkerRepositoryTestSuite) TestGetByIDPreloadsLanguages() {
	programmer := suite.factories.Programmer.Create()
	suite.NoError(suite.repo.Create(programmer))

	golang, err := suite.languageRepo.FindOrCreateByName("Go")
	suite.NoError(err)
	sql, err := suite.languageRepo.FindOrCreateByName("SQL")
	suite.NoError(err)
	suite.NoError(suite.repo.ReplaceLanguages(programmer, []models.Language{*golang, *sql}))

	found, err := suite.repo.GetByID(programmer.ID)

	suite.NoError(err)
	suite.ElementsMatch([]string{"Go", "SQL"}, found.LanguageNames())
}

// TestGetByIDAndType tests that the variant filter holds
func (suite *WorkerRepositoryTestSuite) TestGetByIDAndType() {
	leader := suite.factories.Leader.Create()
	suite.NoError(suite.repo.Create(leader))

	found, err := suite.repo.GetByIDAndType(leader.ID, models.WorkerTypeLeader)
	suite.NoError(err)
	suite.Equal(leader.ID, found.ID)

	// same id under the other variant must read as missing
	_, err = suite.repo.GetByIDAndType(leader.ID, models.WorkerTypeProgrammer)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllByType tests listing one variant
func (suite *WorkerRepositoryTestSuite) TestGetAllByType() {
	suite.NoError(suite.repo.Create(suite.factories.Programmer.Create()))
	suite.NoError(suite.repo.Create(suite.factories.Programmer.Create()))
	suite.NoError(suite.repo.Create(suite.factories.Leader.Create()))

	programmers, err := suite.repo.GetAllByType(models.WorkerTypeProgrammer)
	suite.NoError(err)
	suite.Len(programmers, 2)

	leaders, err := suite.repo.GetAllByType(models.WorkerTypeLeader)
	suite.NoError(err)
	suite.Len(leaders, 1)
}

// TestAssignAndDetachTeam tests moving programmers in and out of a team
func (suite *WorkerRepositoryTestSuite) TestAssignAndDetachTeam() {
	first := suite.factories.Programmer.Create()
	second := suite.factories.Programmer.Create()
	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second))

	team := suite.factories.Team.Create()
	teamRepo := NewTeamRepository(suite.baseTestSuite.DB)
	suite.NoError(teamRepo.Create(team))

	err := suite.repo.AssignTeam([]uuid.UUID{first.ID, second.ID}, team.ID)
	suite.NoError(err)

	members, err := suite.repo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Len(members, 2)

	suite.NoError(suite.repo.DetachTeam(team.ID))

	members, err = suite.repo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Empty(members)
}

// TestDelete tests deleting a worker
func (suite *WorkerRepositoryTestSuite) TestDelete() {
	programmer := suite.factories.Programmer.Create()
	suite.NoError(suite.repo.Create(programmer))

	suite.NoError(suite.repo.Delete(programmer.ID))

	_, err := suite.repo.GetByID(programmer.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteClearsLanguageLinks tests that deletion leaves no join rows behind
func (suite *WorkerRepositoryTestSuite) TestDeleteClearsLanguageLinks() {
	programmer := suite.factories.Programmer.Create()
	suite.NoError(suite.repo.Create(programmer))

	golang, err := suite.languageRepo.FindOrCreateByName("Go")
	suite.NoError(err)
	suite.NoError(suite.repo.ReplaceLanguages(programmer, []models.Language{*golang}))

	suite.NoError(suite.repo.Delete(programmer.ID))

	var joinRows int64
	suite.NoError(suite.baseTestSuite.DB.Table("worker_languages").
		Where("worker_id = ?", programmer.ID).Count(&joinRows).Error)
	suite.Zero(joinRows)

	// the language itself survives
	_, err = suite.languageRepo.GetByName("Go")
	suite.NoError(err)
}

// TestWorkerRepositoryTestSuite runs the test suite
func TestWorkerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerRepositoryTestSuite))
}
