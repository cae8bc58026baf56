package repository

import (
	"testing"

	"staffing-portal-backend/internal/database/models"
	"staffing-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	workerRepo    *WorkerRepository
	projectRepo   *ProjectRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.workerRepo = NewWorkerRepository(suite.baseTestSuite.DB)
	suite.projectRepo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) createLeaderAndProject() (uuid.UUID, uuid.UUID) {
	leader := suite.factories.Leader.Create()
	suite.Require().NoError(suite.workerRepo.Create(leader))

	project := suite.factories.Project.Create()
	suite.Require().NoError(suite.projectRepo.Create(project))

	return leader.ID, project.ID
}

// TestCreate tests creating a team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	leaderID, projectID := suite.createLeaderAndProject()

	team := suite.factories.Team.WithLeaderAndProject(leaderID, projectID)
	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
}

// TestUniqueLeaderIndex tests that the same leader cannot hold two teams
func (suite *TeamRepositoryTestSuite) TestUniqueLeaderIndex() {
	leaderID, projectID := suite.createLeaderAndProject()

	first := suite.factories.Team.WithLeaderAndProject(leaderID, projectID)
	suite.NoError(suite.repo.Create(first))

	otherProject := suite.factories.Project.Multimedia()
	suite.NoError(suite.projectRepo.Create(otherProject))

	second := suite.factories.Team.WithLeaderAndProject(leaderID, otherProject.ID)
	err := suite.repo.Create(second)

	suite.Error(err)
}

// TestUniqueProjectIndex tests that the same project cannot hold two teams
func (suite *TeamRepositoryTestSuite) TestUniqueProjectIndex() {
	leaderID, projectID := suite.createLeaderAndProject()

	first := suite.factories.Team.WithLeaderAndProject(leaderID, projectID)
	suite.NoError(suite.repo.Create(first))

	otherLeader := suite.factories.Leader.Create()
	suite.NoError(suite.workerRepo.Create(otherLeader))

	second := suite.factories.Team.WithLeaderAndProject(otherLeader.ID, projectID)
	err := suite.repo.Create(second)

	suite.Error(err)
}

// TestGetByLeaderID tests the leader lookup
func (suite *TeamRepositoryTestSuite) TestGetByLeaderID() {
	leaderID, projectID := suite.createLeaderAndProject()

	team := suite.factories.Team.WithLeaderAndProject(leaderID, projectID)
	suite.NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByLeaderID(leaderID)
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	_, err = suite.repo.GetByLeaderID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByProjectID tests the project lookup
func (suite *TeamRepositoryTestSuite) TestGetByProjectID() {
	leaderID, projectID := suite.createLeaderAndProject()

	team := suite.factories.Team.WithLeaderAndProject(leaderID, projectID)
	suite.NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByProjectID(projectID)
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)
}

// TestUpdateFieldsNullsLeader tests releasing a leader through a field update
func (suite *TeamRepositoryTestSuite) TestUpdateFieldsNullsLeader() {
	leaderID, projectID := suite.createLeaderAndProject()

	team := suite.factories.Team.WithLeaderAndProject(leaderID, projectID)
	suite.NoError(suite.repo.Create(team))

	suite.NoError(suite.repo.UpdateFields(team.ID, map[string]interface{}{"leader_id": nil}))

	found, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Nil(found.LeaderID)

	// the freed leader can now hold a new team
	_, err = suite.repo.GetByLeaderID(leaderID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByIDPreloadsAssociations tests that leader, project and programmers load
func (suite *TeamRepositoryTestSuite) TestGetByIDPreloadsAssociations() {
	leaderID, projectID := suite.createLeaderAndProject()

	team := suite.factories.Team.WithLeaderAndProject(leaderID, projectID)
	suite.NoError(suite.repo.Create(team))

	programmer := suite.factories.Programmer.Create()
	suite.NoError(suite.workerRepo.Create(programmer))
	suite.NoError(suite.workerRepo.AssignTeam([]uuid.UUID{programmer.ID}, team.ID))

	found, err := suite.repo.GetByID(team.ID)

	suite.NoError(err)
	suite.NotNil(found.Leader)
	suite.NotNil(found.Project)
	suite.Len(found.Programmers, 1)
}

// TestGetAllPreloadsProgrammerLanguages tests that listing loads the same
// associations as the single-team lookup
func (suite *TeamRepositoryTestSuite) TestGetAllPreloadsProgrammerLanguages() {
	leaderID, projectID := suite.createLeaderAndProject()

	team := suite.factories.Team.WithLeaderAndProject(leaderID, projectID)
	suite.NoError(suite.repo.Create(team))

	programmer := suite.factories.Programmer.Create()
	suite.NoError(suite.workerRepo.Create(programmer))

	languageRepo := NewLanguageRepository(suite.baseTestSuite.DB)
	golang, err := languageRepo.FindOrCreateByName("Go")
	suite.Require().NoError(err)
	suite.NoError(suite.workerRepo.ReplaceLanguages(programmer, []models.Language{*golang}))
	suite.NoError(suite.workerRepo.AssignTeam([]uuid.UUID{programmer.ID}, team.ID))

	teams, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Require().Len(teams, 1)
	suite.Require().Len(teams[0].Programmers, 1)
	suite.Equal([]string{"Go"}, teams[0].Programmers[0].LanguageNames())
}

// TestDelete tests deleting a team
func (suite *TeamRepositoryTestSuite) TestDelete() {
	leaderID, projectID := suite.createLeaderAndProject()

	team := suite.factories.Team.WithLeaderAndProject(leaderID, projectID)
	suite.NoError(suite.repo.Create(team))

	suite.NoError(suite.repo.Delete(team.ID))

	_, err := suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
