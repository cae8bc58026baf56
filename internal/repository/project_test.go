package repository

import (
	"testing"

	"staffing-portal-backend/internal/database/models"
	"staffing-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a project
func (suite *ProjectRepositoryTestSuite) TestCreate() {
	project := suite.factories.Project.Create()

	err := suite.repo.Create(project)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, project.ID)
}

// TestGetAll tests listing projects
func (suite *ProjectRepositoryTestSuite) TestGetAll() {
	suite.NoError(suite.repo.Create(suite.factories.Project.Create()))
	suite.NoError(suite.repo.Create(suite.factories.Project.Multimedia()))

	projects, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(projects, 2)
}

// TestGetByTypeAndFramework tests the gestion framework filter
func (suite *ProjectRepositoryTestSuite) TestGetByTypeAndFramework() {
	gestion := suite.factories.Project.Create()
	suite.NoError(suite.repo.Create(gestion))

	multimedia := suite.factories.Project.Multimedia()
	suite.NoError(suite.repo.Create(multimedia))

	found, err := suite.repo.GetByTypeAndFramework(models.ProjectTypeGestion, "gin")
	suite.NoError(err)
	suite.Len(found, 1)
	suite.Equal(gestion.ID, found[0].ID)

	found, err = suite.repo.GetByTypeAndFramework(models.ProjectTypeGestion, "spring")
	suite.NoError(err)
	suite.Empty(found)
}

// TestDelete tests deleting a project
func (suite *ProjectRepositoryTestSuite) TestDelete() {
	project := suite.factories.Project.Create()
	suite.NoError(suite.repo.Create(project))

	suite.NoError(suite.repo.Delete(project.ID))

	_, err := suite.repo.GetByID(project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
