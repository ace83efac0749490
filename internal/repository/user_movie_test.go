package repository

import (
	"testing"

	"moviweb-backend/internal/database/models"
	"moviweb-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// UserMovieRepositoryTestSuite tests the UserMovieRepository
type UserMovieRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserMovieRepository
	userRepo      *UserRepository
	movieRepo     *MovieRepository
}

// SetupSuite runs before all tests in the suite
func (suite *UserMovieRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserMovieRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.movieRepo = NewMovieRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *UserMovieRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserMovieRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserMovieRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserMovieRepositoryTestSuite) createUser(name string) *models.User {
	user := testutils.NewUserFactory().WithName(name)
	suite.NoError(suite.userRepo.Create(user))
	return user
}

func (suite *UserMovieRepositoryTestSuite) createMovie(title string) *models.Movie {
	movie := testutils.NewMovieFactory().WithTitle(title)
	suite.NoError(suite.movieRepo.Create(movie))
	return movie
}

// TestAttach tests creating an association
func (suite *UserMovieRepositoryTestSuite) TestAttach() {
	user := suite.createUser("Ada")
	movie := suite.createMovie("Dune")

	created, err := suite.repo.Attach(user.ID, movie.ID)

	suite.NoError(err)
	suite.True(created)

	exists, err := suite.repo.Exists(user.ID, movie.ID)
	suite.NoError(err)
	suite.True(exists)
}

// TestAttach_Idempotent tests that re-attaching reports false and keeps one row
func (suite *UserMovieRepositoryTestSuite) TestAttach_Idempotent() {
	user := suite.createUser("Ada")
	movie := suite.createMovie("Dune")

	created, err := suite.repo.Attach(user.ID, movie.ID)
	suite.NoError(err)
	suite.True(created)

	created, err = suite.repo.Attach(user.ID, movie.ID)
	suite.NoError(err)
	suite.False(created)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.UserMovie{}).
		Where("user_id = ? AND movie_id = ?", user.ID, movie.ID).
		Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestDetach tests removing an association
func (suite *UserMovieRepositoryTestSuite) TestDetach() {
	user := suite.createUser("Ada")
	movie := suite.createMovie("Dune")
	_, err := suite.repo.Attach(user.ID, movie.ID)
	suite.NoError(err)

	removed, err := suite.repo.Detach(user.ID, movie.ID)

	suite.NoError(err)
	suite.True(removed)

	exists, err := suite.repo.Exists(user.ID, movie.ID)
	suite.NoError(err)
	suite.False(exists)
}

// TestDetach_MissingPair tests that detaching an absent pair is not an error
func (suite *UserMovieRepositoryTestSuite) TestDetach_MissingPair() {
	removed, err := suite.repo.Detach(9998, 9999)

	suite.NoError(err)
	suite.False(removed)
}

// TestDetachThenAttach tests that a removed pair can be re-created
func (suite *UserMovieRepositoryTestSuite) TestDetachThenAttach() {
	user := suite.createUser("Ada")
	movie := suite.createMovie("Dune")

	_, err := suite.repo.Attach(user.ID, movie.ID)
	suite.NoError(err)
	removed, err := suite.repo.Detach(user.ID, movie.ID)
	suite.NoError(err)
	suite.True(removed)

	created, err := suite.repo.Attach(user.ID, movie.ID)
	suite.NoError(err)
	suite.True(created)

	movies, err := suite.repo.GetMoviesByUserID(user.ID)
	suite.NoError(err)
	suite.Len(movies, 1)
	suite.Equal("Dune", movies[0].Title)
}

// TestGetMoviesByUserID tests listing a user's movies ordered by id
func (suite *UserMovieRepositoryTestSuite) TestGetMoviesByUserID() {
	user := suite.createUser("Ada")
	dune := suite.createMovie("Dune")
	arrival := suite.createMovie("Arrival")
	_, err := suite.repo.Attach(user.ID, arrival.ID)
	suite.NoError(err)
	_, err = suite.repo.Attach(user.ID, dune.ID)
	suite.NoError(err)

	movies, err := suite.repo.GetMoviesByUserID(user.ID)

	suite.NoError(err)
	suite.Len(movies, 2)
	suite.Equal(dune.ID, movies[0].ID)
	suite.Equal(arrival.ID, movies[1].ID)
}

// TestGetMoviesByUserID_UnknownUser tests that an unknown user yields an empty list
func (suite *UserMovieRepositoryTestSuite) TestGetMoviesByUserID_UnknownUser() {
	movies, err := suite.repo.GetMoviesByUserID(9999)

	suite.NoError(err)
	suite.Len(movies, 0)
}

// TestSharedMovieMutationIsVisibleToAllUsers tests that movie rows are shared,
// not copied per association
func (suite *UserMovieRepositoryTestSuite) TestSharedMovieMutationIsVisibleToAllUsers() {
	ada := suite.createUser("Ada")
	grace := suite.createUser("Grace")
	movie := suite.createMovie("Dune")
	_, err := suite.repo.Attach(ada.ID, movie.ID)
	suite.NoError(err)
	_, err = suite.repo.Attach(grace.ID, movie.ID)
	suite.NoError(err)

	suite.NoError(suite.movieRepo.Update(movie.ID, map[string]interface{}{"director": "D. Villeneuve"}))

	for _, userID := range []uint{ada.ID, grace.ID} {
		movies, err := suite.repo.GetMoviesByUserID(userID)
		suite.NoError(err)
		suite.Len(movies, 1)
		suite.Equal("D. Villeneuve", movies[0].Director)
	}
}

// TestGetUserIDsByMovieID tests the reverse lookup
func (suite *UserMovieRepositoryTestSuite) TestGetUserIDsByMovieID() {
	ada := suite.createUser("Ada")
	grace := suite.createUser("Grace")
	movie := suite.createMovie("Dune")
	_, err := suite.repo.Attach(grace.ID, movie.ID)
	suite.NoError(err)
	_, err = suite.repo.Attach(ada.ID, movie.ID)
	suite.NoError(err)

	ids, err := suite.repo.GetUserIDsByMovieID(movie.ID)

	suite.NoError(err)
	suite.Equal([]uint{ada.ID, grace.ID}, ids)
}

// TestAdaDuneScenario walks the attach, re-attach, list, detach sequence end to end
func (suite *UserMovieRepositoryTestSuite) TestAdaDuneScenario() {
	ada := suite.createUser("Ada")
	dune := suite.createMovie("Dune")

	created, err := suite.repo.Attach(ada.ID, dune.ID)
	suite.NoError(err)
	suite.True(created)

	created, err = suite.repo.Attach(ada.ID, dune.ID)
	suite.NoError(err)
	suite.False(created)

	movies, err := suite.repo.GetMoviesByUserID(ada.ID)
	suite.NoError(err)
	suite.Len(movies, 1)
	suite.Equal("Dune", movies[0].Title)

	removed, err := suite.repo.Detach(ada.ID, dune.ID)
	suite.NoError(err)
	suite.True(removed)

	movies, err = suite.repo.GetMoviesByUserID(ada.ID)
	suite.NoError(err)
	suite.Len(movies, 0)

	stored, err := suite.movieRepo.GetByID(dune.ID)
	suite.NoError(err)
	suite.Equal("Dune", stored.Title)
}

func TestUserMovieRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserMovieRepositoryTestSuite))
}
