package service_test

import (
	"errors"
	"testing"

	"moviweb-backend/internal/database/models"
	apperrors "moviweb-backend/internal/errors"
	"moviweb-backend/internal/mocks"
	"moviweb-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newMovieService(t *testing.T) (*service.MovieService, *mocks.MockMovieRepositoryInterface) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMovieRepositoryInterface(ctrl)
	return service.NewMovieService(repo, validator.New()), repo
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string  { return &v }

func TestCreateMovie(t *testing.T) {
	svc, repo := newMovieService(t)
	repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.Movie) error {
		assert.Equal(t, "Dune", m.Title)
		m.ID = 1
		return nil
	})

	resp, err := svc.CreateMovie(&service.CreateMovieRequest{
		Title:       " Dune ",
		Director:    "Denis Villeneuve",
		ReleaseYear: intPtr(2021),
		Rating:      floatPtr(8.0),
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(1), resp.MovieID)
	assert.Equal(t, "Dune", resp.Title)
	assert.Equal(t, 2021, *resp.ReleaseYear)
	assert.Equal(t, 8.0, *resp.Rating)
}

func TestCreateMovie_EmptyTitle(t *testing.T) {
	svc, _ := newMovieService(t)

	resp, err := svc.CreateMovie(&service.CreateMovieRequest{Title: "   "})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrMovieTitleRequired)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateMovie_InvalidRating(t *testing.T) {
	svc, _ := newMovieService(t)

	resp, err := svc.CreateMovie(&service.CreateMovieRequest{
		Title:  "Dune",
		Rating: floatPtr(11.5),
	})

	assert.Nil(t, resp)
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetMovieByID_NotFound(t *testing.T) {
	svc, repo := newMovieService(t)
	repo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.GetMovieByID(99)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrMovieNotFound)
}

func TestListMovies(t *testing.T) {
	svc, repo := newMovieService(t)
	repo.EXPECT().GetAll().Return([]models.Movie{
		{ID: 1, Title: "Dune"},
		{ID: 2, Title: "Arrival"},
	}, nil)

	resp, err := svc.ListMovies()

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Dune", resp[0].Title)
}

func TestUpdateMovie_PartialFields(t *testing.T) {
	svc, repo := newMovieService(t)
	repo.EXPECT().Update(uint(1), map[string]interface{}{"director": "X"}).Return(nil)
	repo.EXPECT().GetByID(uint(1)).Return(&models.Movie{
		ID:          1,
		Title:       "Dune",
		Director:    "X",
		ReleaseYear: intPtr(2021),
	}, nil)

	resp, err := svc.UpdateMovie(1, &service.UpdateMovieRequest{Director: stringPtr("X")})

	assert.NoError(t, err)
	assert.Equal(t, "X", resp.Director)
	assert.Equal(t, "Dune", resp.Title)
}

func TestUpdateMovie_EmptyTitle(t *testing.T) {
	svc, _ := newMovieService(t)

	resp, err := svc.UpdateMovie(1, &service.UpdateMovieRequest{Title: stringPtr("  ")})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrMovieTitleRequired)
}

func TestUpdateMovie_NotFound(t *testing.T) {
	svc, repo := newMovieService(t)
	repo.EXPECT().Update(uint(99), gomock.Any()).Return(gorm.ErrRecordNotFound)

	resp, err := svc.UpdateMovie(99, &service.UpdateMovieRequest{Director: stringPtr("X")})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrMovieNotFound)
}

func TestDeleteMovie(t *testing.T) {
	svc, repo := newMovieService(t)
	repo.EXPECT().Delete(uint(1)).Return(nil)

	assert.NoError(t, svc.DeleteMovie(1))
}

func TestDeleteMovie_StorageFailure(t *testing.T) {
	svc, repo := newMovieService(t)
	repo.EXPECT().Delete(uint(1)).Return(errors.New("connection reset"))

	err := svc.DeleteMovie(1)

	assert.True(t, apperrors.IsStorage(err))
}
