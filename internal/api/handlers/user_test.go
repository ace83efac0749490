package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"moviweb-backend/internal/api/handlers"
	apperrors "moviweb-backend/internal/errors"
	"moviweb-backend/internal/mocks"
	"moviweb-backend/internal/service"
	"moviweb-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type userHandlerMocks struct {
	userService     *mocks.MockUserServiceInterface
	favoriteService *mocks.MockFavoriteServiceInterface
}

func setupUserRouter(t *testing.T) (*testutils.HTTPTestSuite, userHandlerMocks) {
	ctrl := gomock.NewController(t)
	m := userHandlerMocks{
		userService:     mocks.NewMockUserServiceInterface(ctrl),
		favoriteService: mocks.NewMockFavoriteServiceInterface(ctrl),
	}
	h := handlers.NewUserHandler(m.userService, m.favoriteService)

	ts := testutils.SetupHTTPTest()
	ts.Router.GET("/api/v1/users", h.ListUsers)
	ts.Router.POST("/api/v1/users", h.CreateUser)
	ts.Router.GET("/api/v1/users/:id", h.GetUser)
	ts.Router.DELETE("/api/v1/users/:id", h.DeleteUser)
	ts.Router.GET("/api/v1/users/:id/movies", h.GetUserMovies)
	ts.Router.POST("/api/v1/users/:id/movies", h.AddMovieByTitle)
	ts.Router.PUT("/api/v1/users/:id/movies/:movie_id", h.AttachMovie)
	ts.Router.DELETE("/api/v1/users/:id/movies/:movie_id", h.DetachMovie)
	return ts, m
}

func TestListUsers(t *testing.T) {
	ts, m := setupUserRouter(t)
	m.userService.EXPECT().ListUsers().Return([]service.UserResponse{
		{UserID: 1, UserName: "Ada"},
		{UserID: 2, UserName: "Grace"},
	}, nil)

	w := ts.MakeRequest(http.MethodGet, "/api/v1/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []service.UserResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "Ada", resp[0].UserName)
}

func TestCreateUser(t *testing.T) {
	ts, m := setupUserRouter(t)
	m.userService.EXPECT().
		CreateUser(&service.CreateUserRequest{Name: "Ada"}).
		Return(&service.UserResponse{UserID: 1, UserName: "Ada"}, nil)

	w := ts.MakeRequest(http.MethodPost, "/api/v1/users", gin.H{"user_name": "Ada"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp service.UserResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.UserID)
}

func TestCreateUser_MissingName(t *testing.T) {
	ts, _ := setupUserRouter(t)

	w := ts.MakeRequest(http.MethodPost, "/api/v1/users", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUser_WhitespaceName(t *testing.T) {
	ts, m := setupUserRouter(t)
	m.userService.EXPECT().
		CreateUser(&service.CreateUserRequest{Name: "   "}).
		Return(nil, apperrors.ErrUserNameRequired)

	w := ts.MakeRequest(http.MethodPost, "/api/v1/users", gin.H{"user_name": "   "})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUser(t *testing.T) {
	ts, m := setupUserRouter(t)
	m.userService.EXPECT().GetUserByID(uint(7)).Return(&service.UserResponse{UserID: 7, UserName: "Grace"}, nil)

	w := ts.MakeRequest(http.MethodGet, "/api/v1/users/7", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	ts, m := setupUserRouter(t)
	m.userService.EXPECT().GetUserByID(uint(99)).Return(nil, apperrors.ErrUserNotFound)

	w := ts.MakeRequest(http.MethodGet, "/api/v1/users/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUser_BadID(t *testing.T) {
	ts, _ := setupUserRouter(t)

	w := ts.MakeRequest(http.MethodGet, "/api/v1/users/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUser(t *testing.T) {
	ts, m := setupUserRouter(t)
	m.userService.EXPECT().DeleteUser(uint(1)).Return(nil)

	w := ts.MakeRequest(http.MethodDelete, "/api/v1/users/1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteUser_NotFound(t *testing.T) {
	ts, m := setupUserRouter(t)
	m.userService.EXPECT().DeleteUser(uint(99)).Return(apperrors.ErrUserNotFound)

	w := ts.MakeRequest(http.MethodDelete, "/api/v1/users/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserMovies(t *testing.T) {
	ts, m := setupUserRouter(t)
	m.favoriteService.EXPECT().GetUserMovies(uint(1)).Return([]service.MovieResponse{
		{MovieID: 1, Title: "Dune"},
	}, nil)

	w := ts.MakeRequest(http.MethodGet, "/api/v1/users/1/movies", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []service.MovieResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "Dune", resp[0].Title)
}

func TestAddMovieByTitle(t *testing.T) {
	ts, m := setupUserRouter(t)
	m.favoriteService.EXPECT().
		AddByTitle(uint(1), "dune").
		Return(&service.MovieResponse{MovieID: 5, Title: "Dune"}, nil)

	w := ts.MakeRequest(http.MethodPost, "/api/v1/users/1/movies", gin.H{"title": "dune"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp service.MovieResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(5), resp.MovieID)
}

func TestAddMovieByTitle_LookupAbsent(t *testing.T) {
	ts, m := setupUserRouter(t)
	m.favoriteService.EXPECT().
		AddByTitle(uint(1), "No Such Film").
		Return(nil, apperrors.ErrEnrichmentFailed)

	w := ts.MakeRequest(http.MethodPost, "/api/v1/users/1/movies", gin.H{"title": "No Such Film"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAddMovieByTitle_MissingTitle(t *testing.T) {
	ts, _ := setupUserRouter(t)

	w := ts.MakeRequest(http.MethodPost, "/api/v1/users/1/movies", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttachMovie(t *testing.T) {
	ts, m := setupUserRouter(t)
	m.favoriteService.EXPECT().Attach(uint(1), uint(2)).Return(true, nil)

	w := ts.MakeRequest(http.MethodPut, "/api/v1/users/1/movies/2", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]bool
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["created"])
}

func TestAttachMovie_AlreadyExists(t *testing.T) {
	ts, m := setupUserRouter(t)
	m.favoriteService.EXPECT().Attach(uint(1), uint(2)).Return(false, nil)

	w := ts.MakeRequest(http.MethodPut, "/api/v1/users/1/movies/2", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]bool
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp["created"])
}

func TestAttachMovie_MovieNotFound(t *testing.T) {
	ts, m := setupUserRouter(t)
	m.favoriteService.EXPECT().Attach(uint(1), uint(99)).Return(false, apperrors.ErrMovieNotFound)

	w := ts.MakeRequest(http.MethodPut, "/api/v1/users/1/movies/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDetachMovie(t *testing.T) {
	ts, m := setupUserRouter(t)
	m.favoriteService.EXPECT().Detach(uint(1), uint(2)).Return(true, nil)

	w := ts.MakeRequest(http.MethodDelete, "/api/v1/users/1/movies/2", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]bool
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["removed"])
}

func TestDetachMovie_MissingPair(t *testing.T) {
	ts, m := setupUserRouter(t)
	m.favoriteService.EXPECT().Detach(uint(99), uint(99)).Return(false, nil)

	w := ts.MakeRequest(http.MethodDelete, "/api/v1/users/99/movies/99", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]bool
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp["removed"])
}
