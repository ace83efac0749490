package handlers

import (
	"net/http"

	"moviweb-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users and their favorite lists
type UserHandler struct {
	userService     service.UserServiceInterface
	favoriteService service.FavoriteServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface, favoriteService service.FavoriteServiceInterface) *UserHandler {
	return &UserHandler{
		userService:     userService,
		favoriteService: favoriteService,
	}
}

// CreateUserBody represents the expected request body for POST /users
type CreateUserBody struct {
	UserName string `json:"user_name" binding:"required"`
}

// AddMovieByTitleBody represents the expected request body for POST /users/:id/movies
type AddMovieByTitleBody struct {
	Title string `json:"title" binding:"required"`
}

// ListUsers handles GET /users
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} service.UserResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /users
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserBody true "User data"
// @Success 201 {object} service.UserResponse
// @Failure 400 {object} ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var body CreateUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.CreateUser(&service.CreateUserRequest{Name: body.UserName})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /users/:id
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} service.UserResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:id
// @Summary Delete a user and their list associations
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetUserMovies handles GET /users/:id/movies
// @Summary List the movies on a user's favorite list
// @Tags favorites
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} service.MovieResponse
// @Router /users/{id}/movies [get]
func (h *UserHandler) GetUserMovies(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	movies, err := h.favoriteService.GetUserMovies(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

// AddMovieByTitle handles POST /users/:id/movies
// @Summary Resolve a title through the lookup service and attach it to the user's list
// @Tags favorites
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param movie body AddMovieByTitleBody true "Free-text title"
// @Success 201 {object} service.MovieResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Lookup service could not resolve the title"
// @Router /users/{id}/movies [post]
func (h *UserHandler) AddMovieByTitle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body AddMovieByTitleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	movie, err := h.favoriteService.AddByTitle(id, body.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, movie)
}

// AttachMovie handles PUT /users/:id/movies/:movie_id
// @Summary Attach an existing catalog movie to the user's list
// @Tags favorites
// @Produce json
// @Param id path int true "User ID"
// @Param movie_id path int true "Movie ID"
// @Success 200 {object} map[string]bool "created reports whether a new association was made"
// @Failure 404 {object} ErrorResponse
// @Router /users/{id}/movies/{movie_id} [put]
func (h *UserHandler) AttachMovie(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	movieID, ok := parseIDParam(c, "movie_id")
	if !ok {
		return
	}

	created, err := h.favoriteService.Attach(userID, movieID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// DetachMovie handles DELETE /users/:id/movies/:movie_id
// @Summary Remove a movie from the user's list
// @Tags favorites
// @Produce json
// @Param id path int true "User ID"
// @Param movie_id path int true "Movie ID"
// @Success 200 {object} map[string]bool "removed reports whether an association existed"
// @Router /users/{id}/movies/{movie_id} [delete]
func (h *UserHandler) DetachMovie(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	movieID, ok := parseIDParam(c, "movie_id")
	if !ok {
		return
	}

	removed, err := h.favoriteService.Detach(userID, movieID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
