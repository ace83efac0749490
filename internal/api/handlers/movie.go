package handlers

import (
	"net/http"

	"moviweb-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MovieHandler handles HTTP requests for catalog movies
type MovieHandler struct {
	movieService service.MovieServiceInterface
}

// NewMovieHandler creates a new movie handler
func NewMovieHandler(movieService service.MovieServiceInterface) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// ListMovies handles GET /movies
// @Summary List all catalog movies
// @Tags movies
// @Produce json
// @Success 200 {array} service.MovieResponse
// @Router /movies [get]
func (h *MovieHandler) ListMovies(c *gin.Context) {
	movies, err := h.movieService.ListMovies()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

// CreateMovie handles POST /movies
// @Summary Create a catalog movie from caller-supplied fields
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body service.CreateMovieRequest true "Movie data"
// @Success 201 {object} service.MovieResponse
// @Failure 400 {object} ErrorResponse
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req service.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	movie, err := h.movieService.CreateMovie(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, movie)
}

// GetMovie handles GET /movies/:id
// @Summary Get a movie by id
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} service.MovieResponse
// @Failure 404 {object} ErrorResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	movie, err := h.movieService.GetMovieByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// UpdateMovie handles PUT /movies/:id
// @Summary Partially update a shared catalog entry
// @Description Unspecified fields keep their stored value. The change is visible to every user who has the movie attached.
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body service.UpdateMovieRequest true "Fields to change"
// @Success 200 {object} service.MovieResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	movie, err := h.movieService.UpdateMovie(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// DeleteMovie handles DELETE /movies/:id
// @Summary Delete a movie and all associations referencing it
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.movieService.DeleteMovie(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
