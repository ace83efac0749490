package service

import (
	"errors"
	"strings"

	"moviweb-backend/internal/database/models"
	apperrors "moviweb-backend/internal/errors"
	"moviweb-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// MovieService handles business logic for catalog movies
type MovieService struct {
	repo      repository.MovieRepositoryInterface
	validator *validator.Validate
}

// NewMovieService creates a new movie service
func NewMovieService(repo repository.MovieRepositoryInterface, validator *validator.Validate) *MovieService {
	return &MovieService{
		repo:      repo,
		validator: validator,
	}
}

// CreateMovieRequest represents the data needed to create a movie
type CreateMovieRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Director    string   `json:"director" validate:"max=150"`
	ReleaseYear *int     `json:"release_year" validate:"omitempty,min=1878"`
	Rating      *float64 `json:"rating" validate:"omitempty,min=0,max=10"`
}

// UpdateMovieRequest represents a partial update; nil fields keep their stored value
type UpdateMovieRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Director    *string  `json:"director" validate:"omitempty,max=150"`
	ReleaseYear *int     `json:"release_year" validate:"omitempty,min=1878"`
	Rating      *float64 `json:"rating" validate:"omitempty,min=0,max=10"`
}

// MovieResponse represents the response data for a movie
type MovieResponse struct {
	MovieID     uint     `json:"movie_id"`
	Title       string   `json:"title"`
	Director    string   `json:"director"`
	ReleaseYear *int     `json:"release_year,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

// CreateMovie creates a new catalog movie
func (s *MovieService) CreateMovie(req *CreateMovieRequest) (*MovieResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, apperrors.ErrMovieTitleRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	movie := &models.Movie{
		Title:       req.Title,
		Director:    req.Director,
		ReleaseYear: req.ReleaseYear,
		Rating:      req.Rating,
	}
	if err := s.repo.Create(movie); err != nil {
		return nil, apperrors.Storage("create movie", err)
	}

	return toMovieResponse(movie), nil
}

// GetMovieByID retrieves a movie by ID
func (s *MovieService) GetMovieByID(id uint) (*MovieResponse, error) {
	movie, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMovieNotFound
		}
		return nil, apperrors.Storage("get movie", err)
	}
	return toMovieResponse(movie), nil
}

// ListMovies retrieves all catalog movies
func (s *MovieService) ListMovies() ([]MovieResponse, error) {
	movies, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.Storage("list movies", err)
	}

	responses := make([]MovieResponse, len(movies))
	for i, m := range movies {
		responses[i] = *toMovieResponse(&m)
	}
	return responses, nil
}

// UpdateMovie applies a partial update to a shared catalog entry. The change
// is visible to every user who has the movie in their list.
func (s *MovieService) UpdateMovie(id uint, req *UpdateMovieRequest) (*MovieResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.ErrMovieTitleRequired
		}
		updates["title"] = title
	}
	if req.Director != nil {
		updates["director"] = *req.Director
	}
	if req.ReleaseYear != nil {
		updates["release_year"] = *req.ReleaseYear
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}

	if err := s.repo.Update(id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMovieNotFound
		}
		return nil, apperrors.Storage("update movie", err)
	}

	return s.GetMovieByID(id)
}

// DeleteMovie removes a movie and every association row referencing it
func (s *MovieService) DeleteMovie(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMovieNotFound
		}
		return apperrors.Storage("delete movie", err)
	}
	return nil
}

func toMovieResponse(movie *models.Movie) *MovieResponse {
	return &MovieResponse{
		MovieID:     movie.ID,
		Title:       movie.Title,
		Director:    movie.Director,
		ReleaseYear: movie.ReleaseYear,
		Rating:      movie.Rating,
	}
}
