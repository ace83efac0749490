package service

import (
	"errors"

	"moviweb-backend/internal/database/models"
	apperrors "moviweb-backend/internal/errors"
	"moviweb-backend/internal/repository"

	"gorm.io/gorm"
)

// FavoriteService handles business logic for user-movie associations
type FavoriteService struct {
	userMovieRepo repository.UserMovieRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	movieRepo     repository.MovieRepositoryInterface
	enrichment    EnrichmentServiceInterface
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(
	userMovieRepo repository.UserMovieRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	movieRepo repository.MovieRepositoryInterface,
	enrichment EnrichmentServiceInterface,
) *FavoriteService {
	return &FavoriteService{
		userMovieRepo: userMovieRepo,
		userRepo:      userRepo,
		movieRepo:     movieRepo,
		enrichment:    enrichment,
	}
}

// GetUserMovies retrieves the movies on a user's list, ordered by movie id.
// An unknown user yields an empty list, not an error.
func (s *FavoriteService) GetUserMovies(userID uint) ([]MovieResponse, error) {
	movies, err := s.userMovieRepo.GetMoviesByUserID(userID)
	if err != nil {
		return nil, apperrors.Storage("get user movies", err)
	}

	responses := make([]MovieResponse, len(movies))
	for i, m := range movies {
		responses[i] = *toMovieResponse(&m)
	}
	return responses, nil
}

// Attach adds a movie to a user's list. Both endpoints must exist. Returns
// true if a new association was created, false if the pair already existed;
// re-attaching is an idempotent no-op, not an error.
func (s *FavoriteService) Attach(userID, movieID uint) (bool, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrUserNotFound
		}
		return false, apperrors.Storage("verify user", err)
	}
	if _, err := s.movieRepo.GetByID(movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrMovieNotFound
		}
		return false, apperrors.Storage("verify movie", err)
	}

	created, err := s.userMovieRepo.Attach(userID, movieID)
	if err != nil {
		return false, apperrors.Storage("attach movie", err)
	}
	return created, nil
}

// Detach removes a movie from a user's list. Returns true if an association
// existed and was removed. A missing user, movie, or association simply
// reports false.
func (s *FavoriteService) Detach(userID, movieID uint) (bool, error) {
	removed, err := s.userMovieRepo.Detach(userID, movieID)
	if err != nil {
		return false, apperrors.Storage("detach movie", err)
	}
	return removed, nil
}

// AddByTitle resolves a free-text title through the enrichment gateway and
// attaches the result to the user's list. When the lookup comes back absent
// no movie record is created from the unverified title. An existing catalog
// entry with the resolved title is reused instead of duplicated.
func (s *FavoriteService) AddByTitle(userID uint, title string) (*MovieResponse, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Storage("verify user", err)
	}

	details := s.enrichment.FetchMovieDetails(title)
	if details == nil {
		return nil, apperrors.ErrEnrichmentFailed
	}

	movie, err := s.movieRepo.GetByTitle(details.Title)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Storage("find movie by title", err)
		}
		movie = &models.Movie{
			Title:       details.Title,
			Director:    details.Director,
			ReleaseYear: details.ReleaseYear,
			Rating:      details.Rating,
		}
		if err := s.movieRepo.Create(movie); err != nil {
			return nil, apperrors.Storage("create movie", err)
		}
	}

	if _, err := s.userMovieRepo.Attach(userID, movie.ID); err != nil {
		return nil, apperrors.Storage("attach movie", err)
	}

	return toMovieResponse(movie), nil
}
