package repository

import (
	"moviweb-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetAll() ([]models.User, error)
	Delete(id uint) error
}

// MovieRepositoryInterface defines the interface for movie repository operations
type MovieRepositoryInterface interface {
	Create(movie *models.Movie) error
	GetByID(id uint) (*models.Movie, error)
	GetByTitle(title string) (*models.Movie, error)
	GetAll() ([]models.Movie, error)
	Update(id uint, updates map[string]interface{}) error
	Delete(id uint) error
}

// UserMovieRepositoryInterface defines the interface for user-movie association operations
type UserMovieRepositoryInterface interface {
	Attach(userID, movieID uint) (bool, error)
	Detach(userID, movieID uint) (bool, error)
	Exists(userID, movieID uint) (bool, error)
	GetMoviesByUserID(userID uint) ([]models.Movie, error)
	GetUserIDsByMovieID(movieID uint) ([]uint, error)
}
