package repository

import (
	"moviweb-backend/internal/database/models"

	"gorm.io/gorm"
)

// MovieRepository handles database operations for catalog movies
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// Create creates a new movie
func (r *MovieRepository) Create(movie *models.Movie) error {
	return r.db.Create(movie).Error
}

// GetByID retrieves a movie by ID
func (r *MovieRepository) GetByID(id uint) (*models.Movie, error) {
	var movie models.Movie
	err := r.db.First(&movie, "movie_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetByTitle retrieves a movie by exact title, case-insensitive
func (r *MovieRepository) GetByTitle(title string) (*models.Movie, error) {
	var movie models.Movie
	err := r.db.First(&movie, "LOWER(title) = LOWER(?)", title).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetAll retrieves all movies in insertion order
func (r *MovieRepository) GetAll() ([]models.Movie, error) {
	var movies []models.Movie
	err := r.db.Order("movie_id ASC").Find(&movies).Error
	return movies, err
}

// Update applies a partial update. Keys absent from updates leave the stored
// column unchanged.
func (r *MovieRepository) Update(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		// Nothing to change; still report whether the movie exists.
		_, err := r.GetByID(id)
		return err
	}
	res := r.db.Model(&models.Movie{}).Where("movie_id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a movie and every association row referencing it in one
// transaction, so no dangling user_movies rows survive.
func (r *MovieRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", id).Delete(&models.UserMovie{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Movie{}, "movie_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
