package repository

import (
	"moviweb-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserMovieRepository handles database operations for user-movie associations
type UserMovieRepository struct {
	db *gorm.DB
}

// NewUserMovieRepository creates a new user-movie repository
func NewUserMovieRepository(db *gorm.DB) *UserMovieRepository {
	return &UserMovieRepository{db: db}
}

// Attach inserts the association as an upsert on the composite key. Returns
// true if a new row was created, false if the pair already existed. The
// ON CONFLICT DO NOTHING form leaves no race between check and insert.
func (r *UserMovieRepository) Attach(userID, movieID uint) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserMovie{UserID: userID, MovieID: movieID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Detach removes the association. Returns true if a row existed and was
// removed, false otherwise; a missing user or movie is not an error here.
func (r *UserMovieRepository) Detach(userID, movieID uint) (bool, error) {
	res := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&models.UserMovie{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Exists checks if a user-movie association exists
func (r *UserMovieRepository) Exists(userID, movieID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserMovie{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	return count > 0, err
}

// GetMoviesByUserID retrieves the movies attached to a user, ordered by
// movie_id. An unknown user yields an empty slice.
func (r *UserMovieRepository) GetMoviesByUserID(userID uint) ([]models.Movie, error) {
	var movies []models.Movie
	err := r.db.Model(&models.Movie{}).
		Joins("JOIN user_movies ON user_movies.movie_id = movies.movie_id").
		Where("user_movies.user_id = ?", userID).
		Order("movies.movie_id ASC").
		Find(&movies).Error
	return movies, err
}

// GetUserIDsByMovieID retrieves the ids of all users who have the movie attached
func (r *UserMovieRepository) GetUserIDsByMovieID(movieID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.UserMovie{}).
		Where("movie_id = ?", movieID).
		Order("user_id ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}
