package repository

import (
	"moviweb-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "user_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves all users in insertion order
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("user_id ASC").Find(&users).Error
	return users, err
}

// Delete removes a user and all of the user's association rows in one
// transaction. Shared movie rows are left untouched.
func (r *UserRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.UserMovie{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, "user_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
