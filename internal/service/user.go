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

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUserRequest represents the data needed to create a user
type CreateUserRequest struct {
	Name string `json:"user_name" validate:"required,max=100"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
}

// CreateUser creates a new user. The name is stored trimmed; an empty or
// whitespace-only name is a validation error and mutates nothing.
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperrors.ErrUserNameRequired
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Field: "user_name", Message: err.Error()}
	}

	user := &models.User{Name: req.Name}
	if err := s.repo.Create(user); err != nil {
		return nil, apperrors.Storage("create user", err)
	}

	return toUserResponse(user), nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id uint) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Storage("get user", err)
	}
	return toUserResponse(user), nil
}

// ListUsers retrieves all users in insertion order
func (s *UserService) ListUsers() ([]UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.Storage("list users", err)
	}

	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = *toUserResponse(&u)
	}
	return responses, nil
}

// DeleteUser removes a user and the user's association rows. Shared catalog
// movies survive.
func (s *UserService) DeleteUser(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.Storage("delete user", err)
	}
	return nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		UserID:   user.ID,
		UserName: user.Name,
	}
}
