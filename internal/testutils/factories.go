package testutils

import (
	"moviweb-backend/internal/database/models"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	return &models.User{
		Name: "Ada",
	}
}

// WithName sets a custom name for the user
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.Name = name
	return user
}

// MovieFactory provides methods to create test Movie data
type MovieFactory struct{}

// NewMovieFactory creates a new MovieFactory
func NewMovieFactory() *MovieFactory {
	return &MovieFactory{}
}

// Create creates a test Movie with default values
func (f *MovieFactory) Create() *models.Movie {
	year := 2021
	rating := 8.0
	return &models.Movie{
		Title:       "Dune",
		Director:    "Denis Villeneuve",
		ReleaseYear: &year,
		Rating:      &rating,
	}
}

// WithTitle sets a custom title for the movie
func (f *MovieFactory) WithTitle(title string) *models.Movie {
	movie := f.Create()
	movie.Title = title
	return movie
}
