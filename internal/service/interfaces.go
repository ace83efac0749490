package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	GetUserByID(id uint) (*UserResponse, error)
	ListUsers() ([]UserResponse, error)
	DeleteUser(id uint) error
}

// MovieServiceInterface defines the interface for movie service
type MovieServiceInterface interface {
	CreateMovie(req *CreateMovieRequest) (*MovieResponse, error)
	GetMovieByID(id uint) (*MovieResponse, error)
	ListMovies() ([]MovieResponse, error)
	UpdateMovie(id uint, req *UpdateMovieRequest) (*MovieResponse, error)
	DeleteMovie(id uint) error
}

// FavoriteServiceInterface defines the interface for the user-movie favorites service
type FavoriteServiceInterface interface {
	GetUserMovies(userID uint) ([]MovieResponse, error)
	Attach(userID, movieID uint) (bool, error)
	Detach(userID, movieID uint) (bool, error)
	AddByTitle(userID uint, title string) (*MovieResponse, error)
}

// EnrichmentServiceInterface defines the interface for the external movie lookup
type EnrichmentServiceInterface interface {
	FetchMovieDetails(title string) *MovieDetails
}
