package routes

import (
	"moviweb-backend/internal/api/handlers"
	"moviweb-backend/internal/api/middleware"
	"moviweb-backend/internal/config"
	"moviweb-backend/internal/repository"
	"moviweb-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	userMovieRepo := repository.NewUserMovieRepository(db)

	// Initialize services
	omdbService := service.NewOMDbService(cfg)
	userService := service.NewUserService(userRepo, validator)
	movieService := service.NewMovieService(movieRepo, validator)
	favoriteService := service.NewFavoriteService(userMovieRepo, userRepo, movieRepo, omdbService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService, favoriteService)
	movieHandler := handlers.NewMovieHandler(movieService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.GET("/:id/movies", userHandler.GetUserMovies)
			users.POST("/:id/movies", userHandler.AddMovieByTitle)
			users.PUT("/:id/movies/:movie_id", userHandler.AttachMovie)
			users.DELETE("/:id/movies/:movie_id", userHandler.DetachMovie)
		}

		movies := v1.Group("/movies")
		{
			movies.GET("", movieHandler.ListMovies)
			movies.POST("", movieHandler.CreateMovie)
			movies.GET("/:id", movieHandler.GetMovie)
			movies.PUT("/:id", movieHandler.UpdateMovie)
			movies.DELETE("/:id", movieHandler.DeleteMovie)
		}
	}

	return router
}
