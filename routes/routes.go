package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mentor-link/api-go/config"
	"github.com/mentor-link/api-go/controllers"
	"github.com/mentor-link/api-go/middleware"
	"github.com/mentor-link/api-go/repository"
	"github.com/mentor-link/api-go/services"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Repositories and services
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	connectionRepo := repository.NewConnectionRepository(db)
	tokenRepo := repository.NewAuthTokenRepository(db)

	// Drop sessions that expired while the server was down.
	tokenRepo.DeleteExpired(time.Now())

	connectionService := services.NewConnectionService(connectionRepo, userRepo)
	profileService := services.NewProfileService(profileRepo, userRepo, config.GetR2Config())

	// Controllers
	authController := controllers.NewAuthController(userRepo, tokenRepo)
	profileController := controllers.NewProfileController(profileService, connectionService)
	userController := controllers.NewUserController(profileService, connectionService)
	connectionController := controllers.NewConnectionController(connectionService, profileService)
	uploadController := controllers.NewUploadController(profileService)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)
	}

	// Public but caller-aware routes
	browse := r.Group("/api")
	browse.Use(middleware.OptionalAuthMiddleware(tokenRepo))
	{
		SetupUserRoutes(browse, userController, profileController)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(tokenRepo))
	{
		protected.POST("/logout", authController.Logout)

		// Own profile
		protected.GET("/profile", profileController.GetOwnProfile)
		protected.PUT("/profile", profileController.UpdateOwnProfile)
		protected.PATCH("/profile", profileController.UpdateOwnProfile)
		protected.DELETE("/profile", profileController.DeleteOwnProfile)
		protected.POST("/profile/picture", uploadController.UploadProfilePicture)

		SetupConnectionRoutes(protected, connectionController)
	}
}
