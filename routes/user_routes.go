package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mentor-link/api-go/controllers"
)

func SetupUserRoutes(browse *gin.RouterGroup, userController *controllers.UserController, profileController *controllers.ProfileController) {
	// Discovery list
	browse.GET("/users", userController.ListUsers)

	// Public profile view
	browse.GET("/profiles/:userId", profileController.GetPublicProfile)
}
