package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mentor-link/api-go/controllers"
)

func SetupConnectionRoutes(protected *gin.RouterGroup, connectionController *controllers.ConnectionController) {
	connections := protected.Group("/connections")
	{
		connections.GET("", connectionController.ListConnections)
		connections.POST("/request", connectionController.RequestConnection)
		connections.PUT("/:id", connectionController.RespondToConnection)
		connections.DELETE("/:id", connectionController.DeleteConnection)
	}
}
