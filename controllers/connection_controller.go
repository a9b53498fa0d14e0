package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mentor-link/api-go/services"
	"github.com/mentor-link/api-go/utils"
)

type ConnectionController struct {
	Connections *services.ConnectionService
	Profiles    *services.ProfileService
}

func NewConnectionController(connections *services.ConnectionService, profiles *services.ProfileService) *ConnectionController {
	return &ConnectionController{Connections: connections, Profiles: profiles}
}

// ListConnections returns the caller's connections in three buckets:
// pending requests received, pending requests sent, and accepted
// connections.
func (cc *ConnectionController) ListConnections(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	lists, err := cc.Connections.ListConnections(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching connections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"incoming": serializeConnections(lists.Incoming, cc.Profiles),
		"outgoing": serializeConnections(lists.Outgoing, cc.Profiles),
		"current":  serializeConnections(lists.Current, cc.Profiles),
	})
}

// RequestConnection sends a pending connection request to another user.
func (cc *ConnectionController) RequestConnection(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		UserID uint `json:"user_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := cc.Connections.RequestConnection(user.UserID, input.UserID)
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, serializeConnection(conn, cc.Profiles))
}

// RespondToConnection lets the receiver accept or decline a pending
// request. Declining deletes the request and answers 204.
func (cc *ConnectionController) RespondToConnection(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	connectionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid connection ID"})
		return
	}

	var input struct {
		Action string `json:"action" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := cc.Connections.RespondToConnection(uint(connectionID), user.UserID, input.Action)
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	if conn == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, serializeConnection(conn, cc.Profiles))
}

// DeleteConnection cancels the caller's own pending request or removes
// an accepted connection.
func (cc *ConnectionController) DeleteConnection(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	connectionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid connection ID"})
		return
	}

	if err := cc.Connections.CancelOrRemove(uint(connectionID), user.UserID); err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
