package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mentor-link/api-go/services"
	"github.com/mentor-link/api-go/utils"
)

type ProfileController struct {
	Profiles    *services.ProfileService
	Connections *services.ConnectionService
}

func NewProfileController(profiles *services.ProfileService, connections *services.ConnectionService) *ProfileController {
	return &ProfileController{Profiles: profiles, Connections: connections}
}

func (pc *ProfileController) GetOwnProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	profile, err := pc.Profiles.OwnProfile(user.UserID)
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, serializeProfile(profile, services.RelationshipSelf, pc.Profiles))
}

// UpdateOwnProfile handles both PUT and PATCH; absent fields are left
// untouched either way, matching how clients use the endpoint.
func (pc *ProfileController) UpdateOwnProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Role        *string `json:"role"`
		Headline    *string `json:"headline"`
		Bio         *string `json:"bio"`
		Skills      *string `json:"skills"`
		Interests   *string `json:"interests"`
		Location    *string `json:"location"`
		LinkedinURL *string `json:"linkedin_url"`
		WebsiteURL  *string `json:"website_url"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := pc.Profiles.UpdateProfile(user.UserID, services.ProfileUpdate{
		Role:        input.Role,
		Headline:    input.Headline,
		Bio:         input.Bio,
		Skills:      input.Skills,
		Interests:   input.Interests,
		Location:    input.Location,
		LinkedinURL: input.LinkedinURL,
		WebsiteURL:  input.WebsiteURL,
	})
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, serializeProfile(profile, services.RelationshipSelf, pc.Profiles))
}

// DeleteOwnProfile deactivates the account, hiding it from discovery
// and public profile reads. The profile row stays.
func (pc *ProfileController) DeleteOwnProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	if err := pc.Profiles.DeactivateAccount(user.UserID); err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPublicProfile returns any active user's profile. When the caller
// is authenticated the payload carries the relationship between the two
// users; anonymous callers always see "none".
func (pc *ProfileController) GetPublicProfile(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	profile, err := pc.Profiles.PublicProfile(uint(targetID))
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	status := services.RelationshipNone
	if viewer := utils.GetUser(c); viewer != nil {
		status, err = pc.Connections.RelationshipStatus(viewer.UserID, uint(targetID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve connection status"})
			return
		}
	}

	c.JSON(http.StatusOK, serializeProfile(profile, status, pc.Profiles))
}
