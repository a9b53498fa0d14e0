package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mentor-link/api-go/repository"
	"github.com/mentor-link/api-go/services"
	"github.com/mentor-link/api-go/utils"
)

type UserController struct {
	Profiles    *services.ProfileService
	Connections *services.ConnectionService
}

func NewUserController(profiles *services.ProfileService, connections *services.ConnectionService) *UserController {
	return &UserController{Profiles: profiles, Connections: connections}
}

// ListUsers is the discovery endpoint: active users with a role set,
// filtered by role, skills, interests, and free-text search. The caller
// never appears in their own results.
func (uc *UserController) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	opts := repository.SearchOptions{
		Role:       strings.TrimSpace(c.Query("role")),
		Skills:     utils.SplitTags(c.Query("skills")),
		Interests:  utils.SplitTags(c.Query("interests")),
		SearchText: strings.TrimSpace(c.Query("search")),
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	}

	viewer := utils.GetUser(c)
	if viewer != nil {
		opts.ExcludeUserID = viewer.UserID
	}

	profiles, total, err := uc.Profiles.Discover(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
		return
	}

	results := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		status := services.RelationshipNone
		if viewer != nil {
			status, err = uc.Connections.RelationshipStatus(viewer.UserID, profiles[i].UserID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
				return
			}
		}
		results = append(results, serializeProfile(&profiles[i], status, uc.Profiles))
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    results,
		Pagination: &PaginationMeta{
			CurrentPage: page,
			PageSize:    pageSize,
			TotalItems:  total,
			TotalPages:  int((total + int64(pageSize) - 1) / int64(pageSize)),
		},
	})
}
