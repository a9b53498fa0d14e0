// Package profilepolicy provides the authorization rules for profile
// mutations: reads are open, writes belong to the owner.
package profilepolicy

import (
	"github.com/mentor-link/api-go/models"
)

// CanEdit reports whether userID may modify the profile.
func CanEdit(profile *models.Profile, userID uint) bool {
	return profile.UserID == userID
}
