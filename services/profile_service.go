package services

import (
	"errors"
	"fmt"

	"github.com/mentor-link/api-go/config"
	"github.com/mentor-link/api-go/models"
	"github.com/mentor-link/api-go/policy/profilepolicy"
	"github.com/mentor-link/api-go/repository"
	"github.com/mentor-link/api-go/utils"
)

// ProfileUpdate carries a partial profile mutation. Nil fields are left
// untouched. Skills/Interests arrive as raw comma-separated strings and
// are canonicalized before storage.
type ProfileUpdate struct {
	Role        *string
	Headline    *string
	Bio         *string
	Skills      *string
	Interests   *string
	Location    *string
	LinkedinURL *string
	WebsiteURL  *string
}

type ProfileService struct {
	profiles repository.ProfileRepository
	users    repository.UserRepository
	media    *config.R2Config
}

func NewProfileService(profiles repository.ProfileRepository, users repository.UserRepository, media *config.R2Config) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, media: media}
}

func (s *ProfileService) OwnProfile(userID uint) (*models.Profile, error) {
	profile, err := s.profiles.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

// PublicProfile resolves a profile for anyone to view. Inactive users
// are invisible.
func (s *ProfileService) PublicProfile(userID uint) (*models.Profile, error) {
	profile, err := s.profiles.FindActiveByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) UpdateProfile(userID uint, update ProfileUpdate) (*models.Profile, error) {
	if update.Role != nil {
		role := *update.Role
		if role != "" && role != models.RoleMentor && role != models.RoleMentee {
			return nil, &ValidationError{Message: "role must be mentor or mentee"}
		}
	}

	profile, err := s.OwnProfile(userID)
	if err != nil {
		return nil, err
	}
	if !profilepolicy.CanEdit(profile, userID) {
		return nil, ErrPermissionDenied
	}

	if update.Role != nil {
		profile.Role = *update.Role
	}
	if update.Headline != nil {
		profile.Headline = *update.Headline
	}
	if update.Bio != nil {
		profile.Bio = *update.Bio
	}
	if update.Skills != nil {
		profile.Skills = utils.NormalizeTags(*update.Skills)
	}
	if update.Interests != nil {
		profile.Interests = utils.NormalizeTags(*update.Interests)
	}
	if update.Location != nil {
		profile.Location = *update.Location
	}
	if update.LinkedinURL != nil {
		profile.LinkedinURL = *update.LinkedinURL
	}
	if update.WebsiteURL != nil {
		profile.WebsiteURL = *update.WebsiteURL
	}

	if err := s.profiles.Save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetProfilePicture records the object key of an uploaded picture.
func (s *ProfileService) SetProfilePicture(userID uint, objectKey string) (*models.Profile, error) {
	profile, err := s.OwnProfile(userID)
	if err != nil {
		return nil, err
	}
	if !profilepolicy.CanEdit(profile, userID) {
		return nil, ErrPermissionDenied
	}

	profile.ProfilePicture = objectKey
	if err := s.profiles.Save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeactivateAccount takes the user out of discovery and public profile
// reads. The profile row is kept.
func (s *ProfileService) DeactivateAccount(userID uint) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	user.IsActive = false
	return s.users.Save(user)
}

// Discover lists candidate profiles for browsing: active users with a
// role set, filtered and ordered by username.
func (s *ProfileService) Discover(opts repository.SearchOptions) ([]models.Profile, int64, error) {
	return s.profiles.Search(opts)
}

// PictureURL builds the public URL for a profile picture. Best effort:
// a missing key or unconfigured media bucket yields nil rather than an
// error, and the client falls back to its default image.
func (s *ProfileService) PictureURL(profile *models.Profile) *string {
	if profile.ProfilePicture == "" || s.media == nil || s.media.PublicURL == "" {
		return nil
	}
	url := fmt.Sprintf("%s/%s", s.media.PublicURL, profile.ProfilePicture)
	return &url
}
