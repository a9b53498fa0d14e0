package services

import (
	"testing"

	"github.com/mentor-link/api-go/config"
	"github.com/mentor-link/api-go/models"
	"github.com/mentor-link/api-go/repository"
	"github.com/stretchr/testify/require"
)

func newProfileService(media *config.R2Config, userIDs ...uint) (*ProfileService, *fakeUserRepo) {
	users := newFakeUserRepo(userIDs...)
	return NewProfileService(newFakeProfileRepo(users), users, media), users
}

func strPtr(s string) *string {
	return &s
}

func TestUpdateProfileCanonicalizesTags(t *testing.T) {
	s, _ := newProfileService(nil, 1)

	profile, err := s.UpdateProfile(1, ProfileUpdate{
		Skills:    strPtr("Python, Go ,,"),
		Interests: strPtr(" open source ,mentoring"),
	})
	require.NoError(t, err)
	require.Equal(t, "Python,Go", profile.Skills)
	require.Equal(t, []string{"Python", "Go"}, profile.SkillsList())
	require.Equal(t, []string{"open source", "mentoring"}, profile.InterestsList())
}

func TestUpdateProfilePartial(t *testing.T) {
	s, _ := newProfileService(nil, 1)

	_, err := s.UpdateProfile(1, ProfileUpdate{
		Role:     strPtr(models.RoleMentor),
		Headline: strPtr("Staff engineer"),
	})
	require.NoError(t, err)

	profile, err := s.UpdateProfile(1, ProfileUpdate{Bio: strPtr("20 years of Go")})
	require.NoError(t, err)
	require.Equal(t, models.RoleMentor, profile.Role)
	require.Equal(t, "Staff engineer", profile.Headline)
	require.Equal(t, "20 years of Go", profile.Bio)
}

func TestUpdateProfileRejectsUnknownRole(t *testing.T) {
	s, _ := newProfileService(nil, 1)

	var validationErr *ValidationError
	_, err := s.UpdateProfile(1, ProfileUpdate{Role: strPtr("guru")})
	require.ErrorAs(t, err, &validationErr)
}

func TestUpdateProfileClearsRole(t *testing.T) {
	s, _ := newProfileService(nil, 1)

	_, err := s.UpdateProfile(1, ProfileUpdate{Role: strPtr(models.RoleMentee)})
	require.NoError(t, err)

	profile, err := s.UpdateProfile(1, ProfileUpdate{Role: strPtr("")})
	require.NoError(t, err)
	require.Equal(t, "", profile.Role)
}

func TestDeactivateAccountHidesPublicProfile(t *testing.T) {
	s, users := newProfileService(nil, 1)

	_, err := s.PublicProfile(1)
	require.NoError(t, err)

	require.NoError(t, s.DeactivateAccount(1))
	require.False(t, users.users[1].IsActive)

	_, err = s.PublicProfile(1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDiscoverExcludesCallerAndRoleless(t *testing.T) {
	s, _ := newProfileService(nil, 1, 2, 3)

	_, err := s.UpdateProfile(1, ProfileUpdate{Role: strPtr(models.RoleMentor)})
	require.NoError(t, err)
	_, err = s.UpdateProfile(2, ProfileUpdate{Role: strPtr(models.RoleMentee)})
	require.NoError(t, err)
	// user 3 never sets a role

	profiles, total, err := s.Discover(repository.SearchOptions{ExcludeUserID: 1, Limit: 20})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, profiles, 1)
	require.Equal(t, uint(2), profiles[0].UserID)
}

func TestPictureURLBestEffort(t *testing.T) {
	media := &config.R2Config{PublicURL: "https://media.example.com"}
	s, _ := newProfileService(media, 1)

	profile, err := s.OwnProfile(1)
	require.NoError(t, err)
	require.Nil(t, s.PictureURL(profile), "no key yet")

	profile, err = s.SetProfilePicture(1, "profile_pics/1/abc.png")
	require.NoError(t, err)
	url := s.PictureURL(profile)
	require.NotNil(t, url)
	require.Equal(t, "https://media.example.com/profile_pics/1/abc.png", *url)

	unconfigured, _ := newProfileService(nil, 1)
	withKey, err := unconfigured.SetProfilePicture(1, "profile_pics/1/abc.png")
	require.NoError(t, err)
	require.Nil(t, unconfigured.PictureURL(withKey), "missing media config degrades to null")
}

func TestOwnProfileUnknownUser(t *testing.T) {
	s, _ := newProfileService(nil, 1)

	_, err := s.OwnProfile(7)
	require.ErrorIs(t, err, ErrNotFound)
}
