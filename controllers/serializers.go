package controllers

import (
	"time"

	"github.com/mentor-link/api-go/models"
	"github.com/mentor-link/api-go/services"
)

type BasicUser struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type BasicProfile struct {
	Role              string  `json:"role"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

type ProfileResponse struct {
	ID                uint      `json:"id"`
	User              BasicUser `json:"user"`
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	Headline          string    `json:"headline"`
	Bio               string    `json:"bio"`
	SkillsList        []string  `json:"skills_list"`
	InterestsList     []string  `json:"interests_list"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	Location          string    `json:"location"`
	LinkedinURL       string    `json:"linkedin_url"`
	WebsiteURL        string    `json:"website_url"`
	ConnectionStatus  string    `json:"connectionStatus"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ConnectionResponse struct {
	ID               uint         `json:"id"`
	Requester        BasicUser    `json:"requester"`
	Receiver         BasicUser    `json:"receiver"`
	Status           string       `json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
	AcceptedAt       *time.Time   `json:"accepted_at"`
	RequesterProfile BasicProfile `json:"requester_profile"`
	ReceiverProfile  BasicProfile `json:"receiver_profile"`
}

func serializeBasicUser(user *models.User) BasicUser {
	return BasicUser{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func serializeBasicProfile(profile *models.Profile, profiles *services.ProfileService) BasicProfile {
	if profile == nil {
		return BasicProfile{}
	}
	return BasicProfile{
		Role:              profile.Role,
		ProfilePictureURL: profiles.PictureURL(profile),
	}
}

func serializeProfile(profile *models.Profile, connectionStatus string, profiles *services.ProfileService) ProfileResponse {
	return ProfileResponse{
		ID:                profile.ID,
		User:              serializeBasicUser(&profile.User),
		Name:              profile.User.FullName(),
		Role:              profile.Role,
		Headline:          profile.Headline,
		Bio:               profile.Bio,
		SkillsList:        profile.SkillsList(),
		InterestsList:     profile.InterestsList(),
		ProfilePictureURL: profiles.PictureURL(profile),
		Location:          profile.Location,
		LinkedinURL:       profile.LinkedinURL,
		WebsiteURL:        profile.WebsiteURL,
		ConnectionStatus:  connectionStatus,
		UpdatedAt:         profile.UpdatedAt,
	}
}

func serializeConnection(conn *models.Connection, profiles *services.ProfileService) ConnectionResponse {
	return ConnectionResponse{
		ID:               conn.ID,
		Requester:        serializeBasicUser(&conn.Requester),
		Receiver:         serializeBasicUser(&conn.Receiver),
		Status:           conn.Status,
		CreatedAt:        conn.CreatedAt,
		AcceptedAt:       conn.AcceptedAt,
		RequesterProfile: serializeBasicProfile(conn.Requester.Profile, profiles),
		ReceiverProfile:  serializeBasicProfile(conn.Receiver.Profile, profiles),
	}
}

func serializeConnections(conns []models.Connection, profiles *services.ProfileService) []ConnectionResponse {
	out := make([]ConnectionResponse, 0, len(conns))
	for i := range conns {
		out = append(out, serializeConnection(&conns[i], profiles))
	}
	return out
}
