package models

import (
	"time"

	"github.com/mentor-link/api-go/utils"
)

const (
	RoleMentor = "mentor"
	RoleMentee = "mentee"
)

// Profile holds the descriptive attributes of a user. Every user owns
// exactly one profile, created together with the user record.
//
// Skills and Interests are stored in canonical form: comma-joined,
// trimmed, empty entries dropped. The list form is derived on read.
type Profile struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User           User      `json:"-" gorm:"foreignKey:UserID"`
	Role           string    `json:"role"` // mentor, mentee, or empty when unset
	Headline       string    `json:"headline"`
	Bio            string    `json:"bio"`
	Skills         string    `json:"skills"`
	Interests      string    `json:"interests"`
	Location       string    `json:"location"`
	LinkedinURL    string    `json:"linkedin_url"`
	WebsiteURL     string    `json:"website_url"`
	ProfilePicture string    `json:"-"` // object key in the media bucket, empty when unset
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p *Profile) SkillsList() []string {
	return utils.SplitTags(p.Skills)
}

func (p *Profile) InterestsList() []string {
	return utils.SplitTags(p.Interests)
}
