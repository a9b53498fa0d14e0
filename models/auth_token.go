package models

import (
	"time"
)

// AuthToken is the server-side record of an issued bearer token. The
// auth middleware requires a live row, so deleting it (logout) revokes
// the token even before its expiry.
type AuthToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Token     string    `gorm:"unique;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
