package models

import (
	"time"
)

const (
	ConnectionStatusPending  = "pending"
	ConnectionStatusAccepted = "accepted"
)

// Connection is a directed request-or-established relationship between
// two users. A row exists only while the connection is pending or
// accepted; declining, cancelling, or removing deletes it, so a declined
// pair is indistinguishable from one that never connected.
//
// UserLoID/UserHiID are the orientation-independent pair key: the
// composite unique index is the correctness backstop for the at-most-one
// active connection per unordered pair invariant, regardless of which
// side sent the request and of concurrent requests racing the
// application-level existence check.
type Connection struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	RequesterID uint       `gorm:"not null" json:"requester_id"`
	ReceiverID  uint       `gorm:"not null" json:"receiver_id"`
	UserLoID    uint       `gorm:"not null;uniqueIndex:idx_connections_pair" json:"-"`
	UserHiID    uint       `gorm:"not null;uniqueIndex:idx_connections_pair" json:"-"`
	Status      string     `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	AcceptedAt  *time.Time `json:"accepted_at"`

	Requester User `json:"-" gorm:"foreignKey:RequesterID"`
	Receiver  User `json:"-" gorm:"foreignKey:ReceiverID"`
}

// NewConnection builds a pending connection with the pair key filled in.
// The key is computed here, explicitly, rather than in a persistence
// hook.
func NewConnection(requesterID, receiverID uint) *Connection {
	lo, hi := requesterID, receiverID
	if lo > hi {
		lo, hi = hi, lo
	}
	return &Connection{
		RequesterID: requesterID,
		ReceiverID:  receiverID,
		UserLoID:    lo,
		UserHiID:    hi,
		Status:      ConnectionStatusPending,
	}
}

// Involves reports whether userID is either end of the connection.
func (c *Connection) Involves(userID uint) bool {
	return c.RequesterID == userID || c.ReceiverID == userID
}
