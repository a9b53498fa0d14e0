// Package connectionpolicy provides the authorization rules for
// connection lifecycle transitions.
//
// Rules:
//   - Only the receiver of a pending connection may accept or decline it.
//   - Only the requester of a pending connection may cancel it.
//   - Either party of an accepted connection may remove it.
package connectionpolicy

import (
	"github.com/mentor-link/api-go/models"
)

// CanRespond reports whether userID may accept or decline the connection.
func CanRespond(conn *models.Connection, userID uint) bool {
	return conn.ReceiverID == userID && conn.Status == models.ConnectionStatusPending
}

// CanCancel reports whether userID may cancel the connection as an
// unanswered request.
func CanCancel(conn *models.Connection, userID uint) bool {
	return conn.RequesterID == userID && conn.Status == models.ConnectionStatusPending
}

// CanRemove reports whether userID may remove the established connection.
func CanRemove(conn *models.Connection, userID uint) bool {
	return conn.Involves(userID) && conn.Status == models.ConnectionStatusAccepted
}

// CanDelete reports whether userID may delete the connection, either by
// cancelling their own pending request or by removing an accepted
// connection.
func CanDelete(conn *models.Connection, userID uint) bool {
	return CanCancel(conn, userID) || CanRemove(conn, userID)
}
