package services

import (
	"errors"
	"time"

	"github.com/mentor-link/api-go/models"
	"github.com/mentor-link/api-go/policy/connectionpolicy"
	"github.com/mentor-link/api-go/repository"
)

// Relationship labels as seen from a viewer's side.
const (
	RelationshipSelf            = "self"
	RelationshipConnected       = "connected"
	RelationshipPendingSent     = "pending_sent"
	RelationshipPendingReceived = "pending_received"
	RelationshipNone            = "none"
)

const (
	ActionAccept  = "accept"
	ActionDecline = "decline"
)

// ConnectionLists categorizes every connection involving one user.
type ConnectionLists struct {
	Incoming []models.Connection
	Outgoing []models.Connection
	Current  []models.Connection
}

// ConnectionService owns the relationship lifecycle between two users:
// the state machine, the unordered-pair uniqueness invariant, and the
// transition permissions.
type ConnectionService struct {
	connections repository.ConnectionRepository
	users       repository.UserRepository
}

func NewConnectionService(connections repository.ConnectionRepository, users repository.UserRepository) *ConnectionService {
	return &ConnectionService{connections: connections, users: users}
}

// RequestConnection creates a pending connection from requester to
// receiver. The pair-key unique index is the source of truth for
// uniqueness; the FindByPair lookup is an early exit that produces a
// message carrying the current status.
func (s *ConnectionService) RequestConnection(requesterID, receiverID uint) (*models.Connection, error) {
	if requesterID == receiverID {
		return nil, ErrSelfReference
	}

	if _, err := s.users.FindByID(receiverID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing, err := s.connections.FindByPair(requesterID, receiverID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{Status: existing.Status}
	}

	conn := models.NewConnection(requesterID, receiverID)
	if err := s.connections.Create(conn); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the race against a concurrent request for the same
			// pair; report the winner's status.
			if winner, ferr := s.connections.FindByPair(requesterID, receiverID); ferr == nil {
				return nil, &ConflictError{Status: winner.Status}
			}
			return nil, &ConflictError{Status: models.ConnectionStatusPending}
		}
		return nil, err
	}

	return s.connections.FindByID(conn.ID)
}

// RespondToConnection lets the receiver of a pending connection accept
// or decline it. Accepting returns the updated connection; declining
// deletes the row and returns nil, leaving the pair free to re-request.
func (s *ConnectionService) RespondToConnection(connectionID, actingUserID uint, action string) (*models.Connection, error) {
	if action != ActionAccept && action != ActionDecline {
		return nil, &ValidationError{Message: "action must be either accept or decline"}
	}

	conn, err := s.connections.FindByID(connectionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !connectionpolicy.CanRespond(conn, actingUserID) {
		return nil, ErrPermissionDenied
	}

	if action == ActionDecline {
		if err := s.connections.Delete(conn); err != nil {
			return nil, err
		}
		return nil, nil
	}

	now := time.Now()
	conn.Status = models.ConnectionStatusAccepted
	conn.AcceptedAt = &now
	if err := s.connections.Save(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// CancelOrRemove deletes a connection: the requester cancelling their
// own pending request, or either party removing an accepted connection.
func (s *ConnectionService) CancelOrRemove(connectionID, actingUserID uint) error {
	conn, err := s.connections.FindByID(connectionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !conn.Involves(actingUserID) {
		return ErrPermissionDenied
	}
	if !connectionpolicy.CanDelete(conn, actingUserID) {
		return ErrForbiddenAction
	}

	return s.connections.Delete(conn)
}

// RelationshipStatus answers what the connection between viewer and
// target looks like from the viewer's side. Unauthenticated viewers are
// handled by the caller and always see "none".
func (s *ConnectionService) RelationshipStatus(viewerID, targetID uint) (string, error) {
	if viewerID == targetID {
		return RelationshipSelf, nil
	}

	conn, err := s.connections.FindByPair(viewerID, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return RelationshipNone, nil
		}
		return "", err
	}

	switch conn.Status {
	case models.ConnectionStatusAccepted:
		return RelationshipConnected, nil
	case models.ConnectionStatusPending:
		if conn.RequesterID == viewerID {
			return RelationshipPendingSent, nil
		}
		return RelationshipPendingReceived, nil
	default:
		return RelationshipNone, nil
	}
}

// ListConnections returns every connection involving userID: pending
// requests they received, pending requests they sent, and accepted
// connections ordered by acceptance time, newest first.
func (s *ConnectionService) ListConnections(userID uint) (*ConnectionLists, error) {
	incoming, err := s.connections.ListIncoming(userID)
	if err != nil {
		return nil, err
	}
	outgoing, err := s.connections.ListOutgoing(userID)
	if err != nil {
		return nil, err
	}
	current, err := s.connections.ListAccepted(userID)
	if err != nil {
		return nil, err
	}
	return &ConnectionLists{Incoming: incoming, Outgoing: outgoing, Current: current}, nil
}
