package services

import (
	"testing"

	"github.com/mentor-link/api-go/models"
	"github.com/stretchr/testify/require"
)

func newConnectionService(userIDs ...uint) (*ConnectionService, *fakeConnectionRepo) {
	conns := newFakeConnectionRepo()
	return NewConnectionService(conns, newFakeUserRepo(userIDs...)), conns
}

func TestRequestConnection(t *testing.T) {
	s, _ := newConnectionService(1, 2)

	conn, err := s.RequestConnection(1, 2)
	require.NoError(t, err)
	require.Equal(t, uint(1), conn.RequesterID)
	require.Equal(t, uint(2), conn.ReceiverID)
	require.Equal(t, models.ConnectionStatusPending, conn.Status)
	require.Nil(t, conn.AcceptedAt)
	require.False(t, conn.CreatedAt.IsZero())
}

func TestRequestConnectionToSelf(t *testing.T) {
	s, _ := newConnectionService(1)

	_, err := s.RequestConnection(1, 1)
	require.ErrorIs(t, err, ErrSelfReference)
}

func TestRequestConnectionUnknownReceiver(t *testing.T) {
	s, _ := newConnectionService(1)

	_, err := s.RequestConnection(1, 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRequestConnectionConflictsInBothDirections(t *testing.T) {
	s, _ := newConnectionService(1, 2)

	_, err := s.RequestConnection(1, 2)
	require.NoError(t, err)

	var conflict *ConflictError
	_, err = s.RequestConnection(1, 2)
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, models.ConnectionStatusPending, conflict.Status)

	_, err = s.RequestConnection(2, 1)
	require.ErrorAs(t, err, &conflict)
	require.Contains(t, conflict.Error(), "pending")
}

func TestRequestConnectionConflictWhileAccepted(t *testing.T) {
	s, _ := newConnectionService(1, 2)

	conn, err := s.RequestConnection(1, 2)
	require.NoError(t, err)
	_, err = s.RespondToConnection(conn.ID, 2, ActionAccept)
	require.NoError(t, err)

	var conflict *ConflictError
	_, err = s.RequestConnection(2, 1)
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, models.ConnectionStatusAccepted, conflict.Status)
}

func TestRequestConnectionLosesCreationRace(t *testing.T) {
	s, conns := newConnectionService(1, 2)

	_, err := s.RequestConnection(1, 2)
	require.NoError(t, err)

	// Hide the pair from the early existence check so the create runs
	// into the unique index, as a concurrent request would.
	conns.hidePairLookup = true
	var conflict *ConflictError
	_, err = s.RequestConnection(2, 1)
	require.ErrorAs(t, err, &conflict)
}

func TestRespondToConnectionAccept(t *testing.T) {
	s, _ := newConnectionService(1, 2)

	conn, err := s.RequestConnection(1, 2)
	require.NoError(t, err)

	updated, err := s.RespondToConnection(conn.ID, 2, ActionAccept)
	require.NoError(t, err)
	require.Equal(t, models.ConnectionStatusAccepted, updated.Status)
	require.NotNil(t, updated.AcceptedAt)

	for _, pair := range [][2]uint{{1, 2}, {2, 1}} {
		status, err := s.RelationshipStatus(pair[0], pair[1])
		require.NoError(t, err)
		require.Equal(t, RelationshipConnected, status)
	}
}

func TestRespondToConnectionByNonReceiver(t *testing.T) {
	s, conns := newConnectionService(1, 2, 3)

	conn, err := s.RequestConnection(1, 2)
	require.NoError(t, err)

	for _, actor := range []uint{1, 3} {
		_, err = s.RespondToConnection(conn.ID, actor, ActionAccept)
		require.ErrorIs(t, err, ErrPermissionDenied)
	}

	stored, err := conns.FindByID(conn.ID)
	require.NoError(t, err)
	require.Equal(t, models.ConnectionStatusPending, stored.Status)
}

func TestRespondToConnectionDecline(t *testing.T) {
	s, conns := newConnectionService(1, 2)

	conn, err := s.RequestConnection(1, 2)
	require.NoError(t, err)

	declined, err := s.RespondToConnection(conn.ID, 2, ActionDecline)
	require.NoError(t, err)
	require.Nil(t, declined, "decline deletes the request")

	_, err = conns.FindByID(conn.ID)
	require.Error(t, err)

	status, err := s.RelationshipStatus(1, 2)
	require.NoError(t, err)
	require.Equal(t, RelationshipNone, status)

	// Declined pairs can re-request, in either direction.
	_, err = s.RequestConnection(2, 1)
	require.NoError(t, err)
}

func TestRespondToConnectionInvalidAction(t *testing.T) {
	s, _ := newConnectionService(1, 2)

	conn, err := s.RequestConnection(1, 2)
	require.NoError(t, err)

	var validationErr *ValidationError
	_, err = s.RespondToConnection(conn.ID, 2, "block")
	require.ErrorAs(t, err, &validationErr)
}

func TestRespondToConnectionUnknownID(t *testing.T) {
	s, _ := newConnectionService(1, 2)

	_, err := s.RespondToConnection(42, 2, ActionAccept)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCancelPendingRequest(t *testing.T) {
	s, _ := newConnectionService(1, 2)

	conn, err := s.RequestConnection(1, 2)
	require.NoError(t, err)

	require.NoError(t, s.CancelOrRemove(conn.ID, 1))

	status, err := s.RelationshipStatus(1, 2)
	require.NoError(t, err)
	require.Equal(t, RelationshipNone, status)
}

func TestReceiverCannotCancelPendingRequest(t *testing.T) {
	s, _ := newConnectionService(1, 2)

	conn, err := s.RequestConnection(1, 2)
	require.NoError(t, err)

	err = s.CancelOrRemove(conn.ID, 2)
	require.ErrorIs(t, err, ErrForbiddenAction, "receiver must decline, not cancel")
}

func TestEitherPartyRemovesAcceptedConnection(t *testing.T) {
	for _, remover := range []uint{1, 2} {
		s, _ := newConnectionService(1, 2)

		conn, err := s.RequestConnection(1, 2)
		require.NoError(t, err)
		_, err = s.RespondToConnection(conn.ID, 2, ActionAccept)
		require.NoError(t, err)

		require.NoError(t, s.CancelOrRemove(conn.ID, remover))

		status, err := s.RelationshipStatus(1, 2)
		require.NoError(t, err)
		require.Equal(t, RelationshipNone, status)
	}
}

func TestCancelOrRemoveByUninvolvedUser(t *testing.T) {
	s, _ := newConnectionService(1, 2, 3)

	conn, err := s.RequestConnection(1, 2)
	require.NoError(t, err)

	require.ErrorIs(t, s.CancelOrRemove(conn.ID, 3), ErrPermissionDenied)
	require.ErrorIs(t, s.CancelOrRemove(99, 1), ErrNotFound)
}

func TestRelationshipStatus(t *testing.T) {
	s, _ := newConnectionService(1, 2)

	status, err := s.RelationshipStatus(1, 1)
	require.NoError(t, err)
	require.Equal(t, RelationshipSelf, status)

	for _, pair := range [][2]uint{{1, 2}, {2, 1}} {
		status, err = s.RelationshipStatus(pair[0], pair[1])
		require.NoError(t, err)
		require.Equal(t, RelationshipNone, status)
	}

	_, err = s.RequestConnection(1, 2)
	require.NoError(t, err)

	status, err = s.RelationshipStatus(1, 2)
	require.NoError(t, err)
	require.Equal(t, RelationshipPendingSent, status)

	status, err = s.RelationshipStatus(2, 1)
	require.NoError(t, err)
	require.Equal(t, RelationshipPendingReceived, status)
}

func TestListConnectionsLifecycle(t *testing.T) {
	s, _ := newConnectionService(1, 2)

	conn, err := s.RequestConnection(1, 2)
	require.NoError(t, err)

	receiverLists, err := s.ListConnections(2)
	require.NoError(t, err)
	require.Len(t, receiverLists.Incoming, 1)
	require.Equal(t, conn.ID, receiverLists.Incoming[0].ID)
	require.Empty(t, receiverLists.Outgoing)
	require.Empty(t, receiverLists.Current)

	requesterLists, err := s.ListConnections(1)
	require.NoError(t, err)
	require.Len(t, requesterLists.Outgoing, 1)
	require.Empty(t, requesterLists.Incoming)
	require.Empty(t, requesterLists.Current)

	_, err = s.RespondToConnection(conn.ID, 2, ActionAccept)
	require.NoError(t, err)

	for _, userID := range []uint{1, 2} {
		lists, err := s.ListConnections(userID)
		require.NoError(t, err)
		require.Empty(t, lists.Incoming)
		require.Empty(t, lists.Outgoing)
		require.Len(t, lists.Current, 1)
		require.NotNil(t, lists.Current[0].AcceptedAt)
	}
}
