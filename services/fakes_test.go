package services

import (
	"sort"
	"time"

	"github.com/mentor-link/api-go/models"
	"github.com/mentor-link/api-go/repository"
)

// In-memory repository fakes. The connection fake enforces the same
// pair-key uniqueness the database index does, so the race backstop
// path is exercisable.

type fakeUserRepo struct {
	users map[uint]*models.User
}

func newFakeUserRepo(ids ...uint) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uint]*models.User{}}
	for _, id := range ids {
		r.users[id] = &models.User{ID: id, IsActive: true}
	}
	return r
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindByGoogleIDOrEmail(googleID, email string) (*models.User, error) {
	for _, user := range r.users {
		if (user.GoogleID != nil && *user.GoogleID == googleID) || user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) CreateWithProfile(user *models.User, profile *models.Profile) error {
	user.ID = uint(len(r.users) + 1)
	profile.UserID = user.ID
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Save(user *models.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

type fakeConnectionRepo struct {
	nextID uint
	conns  map[uint]*models.Connection
	// hidePairLookup makes FindByPair miss, forcing RequestConnection
	// past its early existence check and onto the unique-index path.
	hidePairLookup bool
}

func newFakeConnectionRepo() *fakeConnectionRepo {
	return &fakeConnectionRepo{conns: map[uint]*models.Connection{}}
}

func (r *fakeConnectionRepo) Create(conn *models.Connection) error {
	for _, existing := range r.conns {
		if existing.UserLoID == conn.UserLoID && existing.UserHiID == conn.UserHiID {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	conn.ID = r.nextID
	conn.CreatedAt = time.Now()
	copied := *conn
	r.conns[conn.ID] = &copied
	return nil
}

func (r *fakeConnectionRepo) FindByID(id uint) (*models.Connection, error) {
	conn, ok := r.conns[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *conn
	return &copied, nil
}

func (r *fakeConnectionRepo) FindByPair(a, b uint) (*models.Connection, error) {
	if r.hidePairLookup {
		return nil, repository.ErrNotFound
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, conn := range r.conns {
		if conn.UserLoID == lo && conn.UserHiID == hi {
			copied := *conn
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeConnectionRepo) Save(conn *models.Connection) error {
	if _, ok := r.conns[conn.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *conn
	r.conns[conn.ID] = &copied
	return nil
}

func (r *fakeConnectionRepo) Delete(conn *models.Connection) error {
	delete(r.conns, conn.ID)
	return nil
}

func (r *fakeConnectionRepo) ListIncoming(userID uint) ([]models.Connection, error) {
	return r.collect(func(c *models.Connection) bool {
		return c.ReceiverID == userID && c.Status == models.ConnectionStatusPending
	}), nil
}

func (r *fakeConnectionRepo) ListOutgoing(userID uint) ([]models.Connection, error) {
	return r.collect(func(c *models.Connection) bool {
		return c.RequesterID == userID && c.Status == models.ConnectionStatusPending
	}), nil
}

func (r *fakeConnectionRepo) ListAccepted(userID uint) ([]models.Connection, error) {
	conns := r.collect(func(c *models.Connection) bool {
		return c.Involves(userID) && c.Status == models.ConnectionStatusAccepted
	})
	sort.Slice(conns, func(i, j int) bool {
		return effectiveTime(&conns[i]).After(effectiveTime(&conns[j]))
	})
	return conns, nil
}

func effectiveTime(c *models.Connection) time.Time {
	if c.AcceptedAt != nil {
		return *c.AcceptedAt
	}
	return c.CreatedAt
}

func (r *fakeConnectionRepo) collect(match func(*models.Connection) bool) []models.Connection {
	var out []models.Connection
	for _, conn := range r.conns {
		if match(conn) {
			out = append(out, *conn)
		}
	}
	return out
}

type fakeProfileRepo struct {
	profiles map[uint]*models.Profile // keyed by user ID
	users    *fakeUserRepo
}

func newFakeProfileRepo(users *fakeUserRepo) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: map[uint]*models.Profile{}, users: users}
	for id := range users.users {
		r.profiles[id] = &models.Profile{ID: id, UserID: id}
	}
	return r
}

func (r *fakeProfileRepo) FindByUserID(userID uint) (*models.Profile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeProfileRepo) FindActiveByUserID(userID uint) (*models.Profile, error) {
	user, ok := r.users.users[userID]
	if !ok || !user.IsActive {
		return nil, repository.ErrNotFound
	}
	return r.FindByUserID(userID)
}

func (r *fakeProfileRepo) Save(profile *models.Profile) error {
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *fakeProfileRepo) Search(opts repository.SearchOptions) ([]models.Profile, int64, error) {
	var out []models.Profile
	for id, profile := range r.profiles {
		user := r.users.users[id]
		if user == nil || !user.IsActive || profile.Role == "" {
			continue
		}
		if opts.ExcludeUserID != 0 && id == opts.ExcludeUserID {
			continue
		}
		if opts.Role != "" && profile.Role != opts.Role {
			continue
		}
		out = append(out, *profile)
	}
	return out, int64(len(out)), nil
}
