package repository

import (
	"github.com/mentor-link/api-go/models"
	"gorm.io/gorm"
)

type ConnectionRepository interface {
	Create(conn *models.Connection) error
	FindByID(id uint) (*models.Connection, error)
	// FindByPair returns the connection between the unordered pair
	// {a, b}, whichever direction it was sent in.
	FindByPair(a, b uint) (*models.Connection, error)
	Save(conn *models.Connection) error
	Delete(conn *models.Connection) error
	ListIncoming(userID uint) ([]models.Connection, error)
	ListOutgoing(userID uint) ([]models.Connection, error)
	ListAccepted(userID uint) ([]models.Connection, error)
}

type gormConnectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &gormConnectionRepository{db: db}
}

func (r *gormConnectionRepository) Create(conn *models.Connection) error {
	if err := r.db.Create(conn).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *gormConnectionRepository) FindByID(id uint) (*models.Connection, error) {
	var conn models.Connection
	err := r.db.
		Preload("Requester").Preload("Requester.Profile").
		Preload("Receiver").Preload("Receiver.Profile").
		First(&conn, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &conn, nil
}

func (r *gormConnectionRepository) FindByPair(a, b uint) (*models.Connection, error) {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	var conn models.Connection
	err := r.db.Where("user_lo_id = ? AND user_hi_id = ?", lo, hi).First(&conn).Error
	if err != nil {
		return nil, translate(err)
	}
	return &conn, nil
}

func (r *gormConnectionRepository) Save(conn *models.Connection) error {
	if err := r.db.Save(conn).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *gormConnectionRepository) Delete(conn *models.Connection) error {
	if err := r.db.Delete(conn).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *gormConnectionRepository) ListIncoming(userID uint) ([]models.Connection, error) {
	return r.list(r.db.
		Where("receiver_id = ? AND status = ?", userID, models.ConnectionStatusPending).
		Order("created_at DESC"))
}

func (r *gormConnectionRepository) ListOutgoing(userID uint) ([]models.Connection, error) {
	return r.list(r.db.
		Where("requester_id = ? AND status = ?", userID, models.ConnectionStatusPending).
		Order("created_at DESC"))
}

func (r *gormConnectionRepository) ListAccepted(userID uint) ([]models.Connection, error) {
	return r.list(r.db.
		Where("(requester_id = ? OR receiver_id = ?) AND status = ?",
			userID, userID, models.ConnectionStatusAccepted).
		Order("COALESCE(accepted_at, created_at) DESC"))
}

func (r *gormConnectionRepository) list(q *gorm.DB) ([]models.Connection, error) {
	var conns []models.Connection
	err := q.
		Preload("Requester").Preload("Requester.Profile").
		Preload("Receiver").Preload("Receiver.Profile").
		Find(&conns).Error
	if err != nil {
		return nil, translate(err)
	}
	return conns, nil
}
