package repository

import (
	"time"

	"github.com/mentor-link/api-go/models"
	"gorm.io/gorm"
)

type AuthTokenRepository interface {
	Create(token *models.AuthToken) error
	FindByToken(token string) (*models.AuthToken, error)
	// DeleteByToken revokes a token. Returns ErrNotFound when no such
	// token exists.
	DeleteByToken(token string) error
	DeleteExpired(now time.Time) error
}

type gormAuthTokenRepository struct {
	db *gorm.DB
}

func NewAuthTokenRepository(db *gorm.DB) AuthTokenRepository {
	return &gormAuthTokenRepository{db: db}
}

func (r *gormAuthTokenRepository) Create(token *models.AuthToken) error {
	if err := r.db.Create(token).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *gormAuthTokenRepository) FindByToken(token string) (*models.AuthToken, error) {
	var row models.AuthToken
	if err := r.db.Where("token = ?", token).First(&row).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func (r *gormAuthTokenRepository) DeleteByToken(token string) error {
	result := r.db.Where("token = ?", token).Delete(&models.AuthToken{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormAuthTokenRepository) DeleteExpired(now time.Time) error {
	if err := r.db.Where("expires_at < ?", now).Delete(&models.AuthToken{}).Error; err != nil {
		return translate(err)
	}
	return nil
}
