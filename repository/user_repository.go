package repository

import (
	"errors"

	"github.com/mentor-link/api-go/models"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByGoogleIDOrEmail(googleID, email string) (*models.User, error)
	// CreateWithProfile persists the user and their profile in a single
	// transaction. Profiles are created here, explicitly, at
	// user-creation time; there is no implicit hook.
	CreateWithProfile(user *models.User, profile *models.Profile) error
	Save(user *models.User) error
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByGoogleIDOrEmail(googleID, email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("google_id = ? OR email = ?", googleID, email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUserRepository) CreateWithProfile(user *models.User, profile *models.Profile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return translate(err)
		}
		profile.UserID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			return translate(err)
		}
		return nil
	})
}

func (r *gormUserRepository) Save(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return translate(err)
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
