package repository

import (
	"github.com/mentor-link/api-go/models"
	"gorm.io/gorm"
)

// SearchOptions are the discovery filters. Skills/interests terms match
// with OR semantics: a profile qualifies when any term appears as a
// case-insensitive substring of the stored tag string.
type SearchOptions struct {
	Role          string
	Skills        []string
	Interests     []string
	SearchText    string
	ExcludeUserID uint
	Offset        int
	Limit         int
}

type ProfileRepository interface {
	FindByUserID(userID uint) (*models.Profile, error)
	// FindActiveByUserID resolves a profile for public viewing: the
	// owning user must be active.
	FindActiveByUserID(userID uint) (*models.Profile, error)
	Save(profile *models.Profile) error
	Search(opts SearchOptions) ([]models.Profile, int64, error)
}

type gormProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &gormProfileRepository{db: db}
}

func (r *gormProfileRepository) FindByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (r *gormProfileRepository) FindActiveByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("User").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("profiles.user_id = ? AND users.is_active = ?", userID, true).
		First(&profile).Error
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (r *gormProfileRepository) Save(profile *models.Profile) error {
	if err := r.db.Save(profile).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *gormProfileRepository) Search(opts SearchOptions) ([]models.Profile, int64, error) {
	q := r.db.Model(&models.Profile{}).
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("users.is_active = ?", true).
		Where("profiles.role <> ''")

	if opts.ExcludeUserID != 0 {
		q = q.Where("profiles.user_id <> ?", opts.ExcludeUserID)
	}
	if opts.Role != "" {
		q = q.Where("profiles.role = ?", opts.Role)
	}
	if len(opts.Skills) > 0 {
		q = q.Where(anyTagMatches(r.db, "profiles.skills", opts.Skills))
	}
	if len(opts.Interests) > 0 {
		q = q.Where(anyTagMatches(r.db, "profiles.interests", opts.Interests))
	}
	if opts.SearchText != "" {
		pattern := "%" + opts.SearchText + "%"
		q = q.Where(
			"users.username ILIKE ? OR users.first_name ILIKE ? OR users.last_name ILIKE ? OR profiles.bio ILIKE ? OR profiles.headline ILIKE ?",
			pattern, pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var profiles []models.Profile
	err := q.Preload("User").
		Order("users.username ASC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return profiles, total, nil
}

// anyTagMatches builds the OR-of-substring condition for a tag column.
func anyTagMatches(db *gorm.DB, column string, terms []string) *gorm.DB {
	cond := db.Where(column+" ILIKE ?", "%"+terms[0]+"%")
	for _, term := range terms[1:] {
		cond = cond.Or(column+" ILIKE ?", "%"+term+"%")
	}
	return cond
}
