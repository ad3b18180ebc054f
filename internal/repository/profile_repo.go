package repository

import (
	"github.com/media2net-app/toptiermen-sub008/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository - interface for member nutrition profiles
type ProfileRepository interface {
	Create(profile *models.UserProfile) (*models.UserProfile, error)
	FindByUserID(userID uint) (*models.UserProfile, error)
	Update(profile *models.UserProfile) error
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Create(profile *models.UserProfile) (*models.UserProfile, error) {
	err := r.db.Create(profile).Error
	return profile, err
}

func (r *profileRepo) FindByUserID(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

func (r *profileRepo) Update(profile *models.UserProfile) error {
	return r.db.Save(profile).Error
}
