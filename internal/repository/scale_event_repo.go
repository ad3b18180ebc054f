package repository

import (
	"github.com/media2net-app/toptiermen-sub008/internal/models"
	"gorm.io/gorm"
)

type ScaleEventRepository interface {
	Create(event *models.ScaleEvent) (*models.ScaleEvent, error)
	FindByUserID(userID uint) ([]*models.ScaleEvent, error)
	CountTotal() (int64, error)
}

type scaleEventRepo struct {
	db *gorm.DB
}

func NewScaleEventRepo(db *gorm.DB) ScaleEventRepository {
	return &scaleEventRepo{db: db}
}

func (r *scaleEventRepo) Create(event *models.ScaleEvent) (*models.ScaleEvent, error) {
	err := r.db.Create(event).Error
	return event, err
}

func (r *scaleEventRepo) FindByUserID(userID uint) ([]*models.ScaleEvent, error) {
	var events []*models.ScaleEvent
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&events).Error
	return events, err
}

func (r *scaleEventRepo) CountTotal() (int64, error) {
	var count int64
	err := r.db.Model(&models.ScaleEvent{}).Count(&count).Error
	return count, err
}
