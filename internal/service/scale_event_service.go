package service

import (
	"github.com/media2net-app/toptiermen-sub008/internal/models"
	"github.com/media2net-app/toptiermen-sub008/internal/repository"
)

type ScaleEventService struct {
	repo repository.ScaleEventRepository
}

func NewScaleEventService(repo repository.ScaleEventRepository) *ScaleEventService {
	return &ScaleEventService{repo: repo}
}

// GetUserEvents - a member's scaling history, newest first
func (s *ScaleEventService) GetUserEvents(userID uint) ([]*models.ScaleEvent, error) {
	return s.repo.FindByUserID(userID)
}

// GetTotalCount - total number of scaling runs
func (s *ScaleEventService) GetTotalCount() (int64, error) {
	return s.repo.CountTotal()
}
