package repository

import (
	"github.com/media2net-app/toptiermen-sub008/internal/models"
	"gorm.io/gorm"
)

// PlanRepository - interface for weekly meal plan templates
type PlanRepository interface {
	Create(plan *models.MealPlan) (*models.MealPlan, error)
	FindAll() ([]*models.MealPlan, error)
	FindByID(id uint) (*models.MealPlan, error)
	FindActive() ([]*models.MealPlan, error)
	Update(plan *models.MealPlan) error
	Delete(id uint) error
	Activate(id uint) error
}

type planRepo struct {
	db *gorm.DB
}

func NewPlanRepo(db *gorm.DB) PlanRepository {
	return &planRepo{db: db}
}

func (r *planRepo) Create(plan *models.MealPlan) (*models.MealPlan, error) {
	result := r.db.Create(plan)
	return plan, result.Error
}

func (r *planRepo) FindAll() ([]*models.MealPlan, error) {
	var plans []*models.MealPlan
	result := r.db.Preload("Category").Find(&plans)
	return plans, result.Error
}

func (r *planRepo) FindByID(id uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	result := r.db.Preload("Category").First(&plan, id)
	return &plan, result.Error
}

func (r *planRepo) FindActive() ([]*models.MealPlan, error) {
	var plans []*models.MealPlan
	result := r.db.Where("active = ?", true).Find(&plans)
	return plans, result.Error
}

func (r *planRepo) Update(plan *models.MealPlan) error {
	result := r.db.Save(plan)
	return result.Error
}

func (r *planRepo) Delete(id uint) error {
	result := r.db.Delete(&models.MealPlan{}, id)
	return result.Error
}

func (r *planRepo) Activate(id uint) error {
	result := r.db.Model(&models.MealPlan{}).Where("id = ?", id).Update("active", true)
	return result.Error
}
