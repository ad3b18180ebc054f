package repository

import (
	"github.com/media2net-app/toptiermen-sub008/internal/models"
	"gorm.io/gorm"
)

// IngredientRepository - interface for the nutrient catalog
type IngredientRepository interface {
	Create(ingredient *models.Ingredient) (*models.Ingredient, error)
	FindAll() ([]*models.Ingredient, error)
	FindActive() ([]*models.Ingredient, error)
	FindByID(id uint) (*models.Ingredient, error)
	FindByName(name string) (*models.Ingredient, error)
	Update(ingredient *models.Ingredient) error
	Delete(id uint) error
	Count() (int64, error)
}

type ingredientRepo struct {
	db *gorm.DB
}

func NewIngredientRepo(db *gorm.DB) IngredientRepository {
	return &ingredientRepo{db: db}
}

func (r *ingredientRepo) Create(ingredient *models.Ingredient) (*models.Ingredient, error) {
	err := r.db.Create(ingredient).Error
	return ingredient, err
}

func (r *ingredientRepo) FindAll() ([]*models.Ingredient, error) {
	var ingredients []*models.Ingredient
	err := r.db.Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepo) FindActive() ([]*models.Ingredient, error) {
	var ingredients []*models.Ingredient
	err := r.db.Where("active = ?", true).Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepo) FindByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.First(&ingredient, id).Error
	return &ingredient, err
}

func (r *ingredientRepo) FindByName(name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.Where("name = ?", name).First(&ingredient).Error
	return &ingredient, err
}

func (r *ingredientRepo) Update(ingredient *models.Ingredient) error {
	return r.db.Save(ingredient).Error
}

func (r *ingredientRepo) Delete(id uint) error {
	return r.db.Delete(&models.Ingredient{}, id).Error
}

func (r *ingredientRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Ingredient{}).Count(&count).Error
	return count, err
}
