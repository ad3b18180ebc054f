package service

import (
	"fmt"

	"github.com/media2net-app/toptiermen-sub008/internal/mealplan"
	"github.com/media2net-app/toptiermen-sub008/internal/models"
	"github.com/media2net-app/toptiermen-sub008/internal/repository"
)

type CatalogService struct {
	repo repository.IngredientRepository
}

func NewCatalogService(repo repository.IngredientRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// ActiveCatalog builds the in-memory nutrient catalog from the active
// ingredient records. Built once per scaling request; an empty catalog is
// valid and simply resolves every ingredient as missing.
func (s *CatalogService) ActiveCatalog() (mealplan.Catalog, error) {
	ingredients, err := s.repo.FindActive()
	if err != nil {
		return nil, fmt.Errorf("load nutrient catalog: %w", err)
	}

	catalog := make(mealplan.Catalog, len(ingredients))
	for _, ing := range ingredients {
		catalog[ing.Name] = mealplan.Nutrient{
			Calories: ing.Calories,
			Protein:  ing.Protein,
			Carbs:    ing.Carbs,
			Fat:      ing.Fat,
			UnitType: ing.UnitType,
		}
	}
	return catalog, nil
}

// CreateIngredient - add a catalog entry
func (s *CatalogService) CreateIngredient(dto CreateIngredientDTO) (*models.Ingredient, error) {
	if dto.Name == "" {
		return nil, fmt.Errorf("ingredient name cannot be empty")
	}

	active := true
	if dto.Active != nil {
		active = *dto.Active
	}
	unitType := dto.UnitType
	if unitType == "" {
		unitType = "per_100g"
	}

	ingredient := &models.Ingredient{
		Name:     dto.Name,
		Calories: dto.Calories,
		Protein:  dto.Protein,
		Carbs:    dto.Carbs,
		Fat:      dto.Fat,
		UnitType: unitType,
		Active:   active,
	}
	return s.repo.Create(ingredient)
}

// ListIngredients - the whole catalog, including inactive entries
func (s *CatalogService) ListIngredients() ([]*models.Ingredient, error) {
	return s.repo.FindAll()
}

// GetIngredientByID - one catalog entry
func (s *CatalogService) GetIngredientByID(id uint) (*models.Ingredient, error) {
	return s.repo.FindByID(id)
}

// UpdateIngredient - partial update of a catalog entry
func (s *CatalogService) UpdateIngredient(id uint, dto UpdateIngredientDTO) error {
	ingredient, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if dto.Name != "" {
		ingredient.Name = dto.Name
	}
	if dto.Calories != nil {
		ingredient.Calories = *dto.Calories
	}
	if dto.Protein != nil {
		ingredient.Protein = *dto.Protein
	}
	if dto.Carbs != nil {
		ingredient.Carbs = *dto.Carbs
	}
	if dto.Fat != nil {
		ingredient.Fat = *dto.Fat
	}
	if dto.UnitType != "" {
		ingredient.UnitType = dto.UnitType
	}
	if dto.Active != nil {
		ingredient.Active = *dto.Active
	}

	return s.repo.Update(ingredient)
}

// DeleteIngredient - remove a catalog entry
func (s *CatalogService) DeleteIngredient(id uint) error {
	return s.repo.Delete(id)
}
