package service

import (
	"github.com/media2net-app/toptiermen-sub008/internal/models"
	"github.com/media2net-app/toptiermen-sub008/internal/repository"
)

type CategoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CreateCategory - create a category
func (s *CategoryService) CreateCategory(dto CreateCategoryDTO) (*models.Category, error) {
	category := &models.Category{Name: dto.Name, Description: dto.Description, Type: dto.Type}
	return s.repo.Create(category)
}

// ListCategories - all categories
func (s *CategoryService) ListCategories() ([]*models.Category, error) {
	return s.repo.FindAll()
}

// GetCategoryByID - one category
func (s *CategoryService) GetCategoryByID(id uint) (*models.Category, error) {
	return s.repo.FindByID(id)
}

// DeleteCategory - remove a category
func (s *CategoryService) DeleteCategory(id uint) error {
	return s.repo.Delete(id)
}

// UpdateCategory - partial update of a category
func (s *CategoryService) UpdateCategory(id uint, dto UpdateCategoryDTO) error {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if dto.Name != "" {
		category.Name = dto.Name
	}
	if dto.Description != "" {
		category.Description = dto.Description
	}
	if dto.Type != "" {
		category.Type = dto.Type
	}

	return s.repo.Update(category)
}
