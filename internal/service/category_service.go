package service

import (
	"github.com/cosmopedia/internal/models"
	"github.com/cosmopedia/internal/repository"
)

// CategoryService handles category operations
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategoryRequest represents the create category request
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// List retrieves all categories
func (s *CategoryService) List() ([]*models.CategoryResponse, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}

	responses := make([]*models.CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = categories[i].Response()
	}
	return responses, nil
}

// Get retrieves a single category
func (s *CategoryService) Get(id uint) (*models.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return category.Response(), nil
}

// Create creates a new category
func (s *CategoryService) Create(req *CreateCategoryRequest) (*models.CategoryResponse, error) {
	category := &models.Category{Name: req.Name}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category.Response(), nil
}
