package handler

import (
	"errors"
	"strconv"

	"github.com/cosmopedia/internal/repository"
	"github.com/cosmopedia/internal/service"
	"github.com/cosmopedia/pkg/response"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles category API requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// List handles listing all categories
// GET /categories/
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		response.InternalError(c, "failed to list categories")
		return
	}
	response.Success(c, categories)
}

// Get handles fetching a single category
// GET /categories/:id/
func (h *CategoryHandler) Get(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	category, err := h.categoryService.Get(uint(categoryID))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			response.NotFound(c, "category not found")
			return
		}
		response.InternalError(c, "failed to fetch category")
		return
	}

	response.Success(c, category)
}

// Create handles category creation
// POST /categories/
func (h *CategoryHandler) Create(c *gin.Context) {
	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		response.InternalError(c, "failed to create category")
		return
	}

	response.Success(c, category)
}

// RegisterRoutes registers category routes
func (h *CategoryHandler) RegisterRoutes(r *gin.Engine, authRequired gin.HandlerFunc) {
	r.GET("/categories/", h.List)
	r.POST("/categories/", authRequired, h.Create)
	r.GET("/categories/:id/", h.Get)
}
