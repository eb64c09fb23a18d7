package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cosmopedia/internal/middleware"
	"github.com/cosmopedia/internal/repository"
	"github.com/cosmopedia/internal/service"
	"github.com/cosmopedia/pkg/response"
	"github.com/gin-gonic/gin"
)

// ArticleHandler handles article API requests
type ArticleHandler struct {
	articleService *service.ArticleService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleService *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// List handles the public article listing with composable refinements:
// order_by, then category, then search (union semantics, no duplicates)
// GET /articles/
func (h *ArticleHandler) List(c *gin.Context) {
	opts := repository.ArticleListOptions{
		OrderBy: c.Query("order_by"),
		Search:  c.Query("search"),
	}

	if v := c.Query("category"); v != "" {
		categoryID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid category id")
			return
		}
		id := uint(categoryID)
		opts.CategoryID = &id
	}

	articles, err := h.articleService.List(opts)
	if err != nil {
		h.renderListError(c, err)
		return
	}

	response.Success(c, articles)
}

// ListOwn handles the owner-scoped listing
// GET /self_articles/
func (h *ArticleHandler) ListOwn(c *gin.Context) {
	user := middleware.CurrentUser(c)

	articles, err := h.articleService.ListByAuthor(user.ID, c.Query("order_by"))
	if err != nil {
		h.renderListError(c, err)
		return
	}

	response.Success(c, articles)
}

// Get handles fetching a single article; no authentication required
// GET /articles/:id/
func (h *ArticleHandler) Get(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	article, err := h.articleService.Get(uint(articleID))
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			response.NotFound(c, "article not found")
			return
		}
		response.InternalError(c, "failed to fetch article")
		return
	}

	response.Success(c, article)
}

// Create handles article creation; the author is forced to the caller
// POST /articles/
func (h *ArticleHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req service.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	article, err := h.articleService.Create(user, &req)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			response.NotFound(c, "category not found")
			return
		}
		response.InternalError(c, "failed to create article")
		return
	}

	response.Success(c, article)
}

// Update handles partial article update of title/category; allowed for
// the owner and for staff
// PATCH /articles/:id/
func (h *ArticleHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	articleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req service.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	article, err := h.articleService.Update(user, uint(articleID), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrArticleNotFound):
			response.NotFound(c, "article not found")
		case errors.Is(err, repository.ErrCategoryNotFound):
			response.NotFound(c, "category not found")
		case errors.Is(err, service.ErrNotArticleOwner):
			response.Forbidden(c, "You do not have permission to edit this article!")
		default:
			response.InternalError(c, "failed to update article")
		}
		return
	}

	response.Success(c, article)
}

// Delete handles article deletion; owner only, staff without
// ownership is rejected
// DELETE /articles/:id/
func (h *ArticleHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	articleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	if err := h.articleService.Delete(user, uint(articleID)); err != nil {
		switch {
		case errors.Is(err, repository.ErrArticleNotFound):
			response.NotFound(c, "article not found")
		case errors.Is(err, service.ErrNotArticleOwner):
			response.Forbidden(c, "Only the author can delete this article!")
		default:
			response.InternalError(c, "failed to delete article")
		}
		return
	}

	response.Message(c, http.StatusOK, "Article deleted!")
}

// AddComment creates a comment authored by the caller and attaches it
// to the article
// POST /articles/:id/comments/
func (h *ArticleHandler) AddComment(c *gin.Context) {
	user := middleware.CurrentUser(c)

	articleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	comment, err := h.articleService.AddComment(user, uint(articleID), &req)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			response.NotFound(c, "article not found")
			return
		}
		response.InternalError(c, "failed to create comment")
		return
	}

	response.Success(c, comment)
}

func (h *ArticleHandler) renderListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrUnknownOrderField):
		response.BadRequest(c, "unknown order_by field")
	case errors.Is(err, repository.ErrCategoryNotFound):
		response.NotFound(c, "category not found")
	default:
		response.InternalError(c, "failed to list articles")
	}
}

// RegisterRoutes registers article routes
func (h *ArticleHandler) RegisterRoutes(r *gin.Engine, authRequired gin.HandlerFunc) {
	r.GET("/articles/", h.List)
	r.POST("/articles/", authRequired, h.Create)
	r.GET("/articles/:id/", h.Get)
	r.PATCH("/articles/:id/", authRequired, h.Update)
	r.DELETE("/articles/:id/", authRequired, h.Delete)
	r.POST("/articles/:id/comments/", authRequired, h.AddComment)
	r.GET("/self_articles/", authRequired, h.ListOwn)
}
