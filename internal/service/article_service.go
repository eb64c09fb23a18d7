package service

import (
	"errors"

	"github.com/cosmopedia/internal/models"
	"github.com/cosmopedia/internal/repository"
)

var (
	// ErrNotArticleOwner - caller may not modify the article
	ErrNotArticleOwner = errors.New("not the article owner")
)

// ArticleService handles article operations
type ArticleService struct {
	articleRepo  *repository.ArticleRepository
	categoryRepo *repository.CategoryRepository
	commentRepo  *repository.CommentRepository
}

// NewArticleService creates a new ArticleService
func NewArticleService(
	articleRepo *repository.ArticleRepository,
	categoryRepo *repository.CategoryRepository,
	commentRepo *repository.CommentRepository,
) *ArticleService {
	return &ArticleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		commentRepo:  commentRepo,
	}
}

// CreateArticleRequest represents the create article request. The
// author is never taken from the request; it is forced to the caller.
type CreateArticleRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Image    string `json:"image" binding:"max=500"`
	Text     string `json:"text"`
	Category []uint `json:"category"`
}

// UpdateArticleRequest represents the partial article update. Only
// title and category are mutable through this path.
type UpdateArticleRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=200"`
	Category *[]uint `json:"category"`
}

// CreateCommentRequest represents the create comment request
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// List retrieves articles with the given refinements applied
func (s *ArticleService) List(opts repository.ArticleListOptions) ([]*models.ArticleResponse, error) {
	if opts.CategoryID != nil {
		// Surface a nonexistent category as a lookup failure
		if _, err := s.categoryRepo.GetByID(*opts.CategoryID); err != nil {
			return nil, err
		}
	}

	articles, err := s.articleRepo.List(opts)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ArticleResponse, len(articles))
	for i := range articles {
		responses[i] = articles[i].Response()
	}
	return responses, nil
}

// ListByAuthor retrieves the caller's own articles
func (s *ArticleService) ListByAuthor(authorID uint, orderBy string) ([]*models.ArticleResponse, error) {
	return s.List(repository.ArticleListOptions{
		AuthorID: &authorID,
		OrderBy:  orderBy,
	})
}

// Get retrieves a single article
func (s *ArticleService) Get(id uint) (*models.ArticleResponse, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return article.Response(), nil
}

// Create creates an article authored by the caller, regardless of any
// author value the client may have sent
func (s *ArticleService) Create(caller *models.User, req *CreateArticleRequest) (*models.ArticleResponse, error) {
	categories, err := s.categoryRepo.GetByIDs(req.Category)
	if err != nil {
		return nil, err
	}

	authorID := caller.ID
	article := &models.Article{
		Title:      req.Title,
		Image:      req.Image,
		Text:       req.Text,
		AuthorID:   &authorID,
		Categories: categories,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.Get(article.ID)
}

// Update partially updates title and category. Allowed for the owning
// account and for staff.
func (s *ArticleService) Update(caller *models.User, id uint, req *UpdateArticleRequest) (*models.ArticleResponse, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !s.canEdit(caller, article) {
		return nil, ErrNotArticleOwner
	}

	if req.Category != nil {
		categories, err := s.categoryRepo.GetByIDs(*req.Category)
		if err != nil {
			return nil, err
		}
		if err := s.articleRepo.ReplaceCategories(article, categories); err != nil {
			return nil, err
		}
		// Keep the loaded set in sync so Save does not re-append old links
		article.Categories = categories
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	// Save also re-stamps created_at, matching the original behavior
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return s.Get(article.ID)
}

// Delete removes an article. Owner only: staff without ownership is
// rejected, unlike Update. The asymmetry is intentional.
func (s *ArticleService) Delete(caller *models.User, id uint) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return err
	}

	if article.AuthorID == nil || *article.AuthorID != caller.ID {
		return ErrNotArticleOwner
	}

	return s.articleRepo.Delete(article)
}

// AddComment creates a comment authored by the caller and attaches it
// to the article
func (s *ArticleService) AddComment(caller *models.User, articleID uint, req *CreateCommentRequest) (*models.CommentResponse, error) {
	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}

	authorID := caller.ID
	comment := &models.Comment{
		AuthorID: &authorID,
		Text:     req.Text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	if err := s.articleRepo.AddComment(article, comment); err != nil {
		return nil, err
	}

	comment.Author = caller
	return comment.Response(), nil
}

func (s *ArticleService) canEdit(caller *models.User, article *models.Article) bool {
	if caller.IsStaff {
		return true
	}
	return article.AuthorID != nil && *article.AuthorID == caller.ID
}
