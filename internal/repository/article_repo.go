package repository

import (
	"errors"
	"strings"

	"github.com/cosmopedia/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrArticleNotFound   = errors.New("article not found")
	ErrUnknownOrderField = errors.New("unknown order field")
)

// articleOrderColumns is the set of columns order_by may name
var articleOrderColumns = map[string]bool{
	"id":         true,
	"title":      true,
	"image":      true,
	"text":       true,
	"author_id":  true,
	"created_at": true,
}

// ArticleListOptions are the composable listing refinements. They apply
// in order: ordering, category restriction, search restriction.
type ArticleListOptions struct {
	AuthorID   *uint
	OrderBy    string
	CategoryID *uint
	Search     string
}

// ArticleRepository handles article data access
type ArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Create creates a new article
func (r *ArticleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// GetByID retrieves an article with its author, categories and
// comments (including each comment's author) preloaded
func (r *ArticleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	result := r.db.
		Preload("Author").
		Preload("Categories").
		Preload("Comments").
		Preload("Comments.Author").
		First(&article, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, result.Error
	}
	return &article, nil
}

// List retrieves articles applying the given refinements. The search
// refinement is a set union of two independent substring filters (title
// and text) over the already-restricted query; an article matching both
// appears once.
func (r *ArticleRepository) List(opts ArticleListOptions) ([]models.Article, error) {
	order, err := orderClause(opts.OrderBy)
	if err != nil {
		return nil, err
	}

	// Fresh query per execution; the search union runs the base twice
	base := func() *gorm.DB {
		q := r.db.Model(&models.Article{}).
			Preload("Author").
			Preload("Categories").
			Preload("Comments").
			Preload("Comments.Author")
		if opts.AuthorID != nil {
			q = q.Where("articles.author_id = ?", *opts.AuthorID)
		}
		if order != "" {
			q = q.Order(order)
		}
		if opts.CategoryID != nil {
			q = q.Joins("JOIN article_categories ac ON ac.article_id = articles.id").
				Where("ac.category_id = ?", *opts.CategoryID)
		}
		return q
	}

	if opts.Search == "" {
		var articles []models.Article
		if err := base().Find(&articles).Error; err != nil {
			return nil, err
		}
		return articles, nil
	}

	pattern := "%" + opts.Search + "%"

	var byTitle []models.Article
	if err := base().Where("articles.title LIKE ?", pattern).Find(&byTitle).Error; err != nil {
		return nil, err
	}

	var byText []models.Article
	if err := base().Where("articles.text LIKE ?", pattern).Find(&byText).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(byTitle)+len(byText))
	union := make([]models.Article, 0, len(byTitle)+len(byText))
	for _, a := range byTitle {
		if !seen[a.ID] {
			seen[a.ID] = true
			union = append(union, a)
		}
	}
	for _, a := range byText {
		if !seen[a.ID] {
			seen[a.ID] = true
			union = append(union, a)
		}
	}
	return union, nil
}

// Update persists the article's own columns
func (r *ArticleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// ReplaceCategories replaces the article's category set
func (r *ArticleRepository) ReplaceCategories(article *models.Article, categories []models.Category) error {
	return r.db.Model(article).Association("Categories").Replace(categories)
}

// AddComment attaches a comment to the article
func (r *ArticleRepository) AddComment(article *models.Article, comment *models.Comment) error {
	return r.db.Model(article).Association("Comments").Append(comment)
}

// Delete removes an article and its category/comment links. The linked
// categories and comments themselves survive.
func (r *ArticleRepository) Delete(article *models.Article) error {
	return r.db.Select(clause.Associations).Delete(article).Error
}

// orderClause translates an order_by value into an ORDER BY clause. A
// minus prefix means descending. Unknown fields are a caller error.
func orderClause(orderBy string) (string, error) {
	if orderBy == "" {
		return "", nil
	}
	column, desc := orderBy, false
	if rest, ok := strings.CutPrefix(orderBy, "-"); ok {
		column, desc = rest, true
	}
	if !articleOrderColumns[column] {
		return "", ErrUnknownOrderField
	}
	if desc {
		return "articles." + column + " DESC", nil
	}
	return "articles." + column + " ASC", nil
}
