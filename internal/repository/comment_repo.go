package repository

import (
	"errors"

	"github.com/cosmopedia/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
)

// CommentRepository handles comment data access
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment with its author preloaded
func (r *CommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	result := r.db.Preload("Author").First(&comment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, result.Error
	}
	return &comment, nil
}

// ListByAuthor retrieves all comments by an author
func (r *CommentRepository) ListByAuthor(authorID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("author_id = ?", authorID).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
