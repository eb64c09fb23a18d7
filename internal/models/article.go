package models

import (
	"time"
)

// TimestampLayout is the wire format for creation timestamps: seconds
// precision, space-separated date and time, no zone.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders a timestamp in the wire format
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Article is the central content record
type Article struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"size:200;not null" json:"title"`
	Image    string `gorm:"size:500" json:"image"`
	Text     string `gorm:"type:text" json:"text"`
	AuthorID *uint  `gorm:"index" json:"author_id"`
	Author   *User  `json:"-"`
	// CreatedAt is re-stamped on every save, same quirk as Comment.
	CreatedAt time.Time `gorm:"autoUpdateTime" json:"created_at"`

	// Relations
	Categories []Category `gorm:"many2many:article_categories" json:"-"`
	Comments   []Comment  `gorm:"many2many:article_comments" json:"-"`
}

// TableName specifies the table name for Article model
func (Article) TableName() string {
	return "articles"
}

// ArticleResponse is the fully expanded wire representation of an
// article: author, categories and comments embedded as objects.
type ArticleResponse struct {
	ID        uint                `json:"id"`
	Title     string              `json:"title"`
	Image     string              `json:"image"`
	Text      string              `json:"text"`
	CreatedAt string              `json:"created_at"`
	Author    *UserProfile        `json:"author"`
	Category  []*CategoryResponse `json:"category"`
	Comments  []*CommentResponse  `json:"comments"`
}

// Response builds the wire representation of the article
func (a *Article) Response() *ArticleResponse {
	resp := &ArticleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Image:     a.Image,
		Text:      a.Text,
		CreatedAt: FormatTimestamp(a.CreatedAt),
		Category:  make([]*CategoryResponse, len(a.Categories)),
		Comments:  make([]*CommentResponse, len(a.Comments)),
	}
	if a.Author != nil {
		resp.Author = a.Author.Profile()
	}
	for i := range a.Categories {
		resp.Category[i] = a.Categories[i].Response()
	}
	for i := range a.Comments {
		resp.Comments[i] = a.Comments[i].Response()
	}
	return resp
}
