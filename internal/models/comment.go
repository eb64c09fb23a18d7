package models

import (
	"time"
)

// Comment is a free-text note authored by a user and attached to
// articles through the articles' comment set.
type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	AuthorID *uint  `gorm:"index" json:"author_id"`
	Author   *User  `json:"-"`
	Text     string `gorm:"type:text;not null" json:"text"`
	// CreatedAt is re-stamped on every save, not just creation. The
	// original schema behaves this way and consumers rely on it.
	CreatedAt time.Time `gorm:"autoUpdateTime" json:"created_at"`
}

// TableName specifies the table name for Comment model
func (Comment) TableName() string {
	return "comments"
}

// CommentResponse is the wire representation of a comment
type CommentResponse struct {
	ID        uint         `json:"id"`
	Text      string       `json:"text"`
	CreatedAt string       `json:"created_at"`
	Author    *UserProfile `json:"author"`
}

// Response builds the wire representation of the comment
func (c *Comment) Response() *CommentResponse {
	resp := &CommentResponse{
		ID:        c.ID,
		Text:      c.Text,
		CreatedAt: FormatTimestamp(c.CreatedAt),
	}
	if c.Author != nil {
		resp.Author = c.Author.Profile()
	}
	return resp
}
