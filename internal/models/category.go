package models

// Category is a reusable tag attachable to many articles.
// Names are intentionally not unique.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:200;not null" json:"name"`
}

// TableName specifies the table name for Category model
func (Category) TableName() string {
	return "categories"
}

// CategoryResponse is the wire representation of a category
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Response builds the wire representation of the category
func (c *Category) Response() *CategoryResponse {
	return &CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}
