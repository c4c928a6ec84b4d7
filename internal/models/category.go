package models

import "time"

// Category represents a product category. Categories form a tree through
// ParentCategoryID; a soft-deleted category keeps its row but is excluded
// from every read path.
type Category struct {
	ID               int        `db:"category_id" json:"id"`
	Name             string     `db:"name" json:"name"`
	Description      *string    `db:"description" json:"description,omitempty"`
	ParentCategoryID *int       `db:"parent_category_id" json:"parentCategoryId,omitempty"`
	ParentName       *string    `db:"parent_name" json:"parentName,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt        *time.Time `db:"deleted_at" json:"-"`
}
