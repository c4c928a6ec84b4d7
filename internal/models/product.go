package models

import "time"

// Product represents a catalog product. Every product owns exactly one
// inventory row, created in the same transaction as the product itself.
type Product struct {
	ID          int        `db:"product_id" json:"id"`
	CategoryID  int        `db:"category_id" json:"categoryId"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description,omitempty"`
	Price       float64    `db:"price" json:"price"`
	IsAvailable bool       `db:"is_available" json:"isAvailable"`
	CreatedBy   int        `db:"created_by" json:"createdBy"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt   *time.Time `db:"deleted_at" json:"-"`

	// Joined columns for list views.
	CategoryName  *string `db:"category_name" json:"categoryName,omitempty"`
	StockQuantity int     `db:"stock_quantity" json:"stockQuantity"`
}

// Inventory is the 1:1 stock record for a product.
type Inventory struct {
	ProductID   int       `db:"product_id" json:"productId"`
	Quantity    int       `db:"quantity" json:"quantity"`
	LastUpdated time.Time `db:"last_updated" json:"lastUpdated"`
	UpdatedBy   int       `db:"updated_by" json:"updatedBy"`
}
