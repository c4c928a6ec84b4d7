package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/qrobotics/storefront-api/internal/apperrors"
	"github.com/qrobotics/storefront-api/internal/models"
)

// ProductRepository handles data access for products and their inventory.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a product and its inventory row in one transaction. Partial
// failure rolls back both inserts: a product never exists without inventory.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product, quantity int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.NewStorage("create product: begin", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, `
        INSERT INTO products (category_id, name, description, price, is_available, created_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING product_id, created_at, updated_at`,
		product.CategoryID, product.Name, product.Description,
		product.Price, product.IsAvailable, product.CreatedBy,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return classifyPQError("create product", err)
	}

	if _, err := tx.ExecContext(ctx, `
        INSERT INTO product_inventory (product_id, quantity, updated_by)
        VALUES ($1, $2, $3)`,
		product.ID, quantity, product.CreatedBy); err != nil {
		return classifyPQError("create product inventory", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewStorage("create product: commit", err)
	}
	product.StockQuantity = quantity
	return nil
}

// List returns all active products joined with their category name and stock
// quantity (0 when the inventory row is missing), newest first.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	const q = `
        SELECT
            p.product_id, p.category_id, p.name, p.description, p.price,
            p.is_available, p.created_by, p.created_at, p.updated_at,
            c.name AS category_name,
            COALESCE(pi.quantity, 0) AS stock_quantity
        FROM products p
        LEFT JOIN categories c ON p.category_id = c.category_id
        LEFT JOIN product_inventory pi ON p.product_id = pi.product_id
        WHERE p.deleted_at IS NULL
        ORDER BY p.created_at DESC`

	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, q); err != nil {
		return nil, apperrors.NewStorage("list products", err)
	}
	return products, nil
}

// GetByID returns a single active product with category and stock resolved.
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	const q = `
        SELECT
            p.product_id, p.category_id, p.name, p.description, p.price,
            p.is_available, p.created_by, p.created_at, p.updated_at,
            c.name AS category_name,
            COALESCE(pi.quantity, 0) AS stock_quantity
        FROM products p
        LEFT JOIN categories c ON p.category_id = c.category_id
        LEFT JOIN product_inventory pi ON p.product_id = pi.product_id
        WHERE p.product_id = $1 AND p.deleted_at IS NULL`

	var p models.Product
	err := r.db.GetContext(ctx, &p, q, id)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFound("product")
	}
	if err != nil {
		return nil, apperrors.NewStorage("get product", err)
	}
	return &p, nil
}

// Update replaces the mutable product fields and, when quantity is non-nil,
// the inventory quantity, all in one transaction. Targets only active rows;
// a missing or soft-deleted product yields NotFoundError.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product, quantity *int, updatedBy int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.NewStorage("update product: begin", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, `
        UPDATE products
        SET name = $1, description = $2, price = $3, category_id = $4,
            is_available = $5, updated_at = NOW()
        WHERE product_id = $6 AND deleted_at IS NULL
        RETURNING updated_at`,
		product.Name, product.Description, product.Price,
		product.CategoryID, product.IsAvailable, product.ID,
	).Scan(&product.UpdatedAt)
	if err == sql.ErrNoRows {
		return apperrors.NewNotFound("product")
	}
	if err != nil {
		return classifyPQError("update product", err)
	}

	if quantity != nil {
		if _, err := tx.ExecContext(ctx, `
            UPDATE product_inventory
            SET quantity = $1, last_updated = NOW(), updated_by = $2
            WHERE product_id = $3`,
			*quantity, updatedBy, product.ID); err != nil {
			return apperrors.NewStorage("update product inventory", err)
		}
		product.StockQuantity = *quantity
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewStorage("update product: commit", err)
	}
	return nil
}

// SoftDelete marks a product deleted unless it appears in any non-deleted
// order. The check and the write share a transaction with the product row
// locked, mirroring the category deletion guard.
func (r *ProductRepository) SoftDelete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.NewStorage("delete product: begin", err)
	}
	defer tx.Rollback()

	var lockedID int
	err = tx.GetContext(ctx, &lockedID, `
        SELECT product_id FROM products
        WHERE product_id = $1 AND deleted_at IS NULL
        FOR UPDATE`, id)
	if err == sql.ErrNoRows {
		return apperrors.NewNotFound("product")
	}
	if err != nil {
		return apperrors.NewStorage("delete product: lock", err)
	}

	// Only items of non-deleted orders block deletion. Historical line items
	// of soft-deleted orders do not.
	var orderedCount int
	err = tx.GetContext(ctx, &orderedCount, `
        SELECT COUNT(*)
        FROM order_items oi
        JOIN orders o ON oi.order_id = o.order_id
        WHERE oi.product_id = $1 AND o.deleted_at IS NULL`, id)
	if err != nil {
		return apperrors.NewStorage("delete product: count orders", err)
	}
	if orderedCount > 0 {
		return apperrors.NewConflict("cannot delete product that has been ordered")
	}

	if _, err := tx.ExecContext(ctx, `
        UPDATE products SET deleted_at = NOW()
        WHERE product_id = $1`, id); err != nil {
		return apperrors.NewStorage("delete product: update", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewStorage("delete product: commit", err)
	}
	return nil
}
