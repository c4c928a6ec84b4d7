package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/qrobotics/storefront-api/internal/apperrors"
	"github.com/qrobotics/storefront-api/internal/models"
)

// CategoryRepository handles data access for categories.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a new category and fills in its generated id and timestamps.
// A parent reference to a missing or soft-deleted category surfaces as a
// ConflictError through the foreign-key constraint.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	const q = `
        INSERT INTO categories (name, description, parent_category_id)
        VALUES ($1, $2, $3)
        RETURNING category_id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, q, category.Name, category.Description, category.ParentCategoryID).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return classifyPQError("create category", err)
	}
	return nil
}

// List returns every active category with its parent's display name resolved
// via self-join, ordered by name. An empty catalog yields an empty slice.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	const q = `
        SELECT c1.category_id, c1.name, c1.description, c1.parent_category_id,
               c2.name AS parent_name,
               c1.created_at, c1.updated_at
        FROM categories c1
        LEFT JOIN categories c2 ON c1.parent_category_id = c2.category_id
        WHERE c1.deleted_at IS NULL
        ORDER BY c1.name`

	categories := []models.Category{}
	if err := r.db.SelectContext(ctx, &categories, q); err != nil {
		return nil, apperrors.NewStorage("list categories", err)
	}
	return categories, nil
}

// ListNames returns active category names, newest first. Feeds the storefront
// category dropdown.
func (r *CategoryRepository) ListNames(ctx context.Context) ([]string, error) {
	const q = `
        SELECT name FROM categories
        WHERE deleted_at IS NULL
        ORDER BY created_at DESC`

	names := []string{}
	if err := r.db.SelectContext(ctx, &names, q); err != nil {
		return nil, apperrors.NewStorage("list category names", err)
	}
	return names, nil
}

// SoftDelete marks a category deleted after verifying it has no active
// dependents. The row lock, both dependent counts, and the update run in one
// transaction so a concurrent product or subcategory insert cannot slip
// between the check and the write.
func (r *CategoryRepository) SoftDelete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.NewStorage("delete category: begin", err)
	}
	defer tx.Rollback()

	var lockedID int
	err = tx.GetContext(ctx, &lockedID, `
        SELECT category_id FROM categories
        WHERE category_id = $1 AND deleted_at IS NULL
        FOR UPDATE`, id)
	if err == sql.ErrNoRows {
		return apperrors.NewNotFound("category")
	}
	if err != nil {
		return apperrors.NewStorage("delete category: lock", err)
	}

	var productCount int
	err = tx.GetContext(ctx, &productCount, `
        SELECT COUNT(*) FROM products
        WHERE category_id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return apperrors.NewStorage("delete category: count products", err)
	}
	if productCount > 0 {
		return apperrors.NewConflict("cannot delete category that has products assigned to it")
	}

	var subcategoryCount int
	err = tx.GetContext(ctx, &subcategoryCount, `
        SELECT COUNT(*) FROM categories
        WHERE parent_category_id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return apperrors.NewStorage("delete category: count subcategories", err)
	}
	if subcategoryCount > 0 {
		return apperrors.NewConflict("cannot delete category that has subcategories")
	}

	if _, err := tx.ExecContext(ctx, `
        UPDATE categories SET deleted_at = NOW()
        WHERE category_id = $1`, id); err != nil {
		return apperrors.NewStorage("delete category: update", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewStorage("delete category: commit", err)
	}
	return nil
}
