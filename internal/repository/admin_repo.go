package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/qrobotics/storefront-api/internal/apperrors"
	"github.com/qrobotics/storefront-api/internal/models"
)

// AdminRepository handles data access for back-office accounts.
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create inserts a new admin. A duplicate email surfaces as a ConflictError.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	const q = `
        INSERT INTO admins (email, password_hash, first_name, last_name, role, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING admin_id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, q,
		admin.Email, admin.PasswordHash, admin.FirstName, admin.LastName,
		admin.Role, admin.IsActive,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		return classifyPQError("create admin", err)
	}
	return nil
}

// GetByEmail returns the active admin with the given email, or nil when no
// such admin exists.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	const q = `
        SELECT admin_id, email, password_hash, first_name, last_name, role,
               is_active, last_login, created_at, updated_at
        FROM admins
        WHERE email = $1 AND deleted_at IS NULL
        LIMIT 1`

	var admin models.Admin
	err := r.db.GetContext(ctx, &admin, q, email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorage("get admin by email", err)
	}
	return &admin, nil
}

// UpdateLastLogin stamps the admin's last successful login time.
func (r *AdminRepository) UpdateLastLogin(ctx context.Context, adminID int) error {
	const q = `UPDATE admins SET last_login = NOW() WHERE admin_id = $1`
	if _, err := r.db.ExecContext(ctx, q, adminID); err != nil {
		return apperrors.NewStorage("update admin last login", err)
	}
	return nil
}
