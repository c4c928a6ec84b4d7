package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/qrobotics/storefront-api/internal/apperrors"
	"github.com/qrobotics/storefront-api/internal/models"
)

// UserRepository handles data access for user accounts and addresses.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. A duplicate active email surfaces as a
// ConflictError through the partial unique index.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	const q = `
        INSERT INTO users (email, password_hash, first_name, last_name, phone_number)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING user_id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, q,
		user.Email, user.PasswordHash, user.FirstName, user.LastName, user.PhoneNumber,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return classifyPQError("create user", err)
	}
	return nil
}

// CreateAddress inserts a billing or shipping address for a user. A missing
// user surfaces as a ConflictError through the foreign-key constraint.
func (r *UserRepository) CreateAddress(ctx context.Context, address *models.UserAddress) error {
	const q = `
        INSERT INTO user_addresses (user_id, address_type, street_address, city, postal_code, is_default)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING address_id`

	err := r.db.QueryRowxContext(ctx, q,
		address.UserID, address.AddressType, address.StreetAddress,
		address.City, address.PostalCode, address.IsDefault,
	).Scan(&address.ID)
	if err != nil {
		return classifyPQError("create user address", err)
	}
	return nil
}

// UpdateName sets first and last name for the active user with the given
// email. Returns rows affected; 0 means no active user matched.
func (r *UserRepository) UpdateName(ctx context.Context, email, firstName, lastName string) (int64, error) {
	const q = `
        UPDATE users
        SET first_name = $1, last_name = $2, updated_at = NOW()
        WHERE email = $3 AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, q, firstName, lastName, email)
	if err != nil {
		return 0, apperrors.NewStorage("update user name", err)
	}
	return rowsAffected(res, "update user name")
}

// UpdatePassword sets the password hash for the active user with the given
// email. Returns rows affected; 0 means no active user matched.
func (r *UserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error) {
	const q = `
        UPDATE users
        SET password_hash = $1, updated_at = NOW()
        WHERE email = $2 AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, q, passwordHash, email)
	if err != nil {
		return 0, apperrors.NewStorage("update user password", err)
	}
	return rowsAffected(res, "update user password")
}

// UpdatePhone sets the phone number for the active user with the given email.
// Returns rows affected; 0 means no active user matched.
func (r *UserRepository) UpdatePhone(ctx context.Context, email, phoneNumber string) (int64, error) {
	const q = `
        UPDATE users
        SET phone_number = $1, updated_at = NOW()
        WHERE email = $2 AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, q, phoneNumber, email)
	if err != nil {
		return 0, apperrors.NewStorage("update user phone", err)
	}
	return rowsAffected(res, "update user phone")
}

// GetByEmail returns the active user with the given email, or nil when no
// such user exists. Absence is a normal result, not an error.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const q = `
        SELECT user_id, email, password_hash, first_name, last_name,
               phone_number, created_at, updated_at
        FROM users
        WHERE email = $1 AND deleted_at IS NULL
        LIMIT 1`

	var user models.User
	err := r.db.GetContext(ctx, &user, q, email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorage("get user by email", err)
	}
	return &user, nil
}

func rowsAffected(res sql.Result, op string) (int64, error) {
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, apperrors.NewStorage(op+": rows affected", err)
	}
	return rows, nil
}
