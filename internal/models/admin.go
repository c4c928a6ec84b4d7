package models

import "time"

// AdminRole enumerates back-office roles.
type AdminRole string

const (
	RoleSuperAdmin     AdminRole = "super_admin"
	RoleProductManager AdminRole = "product_manager"
	RoleOrderManager   AdminRole = "order_manager"
)

// ValidAdminRole reports whether s is a known admin role.
func ValidAdminRole(s string) bool {
	switch AdminRole(s) {
	case RoleSuperAdmin, RoleProductManager, RoleOrderManager:
		return true
	}
	return false
}

// Admin represents a back-office account.
type Admin struct {
	ID           int        `db:"admin_id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FirstName    string     `db:"first_name" json:"firstName"`
	LastName     string     `db:"last_name" json:"lastName"`
	Role         AdminRole  `db:"role" json:"role"`
	IsActive     bool       `db:"is_active" json:"isActive"`
	LastLogin    *time.Time `db:"last_login" json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt    *time.Time `db:"deleted_at" json:"-"`
}
