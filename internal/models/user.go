package models

import "time"

// User represents a storefront customer account. The password hash is produced
// by the caller; this API never sees plaintext customer passwords.
type User struct {
	ID           int        `db:"user_id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FirstName    string     `db:"first_name" json:"firstName"`
	LastName     string     `db:"last_name" json:"lastName"`
	PhoneNumber  *string    `db:"phone_number" json:"phoneNumber,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt    *time.Time `db:"deleted_at" json:"-"`
}

// AddressType distinguishes billing from shipping addresses.
type AddressType string

const (
	AddressBilling  AddressType = "billing"
	AddressShipping AddressType = "shipping"
)

// ValidAddressType reports whether s is a known address type.
func ValidAddressType(s string) bool {
	return AddressType(s) == AddressBilling || AddressType(s) == AddressShipping
}

// UserAddress is a billing or shipping address owned by a user.
type UserAddress struct {
	ID            int         `db:"address_id" json:"id"`
	UserID        int         `db:"user_id" json:"userId"`
	AddressType   AddressType `db:"address_type" json:"addressType"`
	StreetAddress string      `db:"street_address" json:"streetAddress"`
	City          string      `db:"city" json:"city"`
	PostalCode    string      `db:"postal_code" json:"postalCode"`
	IsDefault     bool        `db:"is_default" json:"isDefault"`
}
