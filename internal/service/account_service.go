package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/qrobotics/storefront-api/internal/apperrors"
	"github.com/qrobotics/storefront-api/internal/models"
)

// UserStore is the storage surface the account service depends on.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	CreateAddress(ctx context.Context, address *models.UserAddress) error
	UpdateName(ctx context.Context, email, firstName, lastName string) (int64, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error)
	UpdatePhone(ctx context.Context, email, phoneNumber string) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Local 10-digit mobile pattern: "01", one digit 3-9, then 8 more digits.
	phoneRe = regexp.MustCompile(`^01[3-9]\d{8}$`)
)

// AccountService handles user account operations. Passwords arrive already
// hashed; this service never hashes or verifies customer credentials.
type AccountService struct {
	store UserStore
}

// NewAccountService constructs an AccountService.
func NewAccountService(store UserStore) *AccountService {
	return &AccountService{store: store}
}

// CreateUserRequest represents the request to create a user account.
type CreateUserRequest struct {
	Email        string  `json:"email"`
	PasswordHash string  `json:"password_hash"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	PhoneNumber  *string `json:"phone_number"`
}

// CreateAddressRequest represents the request to add a user address.
type CreateAddressRequest struct {
	UserID        int    `json:"user_id"`
	AddressType   string `json:"address_type"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	IsDefault     *bool  `json:"is_default"`
}

func validateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return apperrors.NewFieldValidation("email", "must be a valid email address")
	}
	return nil
}

func validatePhone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return apperrors.NewFieldValidation("phone_number", "must start with '01' followed by 3-9 and 8 more digits")
	}
	return nil
}

// CreateUser validates and inserts a new user, returning its id.
func (s *AccountService) CreateUser(ctx context.Context, req *CreateUserRequest) (int, error) {
	if err := validateEmail(req.Email); err != nil {
		return 0, err
	}
	if len(req.PasswordHash) < 6 {
		return 0, apperrors.NewFieldValidation("password_hash", "must be at least 6 characters")
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return 0, apperrors.NewFieldValidation("first_name", "first name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return 0, apperrors.NewFieldValidation("last_name", "last name is required")
	}
	if req.PhoneNumber != nil {
		if err := validatePhone(*req.PhoneNumber); err != nil {
			return 0, err
		}
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PhoneNumber:  req.PhoneNumber,
	}
	if err := s.store.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// CreateAddress validates and inserts a user address, returning its id.
// Whether the user exists is left to the foreign-key constraint.
func (s *AccountService) CreateAddress(ctx context.Context, req *CreateAddressRequest) (int, error) {
	if req.UserID <= 0 {
		return 0, apperrors.NewFieldValidation("user_id", "must be a positive id")
	}
	if !models.ValidAddressType(req.AddressType) {
		return 0, apperrors.NewFieldValidation("address_type", "must be billing or shipping")
	}
	if strings.TrimSpace(req.StreetAddress) == "" {
		return 0, apperrors.NewFieldValidation("street_address", "street address is required")
	}
	if strings.TrimSpace(req.City) == "" {
		return 0, apperrors.NewFieldValidation("city", "city is required")
	}
	if strings.TrimSpace(req.PostalCode) == "" {
		return 0, apperrors.NewFieldValidation("postal_code", "postal code is required")
	}

	isDefault := false
	if req.IsDefault != nil {
		isDefault = *req.IsDefault
	}

	address := &models.UserAddress{
		UserID:        req.UserID,
		AddressType:   models.AddressType(req.AddressType),
		StreetAddress: req.StreetAddress,
		City:          req.City,
		PostalCode:    req.PostalCode,
		IsDefault:     isDefault,
	}
	if err := s.store.CreateAddress(ctx, address); err != nil {
		return 0, err
	}
	return address.ID, nil
}

// UpdateName changes first/last name of the user addressed by email. A zero
// row count is a reportable not-found condition, not a server fault.
func (s *AccountService) UpdateName(ctx context.Context, email, firstName, lastName string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return apperrors.NewValidation("first and last name are required")
	}
	rows, err := s.store.UpdateName(ctx, email, strings.TrimSpace(firstName), strings.TrimSpace(lastName))
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NewNotFound("user")
	}
	return nil
}

// UpdatePassword changes the stored password hash of the user addressed by email.
func (s *AccountService) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if len(passwordHash) < 6 {
		return apperrors.NewFieldValidation("password_hash", "must be at least 6 characters")
	}
	rows, err := s.store.UpdatePassword(ctx, email, passwordHash)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NewNotFound("user")
	}
	return nil
}

// UpdatePhone changes the phone number of the user addressed by email.
func (s *AccountService) UpdatePhone(ctx context.Context, email, phoneNumber string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := validatePhone(phoneNumber); err != nil {
		return err
	}
	rows, err := s.store.UpdatePhone(ctx, email, phoneNumber)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NewNotFound("user")
	}
	return nil
}

// GetUserByEmail returns the active user for email, or NotFoundError when no
// such user exists.
func (s *AccountService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user")
	}
	return user, nil
}
