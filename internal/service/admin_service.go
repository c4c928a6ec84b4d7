package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/qrobotics/storefront-api/internal/apperrors"
	"github.com/qrobotics/storefront-api/internal/models"
	"github.com/qrobotics/storefront-api/internal/utils"
)

// AdminStore is the storage surface the admin service depends on.
type AdminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	UpdateLastLogin(ctx context.Context, adminID int) error
}

// Authentication failures deliberately carry no detail about which part of
// the credentials was wrong.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
)

// AdminService handles back-office accounts and login.
type AdminService struct {
	store AdminStore
}

// NewAdminService constructs an AdminService.
func NewAdminService(store AdminStore) *AdminService {
	return &AdminService{store: store}
}

// CreateAdminRequest represents the request to create an admin account. The
// password arrives pre-hashed with bcrypt; this service performs no hashing.
type CreateAdminRequest struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Role         string `json:"role"`
	IsActive     *bool  `json:"is_active"`
}

// CreateAdmin validates and inserts a new admin, returning its id.
func (s *AdminService) CreateAdmin(ctx context.Context, req *CreateAdminRequest) (int, error) {
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
	if !models.ValidAdminRole(req.Role) {
		return 0, apperrors.NewFieldValidation("role", "must be one of super_admin, product_manager, order_manager")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	admin := &models.Admin{
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         models.AdminRole(req.Role),
		IsActive:     isActive,
	}
	if err := s.store.Create(ctx, admin); err != nil {
		return 0, err
	}
	return admin.ID, nil
}

// GetAdminByEmail returns the active admin for email, or NotFoundError.
func (s *AdminService) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	admin, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperrors.NewNotFound("admin")
	}
	return admin, nil
}

// Login verifies the admin's password, stamps last_login, and issues a
// session token.
func (s *AdminService) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("admin lookup failed")
		return "", ErrInvalidCredentials
	}
	if admin == nil {
		return "", ErrInvalidCredentials
	}

	if !admin.IsActive {
		log.Warn().Str("email", email).Msg("login attempt on inactive account")
		return "", ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if err := s.store.UpdateLastLogin(ctx, admin.ID); err != nil {
		// Login still succeeds; the stamp is best-effort bookkeeping.
		log.Warn().Err(err).Int("admin_id", admin.ID).Msg("failed to update last login")
	}

	log.Info().Str("email", email).Msg("admin login successful")
	return utils.GenerateJWT(admin.ID, admin.Email, string(admin.Role))
}
