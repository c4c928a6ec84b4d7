package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrobotics/storefront-api/internal/apperrors"
	"github.com/qrobotics/storefront-api/internal/models"
)

type fakeUserStore struct {
	nextID    int
	users     map[int]*models.User
	addresses []models.UserAddress
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: make(map[int]*models.User)}
}

func (f *fakeUserStore) activeByEmail(email string) *models.User {
	for _, u := range f.users {
		if u.Email == email && u.DeletedAt == nil {
			return u
		}
	}
	return nil
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if f.activeByEmail(user.Email) != nil {
		return apperrors.NewConflict("duplicate value violates a uniqueness constraint")
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) CreateAddress(_ context.Context, address *models.UserAddress) error {
	if _, ok := f.users[address.UserID]; !ok {
		return apperrors.NewConflict("referenced row does not exist or is still referenced")
	}
	address.ID = len(f.addresses) + 1
	f.addresses = append(f.addresses, *address)
	return nil
}

func (f *fakeUserStore) UpdateName(_ context.Context, email, firstName, lastName string) (int64, error) {
	u := f.activeByEmail(email)
	if u == nil {
		return 0, nil
	}
	u.FirstName = firstName
	u.LastName = lastName
	return 1, nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, email, passwordHash string) (int64, error) {
	u := f.activeByEmail(email)
	if u == nil {
		return 0, nil
	}
	u.PasswordHash = passwordHash
	return 1, nil
}

func (f *fakeUserStore) UpdatePhone(_ context.Context, email, phoneNumber string) (int64, error) {
	u := f.activeByEmail(email)
	if u == nil {
		return 0, nil
	}
	u.PhoneNumber = &phoneNumber
	return 1, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u := f.activeByEmail(email)
	if u == nil {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func validUserRequest() *CreateUserRequest {
	return &CreateUserRequest{
		Email:        "jordan@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		FirstName:    "Jordan",
		LastName:     "Rivers",
	}
}

func TestAccountService_CreateUser_Validation(t *testing.T) {
	t.Parallel()

	svc := NewAccountService(newFakeUserStore())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*CreateUserRequest)
	}{
		{name: "bad email", mutate: func(r *CreateUserRequest) { r.Email = "not-an-email" }},
		{name: "email with spaces", mutate: func(r *CreateUserRequest) { r.Email = "a b@example.com" }},
		{name: "short hash", mutate: func(r *CreateUserRequest) { r.PasswordHash = "abc" }},
		{name: "empty first name", mutate: func(r *CreateUserRequest) { r.FirstName = "  " }},
		{name: "empty last name", mutate: func(r *CreateUserRequest) { r.LastName = "" }},
		{name: "short phone", mutate: func(r *CreateUserRequest) { r.PhoneNumber = strPtr("0171234") }},
		{name: "bad phone prefix", mutate: func(r *CreateUserRequest) { r.PhoneNumber = strPtr("01212345678") }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validUserRequest()
			tt.mutate(req)
			_, err := svc.CreateUser(ctx, req)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestAccountService_CreateUser_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewAccountService(newFakeUserStore())
	ctx := context.Background()

	req := validUserRequest()
	req.PhoneNumber = strPtr("01712345678")
	id, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := svc.GetUserByEmail(ctx, "jordan@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Jordan", got.FirstName)
	require.NotNil(t, got.PhoneNumber)
	assert.Equal(t, "01712345678", *got.PhoneNumber)
}

func TestAccountService_CreateUser_DuplicateEmailConflicts(t *testing.T) {
	t.Parallel()

	svc := NewAccountService(newFakeUserStore())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, validUserRequest())
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, validUserRequest())
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestAccountService_CreateAddress(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := NewAccountService(store)
	ctx := context.Background()

	userID, err := svc.CreateUser(ctx, validUserRequest())
	require.NoError(t, err)

	t.Run("valid shipping address", func(t *testing.T) {
		id, err := svc.CreateAddress(ctx, &CreateAddressRequest{
			UserID:        userID,
			AddressType:   "shipping",
			StreetAddress: "221B Baker Street",
			City:          "London",
			PostalCode:    "NW1 6XE",
		})
		require.NoError(t, err)
		assert.Positive(t, id)
		require.Len(t, store.addresses, 1)
		assert.False(t, store.addresses[0].IsDefault, "default flag defaults to false")
	})

	t.Run("unknown address type", func(t *testing.T) {
		_, err := svc.CreateAddress(ctx, &CreateAddressRequest{
			UserID:        userID,
			AddressType:   "office",
			StreetAddress: "1 Main St",
			City:          "Dhaka",
			PostalCode:    "1000",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("unknown user conflicts", func(t *testing.T) {
		_, err := svc.CreateAddress(ctx, &CreateAddressRequest{
			UserID:        9999,
			AddressType:   "billing",
			StreetAddress: "1 Main St",
			City:          "Dhaka",
			PostalCode:    "1000",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
	})
}

func TestAccountService_Updates_MissingUserIsNotFound(t *testing.T) {
	t.Parallel()

	svc := NewAccountService(newFakeUserStore())
	ctx := context.Background()

	err := svc.UpdateName(ctx, "ghost@example.com", "First", "Last")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	err = svc.UpdatePassword(ctx, "ghost@example.com", "$2a$10$abcdefghijklmnopqrstuv")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	err = svc.UpdatePhone(ctx, "ghost@example.com", "01712345678")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAccountService_UpdateName_Applies(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := NewAccountService(store)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, validUserRequest())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateName(ctx, "jordan@example.com", "Sam", "Waters"))

	got, err := svc.GetUserByEmail(ctx, "jordan@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Sam", got.FirstName)
	assert.Equal(t, "Waters", got.LastName)
}

func TestAccountService_UpdatePhone_RejectsBadNumber(t *testing.T) {
	t.Parallel()

	svc := NewAccountService(newFakeUserStore())

	err := svc.UpdatePhone(context.Background(), "jordan@example.com", "555-1234")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAccountService_GetUserByEmail_MissingIsNotFound(t *testing.T) {
	t.Parallel()

	svc := NewAccountService(newFakeUserStore())

	_, err := svc.GetUserByEmail(context.Background(), "ghost@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
