package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medportal/internal/domain/entity"
	domainerrors "medportal/internal/domain/errors"
	"medportal/internal/infra/auth"
	"medportal/internal/infra/memstore"
	"medportal/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRegisterInput(role entity.Role, email string) *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Role:            role,
		FirstName:       "John",
		LastName:        "Doe",
		Username:        "johndoe",
		Email:           email,
		Password:        "abc123",
		ConfirmPassword: "abc123",
		AddressLine1:    "123 Main Street",
		City:            "New York",
		State:           "NY",
		PostalCode:      "10001",
		TermsAccepted:   true,
	}
}

func fieldErrors(t *testing.T, err error) []domainerrors.FieldError {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	details, ok := appErr.Details().([]domainerrors.FieldError)
	require.True(t, ok, "expected field error details, got %T", appErr.Details())

	return details
}

func reasons(fieldErrs []domainerrors.FieldError) []string {
	out := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = fe.Reason
	}

	return out
}

func TestRegistrationService_Success(t *testing.T) {
	store := memstore.NewAccountStore()
	srv := NewRegistrationService(store, auth.NewSHA256Hasher(), testLogger())

	account, err := srv.Register(context.Background(), validRegisterInput(entity.RolePatient, "a@b.com"))

	require.NoError(t, err)
	assert.Equal(t, 1, account.ID)
	assert.Equal(t, entity.RolePatient, account.Role)
	assert.Equal(t, "a@b.com", account.Email)
	assert.False(t, account.CreatedAt.IsZero())
	// The digest is stored, never the plaintext.
	assert.NotEqual(t, "abc123", account.PasswordDigest)
	assert.Len(t, account.PasswordDigest, 64)
}

func TestRegistrationService_CollectsAllErrors(t *testing.T) {
	store := memstore.NewAccountStore()
	srv := NewRegistrationService(store, auth.NewSHA256Hasher(), testLogger())

	input := &usecase.RegisterInput{
		Role:            entity.RolePatient,
		FirstName:       "John",
		Email:           "not-an-email",
		Password:        "abcdef",
		ConfirmPassword: "different",
		PostalCode:      "12",
	}

	_, err := srv.Register(context.Background(), input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	got := reasons(fieldErrors(t, err))
	assert.Contains(t, got, "lastName is required")
	assert.Contains(t, got, "username is required")
	assert.Contains(t, got, "addressLine1 is required")
	assert.Contains(t, got, "city is required")
	assert.Contains(t, got, "state is required")
	assert.Contains(t, got, "you must accept the terms of service")
	assert.Contains(t, got, "please enter a valid email address")
	assert.Contains(t, got, "passwords do not match")
	assert.Contains(t, got, "password must contain at least one number")
	assert.Contains(t, got, "postal code must be 5-6 digits")

	// Nothing was committed.
	assert.Equal(t, 0, store.CountAll(context.Background()))
}

func TestRegistrationService_MissingEverything(t *testing.T) {
	srv := NewRegistrationService(memstore.NewAccountStore(), auth.NewSHA256Hasher(), testLogger())

	_, err := srv.Register(context.Background(), &usecase.RegisterInput{Role: entity.RoleProvider})
	require.Error(t, err)

	got := fieldErrors(t, err)
	// Ten required fields plus the terms flag.
	assert.Len(t, got, 11)
}

func TestRegistrationService_DuplicateEmailSameRole(t *testing.T) {
	store := memstore.NewAccountStore()
	srv := NewRegistrationService(store, auth.NewSHA256Hasher(), testLogger())
	ctx := context.Background()

	_, err := srv.Register(ctx, validRegisterInput(entity.RolePatient, "a@b.com"))
	require.NoError(t, err)

	_, err = srv.Register(ctx, validRegisterInput(entity.RolePatient, "a@b.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
	assert.Contains(t, reasons(fieldErrors(t, err)), "an account with this email already exists")

	// The partition count did not grow.
	assert.Equal(t, 1, store.Count(ctx, entity.RolePatient))
}

func TestRegistrationService_SameEmailAcrossRoles(t *testing.T) {
	store := memstore.NewAccountStore()
	srv := NewRegistrationService(store, auth.NewSHA256Hasher(), testLogger())
	ctx := context.Background()

	patient, err := srv.Register(ctx, validRegisterInput(entity.RolePatient, "a@b.com"))
	require.NoError(t, err)

	provider, err := srv.Register(ctx, validRegisterInput(entity.RoleProvider, "a@b.com"))
	require.NoError(t, err)

	// Uniqueness is role-scoped; both partitions start counting at 1.
	assert.Equal(t, 1, patient.ID)
	assert.Equal(t, 1, provider.ID)
	assert.Equal(t, 2, store.CountAll(ctx))
}

func TestRegistrationService_InvalidRole(t *testing.T) {
	srv := NewRegistrationService(memstore.NewAccountStore(), auth.NewSHA256Hasher(), testLogger())

	_, err := srv.Register(context.Background(), validRegisterInput(entity.Role("admin"), "a@b.com"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestRegistrationService_TrimsAndStoresFields(t *testing.T) {
	srv := NewRegistrationService(memstore.NewAccountStore(), auth.NewSHA256Hasher(), testLogger())

	input := validRegisterInput(entity.RolePatient, "  a@b.com  ")
	input.FirstName = "  John "
	input.ProfileImage = "aGVsbG8="

	account, err := srv.Register(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", account.Email)
	assert.Equal(t, "John", account.FirstName)
	assert.Equal(t, "aGVsbG8=", account.ProfileImage)
}

func TestRegistrationService_UsernameUniquenessNotEnforced(t *testing.T) {
	store := memstore.NewAccountStore()
	srv := NewRegistrationService(store, auth.NewSHA256Hasher(), testLogger())
	ctx := context.Background()

	first := validRegisterInput(entity.RolePatient, "a@b.com")
	second := validRegisterInput(entity.RolePatient, "c@d.com")
	// Same username, different emails: both commit.
	_, err := srv.Register(ctx, first)
	require.NoError(t, err)
	_, err = srv.Register(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, 2, store.Count(ctx, entity.RolePatient))
}
