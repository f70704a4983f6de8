// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"medportal/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the raw form fields collected for a new account.
// Everything arrives as text; validation happens in the registration
// service, which reports every problem at once.
type RegisterInput struct {
	Role            entity.Role `json:"-"`
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	Username        string      `json:"username"`
	Email           string      `json:"email"`
	Password        string      `json:"password"`
	ConfirmPassword string      `json:"confirmPassword"`
	AddressLine1    string      `json:"addressLine1"`
	City            string      `json:"city"`
	State           string      `json:"state"`
	PostalCode      string      `json:"postalCode"`
	TermsAccepted   bool        `json:"termsAccepted"`
	ProfileImage    string      `json:"profileImage,omitempty"` // optional, opaque encoded blob
}

// LoginInput defines the credentials for an authentication attempt.
// Lookup is role-scoped: the same email may name different accounts in
// the patient and provider partitions.
type LoginInput struct {
	Role     entity.Role `json:"role" validate:"required"`
	Email    string      `json:"email" validate:"required"`
	Password string      `json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the session tokens and account after a successful login.
type LoginOutput struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	Account      *entity.Account `json:"account"`
}

// --- Usecase interfaces ---

// RegistrationUsecase validates and commits new accounts.
type RegistrationUsecase interface {
	// Register runs the full validation pass and, only if every check
	// passed, hashes the password and commits the account atomically.
	Register(ctx context.Context, input *RegisterInput) (*entity.Account, error)
}

// AuthUsecase authenticates registered accounts and resolves them from
// session claims.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetAccount(ctx context.Context, role entity.Role, id int) (*entity.Account, error)
}

// DirectoryUsecase exposes the read-only and administrative views used
// by reporting collaborators.
type DirectoryUsecase interface {
	ListAccounts(ctx context.Context, role entity.Role) ([]entity.Account, error)
	CountAccounts(ctx context.Context, role entity.Role) (int, error)
	CountAll(ctx context.Context) int
	ClearAccounts(ctx context.Context)
}
