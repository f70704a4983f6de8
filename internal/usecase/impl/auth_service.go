package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "medportal/internal/delivery/context"
	"medportal/internal/domain/entity"
	domainerrors "medportal/internal/domain/errors"
	"medportal/internal/domain/repository"
	"medportal/internal/domain/service"
	"medportal/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	store  repository.AccountStore
	hasher service.PasswordHasher
	tokens service.TokenService
	logger *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(store repository.AccountStore, hasher service.PasswordHasher, tokens service.TokenService, logger *slog.Logger) usecase.AuthUsecase {
	return &authService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates the credentials against the role's partition.
// Unknown email and wrong password both surface as the same generic
// ErrInvalidCredentials so the response never reveals whether the
// account exists.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("role", input.Role.String()), slog.String("email", email))

	if !input.Role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidRole, "login")
	}

	account, err := srv.store.FindByEmail(ctx, input.Role, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("role", input.Role.String()), slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !srv.hasher.Check(input.Password, account.PasswordDigest) {
		srv.log(ctx).Warn("Login failed", slog.String("role", input.Role.String()), slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.tokens.GenerateTokens(account.ID, account.Role.String())
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to generate tokens")
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("role", account.Role.String()), slog.Int("accountID", account.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      &account,
	}, nil
}

// GetAccount resolves an account from validated session claims.
func (srv *authService) GetAccount(ctx context.Context, role entity.Role, id int) (*entity.Account, error) {
	if !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidRole, "get account")
	}

	account, err := srv.store.FindByID(ctx, role, id)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "get account")
	}

	return &account, nil
}
