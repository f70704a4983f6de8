// Package impl contains the implementation of the application's business logic.
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
	"medportal/internal/validate"

	"github.com/pkg/errors"
)

// requiredFields names the form fields a registration must fill, in the
// order their errors are reported.
var requiredFields = []string{
	"firstName",
	"lastName",
	"username",
	"email",
	"password",
	"confirmPassword",
	"addressLine1",
	"city",
	"state",
	"postalCode",
}

// registrationService implements the RegistrationUsecase interface.
// It is the only writer of the account store.
type registrationService struct {
	store  repository.AccountStore
	hasher service.PasswordHasher
	logger *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(store repository.AccountStore, hasher service.PasswordHasher, logger *slog.Logger) usecase.RegistrationUsecase {
	return &registrationService{
		store:  store,
		hasher: hasher,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the candidate account in one pass, collecting every
// problem, and commits only when the whole set is empty. The store never
// observes a partially valid account, and the caller receives the full
// error list in a single round trip.
func (srv *registrationService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	if !input.Role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidRole, "register")
	}

	email := strings.TrimSpace(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("role", input.Role.String()), slog.String("email", email))

	fieldErrs := srv.validateInput(ctx, input, email)
	if len(fieldErrs) > 0 {
		srv.log(ctx).Warn("Registration rejected",
			slog.String("role", input.Role.String()),
			slog.String("email", email),
			slog.Int("problems", len(fieldErrs)))

		if hasDuplicate(fieldErrs) {
			return nil, domainerrors.ErrDuplicateAccount.WithDetails(fieldErrs)
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails(fieldErrs)
	}

	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.String("role", input.Role.String()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "register")
	}

	candidate := entity.Account{
		Role:           input.Role,
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Username:       strings.TrimSpace(input.Username),
		Email:          email,
		PasswordDigest: digest,
		Address: entity.Address{
			Line1:      strings.TrimSpace(input.AddressLine1),
			City:       strings.TrimSpace(input.City),
			State:      strings.TrimSpace(input.State),
			PostalCode: strings.TrimSpace(input.PostalCode),
		},
		ProfileImage: input.ProfileImage,
	}

	// The duplicate pre-check above already reported conflicts, but the
	// check and insert must still be one atomic unit: a concurrent
	// registration may have won the race since then.
	stored, err := srv.store.InsertIfAbsent(ctx, input.Role, candidate)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrDuplicateAccount.WithDetails([]domainerrors.FieldError{duplicateFieldError()})
		}

		srv.log(ctx).Error("Failed to insert account", slog.String("role", input.Role.String()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "register")
	}

	srv.log(ctx).Info("Registration completed",
		slog.String("role", stored.Role.String()),
		slog.Int("accountID", stored.ID))

	return &stored, nil
}

// validateInput collects every field problem; it never short-circuits.
func (srv *registrationService) validateInput(ctx context.Context, input *usecase.RegisterInput, email string) []domainerrors.FieldError {
	var fieldErrs []domainerrors.FieldError

	fields := map[string]string{
		"firstName":       input.FirstName,
		"lastName":        input.LastName,
		"username":        input.Username,
		"email":           input.Email,
		"password":        input.Password,
		"confirmPassword": input.ConfirmPassword,
		"addressLine1":    input.AddressLine1,
		"city":            input.City,
		"state":           input.State,
		"postalCode":      input.PostalCode,
	}
	for _, name := range validate.MissingRequiredFields(fields, requiredFields) {
		fieldErrs = append(fieldErrs, domainerrors.FieldError{Field: name, Reason: name + " is required"})
	}

	if !input.TermsAccepted {
		fieldErrs = append(fieldErrs, domainerrors.FieldError{Field: "termsAccepted", Reason: "you must accept the terms of service"})
	}

	if email != "" && !validate.IsValidEmail(email) {
		fieldErrs = append(fieldErrs, domainerrors.FieldError{Field: "email", Reason: "please enter a valid email address"})
	}

	if input.Password != input.ConfirmPassword {
		fieldErrs = append(fieldErrs, domainerrors.FieldError{Field: "confirmPassword", Reason: "passwords do not match"})
	}

	if input.Password != "" {
		if err := validate.CheckPasswordStrength(input.Password); err != nil {
			fieldErrs = append(fieldErrs, domainerrors.FieldError{Field: "password", Reason: err.Error()})
		}
	}

	if code := strings.TrimSpace(input.PostalCode); code != "" && !validate.IsValidPostalCode(code) {
		fieldErrs = append(fieldErrs, domainerrors.FieldError{Field: "postalCode", Reason: "postal code must be 5-6 digits"})
	}

	if email != "" && srv.store.ExistsByEmail(ctx, input.Role, email) {
		fieldErrs = append(fieldErrs, duplicateFieldError())
	}

	return fieldErrs
}

func duplicateFieldError() domainerrors.FieldError {
	return domainerrors.FieldError{Field: "email", Reason: "an account with this email already exists"}
}

func hasDuplicate(fieldErrs []domainerrors.FieldError) bool {
	dup := duplicateFieldError()
	for _, fe := range fieldErrs {
		if fe == dup {
			return true
		}
	}

	return false
}
