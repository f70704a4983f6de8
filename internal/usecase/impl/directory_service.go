package impl

import (
	"context"
	"log/slog"

	deliverycontext "medportal/internal/delivery/context"
	"medportal/internal/domain/entity"
	domainerrors "medportal/internal/domain/errors"
	"medportal/internal/domain/repository"
	"medportal/internal/usecase"

	"github.com/pkg/errors"
)

// directoryService implements the DirectoryUsecase interface: read-only
// partition views for reporting plus the administrative bulk reset.
type directoryService struct {
	store  repository.AccountStore
	logger *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(store repository.AccountStore, logger *slog.Logger) usecase.DirectoryUsecase {
	return &directoryService{
		store:  store,
		logger: logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAccounts returns the role's partition in insertion order.
func (srv *directoryService) ListAccounts(ctx context.Context, role entity.Role) ([]entity.Account, error) {
	if !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidRole, "list accounts")
	}

	return srv.store.ListByRole(ctx, role), nil
}

// CountAccounts returns the size of the role's partition.
func (srv *directoryService) CountAccounts(ctx context.Context, role entity.Role) (int, error) {
	if !role.IsValid() {
		return 0, errors.Wrap(domainerrors.ErrInvalidRole, "count accounts")
	}

	return srv.store.Count(ctx, role), nil
}

// CountAll returns the total across all partitions.
func (srv *directoryService) CountAll(ctx context.Context) int {
	return srv.store.CountAll(ctx)
}

// ClearAccounts empties the store. Administrative use only.
func (srv *directoryService) ClearAccounts(ctx context.Context) {
	srv.log(ctx).Warn("Clearing all registered accounts")
	srv.store.Clear(ctx)
}
