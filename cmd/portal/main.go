package main

import (
	"context"
	"log/slog"
	"os"

	"medportal/config"
	"medportal/internal/delivery"
	"medportal/internal/delivery/http"
	httpmiddleware "medportal/internal/delivery/http/middleware"
	"medportal/internal/delivery/http/router/handler"
	"medportal/internal/domain/service"
	"medportal/internal/infra/auth"
	logs "medportal/internal/infra/log"
	"medportal/internal/infra/memstore"
	"medportal/internal/usecase"
	"medportal/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedDemoAccounts,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		memstore.NewStore,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
		),
	)
}

// newPasswordHasher selects the digest scheme from configuration.
// The demo default is the deterministic SHA-256 scheme; bcrypt is the
// salted upgrade path.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth != nil && cfg.Auth.HashAlgorithm == "bcrypt" {
		return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
	}

	return auth.NewSHA256Hasher()
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistrationService,
			impl.NewAuthService,
			impl.NewDirectoryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPortalHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedDemoAccounts registers the two well-known demo accounts through
// the normal registration path so the hashing scheme in effect is used.
func seedDemoAccounts(ctx context.Context, cfg *config.Config, registration usecase.RegistrationUsecase, logger *slog.Logger) {
	if cfg.Demo == nil || !cfg.Demo.Seed {
		return
	}

	for _, input := range demoAccounts() {
		account, err := registration.Register(ctx, input)
		if err != nil {
			logger.Warn("Demo account seeding skipped",
				slog.String("email", input.Email),
				slog.Any("error", err))

			continue
		}
		logger.Info("Demo account seeded",
			slog.String("role", account.Role.String()),
			slog.String("email", account.Email),
			slog.Int("id", account.ID))
	}
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
