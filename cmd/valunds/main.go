package main

import (
	"context"
	"log/slog"
	"os"

	"valunds/config"
	"valunds/internal/delivery"
	"valunds/internal/delivery/api"
	"valunds/internal/delivery/api/middleware"
	"valunds/internal/delivery/api/router/handler"
	"valunds/internal/infra/auth"
	"valunds/internal/infra/auth/google"
	"valunds/internal/infra/bankid"
	"valunds/internal/infra/cache/redis"
	logs "valunds/internal/infra/log"
	"valunds/internal/infra/persistence/migrations"
	"valunds/internal/infra/persistence/postgres"
	"valunds/internal/infra/pubsub"
	"valunds/internal/infra/qrcode"
	"valunds/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			migrations.RunOnStart,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			redis.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewLoginAttemptRepository,
			postgres.NewSecurityEventRepository,
			postgres.NewTransactionManager,
			redis.NewTokenBlacklist,
			redis.NewOAuthStateStore,
			redis.NewBankIDSessionStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewOAuthService,
			bankid.NewClient,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAuthService,
			impl.NewAccountService,
			impl.NewOAuthService,
			impl.NewBankIDService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCookies,
			handler.NewAuthHandler,
			handler.NewAccountHandler,
			handler.NewOAuthHandler,
			handler.NewBankIDHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
