package main

import (
	"context"
	"log/slog"
	"os"

	"giftie/config"
	"giftie/internal/delivery"
	"giftie/internal/delivery/http"
	"giftie/internal/delivery/http/middleware"
	"giftie/internal/delivery/http/router/handler"
	deliverymiddleware "giftie/internal/delivery/middleware"
	"giftie/internal/domain/repository"
	"giftie/internal/domain/service"
	"giftie/internal/infra/auth"
	"giftie/internal/infra/catalog"
	logs "giftie/internal/infra/log"
	"giftie/internal/infra/persistence"
	"giftie/internal/infra/persistence/kv"
	"giftie/internal/infra/pubsub"
	"giftie/internal/infra/qrcode"
	"giftie/internal/usecase/impl"

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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedDemoUsers,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.NewStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			kv.NewCartRepository,
			kv.NewOrderRepository,
			kv.NewUserRepository,
			kv.NewWishlistRepository,
			catalog.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewWishlistService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewWishlistHandler,
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

// seedDemoUsers loads the built-in demo accounts on an empty user store so
// the storefront is usable right after boot.
func seedDemoUsers(
	ctx context.Context,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) error {
	users, err := catalog.SeedUsers(hasher)
	if err != nil {
		return err
	}
	if err := userRepo.Seed(ctx, users); err != nil {
		return err
	}

	logger.Info("Demo users seeded", slog.Int("count", len(users)))

	return nil
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
