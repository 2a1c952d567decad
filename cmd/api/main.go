package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/kardelen/uretim-api/docs"
	"github.com/kardelen/uretim-api/internal/application/auth"
	appprod "github.com/kardelen/uretim-api/internal/application/production"
	"github.com/kardelen/uretim-api/internal/application/shipment"
	"github.com/kardelen/uretim-api/internal/application/usecase"
	"github.com/kardelen/uretim-api/internal/application/warehouse"
	"github.com/kardelen/uretim-api/internal/infrastructure/audit"
	"github.com/kardelen/uretim-api/internal/infrastructure/postgres"
	httpRouter "github.com/kardelen/uretim-api/internal/interfaces/http"
	"github.com/kardelen/uretim-api/pkg/config"
	"github.com/kardelen/uretim-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("yapılandırma yüklenemedi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("uygulama başlıyor")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL bağlantısı")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	logRepo := postgres.NewProductionLogRepository(pool)
	locationRepo := postgres.NewInventoryLocationRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	auditSink := audit.NewSink(log)

	productUC := usecase.NewProductUseCase(productRepo, logRepo, locationRepo)
	stageEditUC := appprod.NewStageEditUseCase(txRunner, auditSink)
	transferUC := warehouse.NewTransferUseCase(txRunner, auditSink)
	allocUC := shipment.NewAllocationUseCase(txRunner, auditSink)
	shipQueryUC := shipment.NewQueryUseCase(shipmentRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Üretim API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		StageEditUC: stageEditUC,
		TransferUC:  transferUC,
		AllocUC:     allocUC,
		ShipQueryUC: shipQueryUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP sunucusu sonlandı")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("kapanış sinyali alındı, sunucu kapatılıyor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("sunucu kapatma")
	}

	log.Info().Msg("uygulama durdu")
}
