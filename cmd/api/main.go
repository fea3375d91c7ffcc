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

	appanalytics "github.com/jhoicas/PuntoVenta-api/internal/application/analytics"
	"github.com/jhoicas/PuntoVenta-api/internal/application/auth"
	"github.com/jhoicas/PuntoVenta-api/internal/application/checkout"
	"github.com/jhoicas/PuntoVenta-api/internal/application/receipt"
	"github.com/jhoicas/PuntoVenta-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/PuntoVenta-api/internal/infrastructure/pdf"
	"github.com/jhoicas/PuntoVenta-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/PuntoVenta-api/internal/interfaces/http"
	"github.com/jhoicas/PuntoVenta-api/pkg/config"
	"github.com/jhoicas/PuntoVenta-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	checkoutUC := checkout.NewCheckoutUseCase(txRunner, productRepo, saleRepo)
	analyticsUC := appanalytics.NewSummaryUseCase(analyticsRepo)

	// PDF: recibo de venta
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := receipt.NewUseCase(saleRepo, pdfGenerator, receipt.StoreInfo{
		Name:    cfg.Store.Name,
		Address: cfg.Store.Address,
		Phone:   cfg.Store.Phone,
	})

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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PuntoVenta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CheckoutUC:  checkoutUC,
		ReceiptUC:   receiptUC,
		AnalyticsUC: analyticsUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
