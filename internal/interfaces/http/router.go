package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/analytics"
	"github.com/jhoicas/PuntoVenta-api/internal/application/auth"
	"github.com/jhoicas/PuntoVenta-api/internal/application/checkout"
	"github.com/jhoicas/PuntoVenta-api/internal/application/receipt"
	"github.com/jhoicas/PuntoVenta-api/internal/application/usecase"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CheckoutUC  *checkout.CheckoutUseCase
	ReceiptUC   *receipt.UseCase
	AnalyticsUC *analytics.SummaryUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Products (protegido; mutaciones solo para admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	adminOnly := RequireRole(entity.RoleAdmin)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CheckoutUC, deps.ReceiptUC)
	sales.Post("/", saleHandler.Checkout)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Analytics (protegido)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analyticsGroup.Get("/", analyticsHandler.GetSummary)
}
