package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult producto agregado por ingresos en un período.
type TopProductResult struct {
	ProductID string
	Name      string
	Quantity  int64
	Revenue   decimal.Decimal
}

// PaymentMethodCount número de ventas por método de pago.
type PaymentMethodCount struct {
	PaymentMethod string
	Count         int64
}

// SaleTimelineResult instante y total de una venta individual. La agregación
// por día la hace la aplicación, con un solo reloj: agrupar en SQL dependería
// de la zona horaria de la sesión de la base de datos.
type SaleTimelineResult struct {
	CreatedAt time.Time
	Total     decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura sobre el historial de ventas.
type AnalyticsRepository interface {
	// GetSalesSummary devuelve número de ventas e ingresos totales del período.
	GetSalesSummary(ctx context.Context, from, to time.Time) (count int64, revenue decimal.Decimal, err error)
	// GetTopProducts devuelve los `limit` productos con mayor ingreso del período.
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductResult, error)
	// GetSalesByPaymentMethod agrupa el número de ventas por método de pago.
	GetSalesByPaymentMethod(ctx context.Context, from, to time.Time) ([]PaymentMethodCount, error)
	// GetSalesTimeline devuelve las ventas individuales (instante y total) entre from y to.
	GetSalesTimeline(ctx context.Context, from, to time.Time) ([]SaleTimelineResult, error)
}
