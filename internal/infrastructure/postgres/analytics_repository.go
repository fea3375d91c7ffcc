package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre el historial de ventas.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesSummary devuelve número de ventas e ingresos totales del período.
// COALESCE devuelve cero si no hay filas (período sin ventas).
func (r *AnalyticsRepo) GetSalesSummary(
	ctx context.Context,
	from, to time.Time,
) (count int64, revenue decimal.Decimal, err error) {
	const query = `
	SELECT
	    COUNT(*)                 AS sales_count,
	    COALESCE(SUM(total), 0)  AS revenue
	FROM sales
	WHERE created_at BETWEEN $1 AND $2`

	err = r.pool.QueryRow(ctx, query, from, to).Scan(&count, &revenue)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("analytics.GetSalesSummary: %w", err)
	}
	return count, revenue, nil
}

// GetTopProducts devuelve los `limit` productos con mayor ingreso del período.
// Agrupa por nombre del snapshot de la línea, no por producto vivo: el ranking
// sigue siendo correcto aunque el producto se renombre o elimine después.
func (r *AnalyticsRepo) GetTopProducts(
	ctx context.Context,
	from, to time.Time,
	limit int,
) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    MAX(i.product_id)   AS product_id,
	    i.name,
	    SUM(i.quantity)     AS quantity_sold,
	    SUM(i.line_total)   AS revenue
	FROM sale_items i
	JOIN sales s ON s.id = i.sale_id
	WHERE s.created_at BETWEEN $1 AND $2
	GROUP BY i.name
	ORDER BY revenue DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Quantity, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetSalesByPaymentMethod agrupa el número de ventas por método de pago.
func (r *AnalyticsRepo) GetSalesByPaymentMethod(
	ctx context.Context,
	from, to time.Time,
) ([]repository.PaymentMethodCount, error) {
	const query = `
	SELECT payment_method, COUNT(*) AS sales_count
	FROM sales
	WHERE created_at BETWEEN $1 AND $2
	GROUP BY payment_method
	ORDER BY sales_count DESC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetSalesByPaymentMethod: %w", err)
	}
	defer rows.Close()

	var results []repository.PaymentMethodCount
	for rows.Next() {
		var row repository.PaymentMethodCount
		if err := rows.Scan(&row.PaymentMethod, &row.Count); err != nil {
			return nil, fmt.Errorf("analytics.GetSalesByPaymentMethod scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetSalesTimeline devuelve las ventas individuales del período, ordenadas
// por fecha. No agrega por día a propósito: date_trunc trunca en la zona
// horaria de la sesión de Postgres, que no tiene por qué coincidir con la de
// la aplicación. El use case agrupa los instantes con su propio reloj.
func (r *AnalyticsRepo) GetSalesTimeline(
	ctx context.Context,
	from, to time.Time,
) ([]repository.SaleTimelineResult, error) {
	const query = `
	SELECT created_at, total
	FROM sales
	WHERE created_at BETWEEN $1 AND $2
	ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetSalesTimeline: %w", err)
	}
	defer rows.Close()

	var results []repository.SaleTimelineResult
	for rows.Next() {
		var row repository.SaleTimelineResult
		if err := rows.Scan(&row.CreatedAt, &row.Total); err != nil {
			return nil, fmt.Errorf("analytics.GetSalesTimeline scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
