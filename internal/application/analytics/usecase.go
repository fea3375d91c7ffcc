// Package analytics contiene el caso de uso del resumen de ventas
// (panel de analítica del punto de venta).
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

const (
	summaryTopProducts = 5 // productos en el widget de más vendidos
	dailySeriesDays    = 7 // días de la serie diaria
)

// SummaryUseCase genera el resumen de ventas de un rango (today/week/month).
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No toca la tabla de ventas directamente; delega todo en el repositorio.
type SummaryUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(analyticsRepo repository.AnalyticsRepository) *SummaryUseCase {
	return &SummaryUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el AnalyticsSummaryDTO del rango indicado.
//
// Cuatro consultas en paralelo:
//  1. GetSalesSummary(rango)          → TotalSales + TotalRevenue
//  2. GetTopProducts(rango, top 5)    → TopProducts
//  3. GetSalesByPaymentMethod(rango)  → SalesByPaymentMethod
//  4. GetSalesTimeline(últimos 7 días) → DailySales (agregada aquí, un solo reloj)
func (uc *SummaryUseCase) GetSummary(ctx context.Context, dateRange string) (*dto.AnalyticsSummaryDTO, error) {
	from, to, err := rangeBounds(dateRange, time.Now())
	if err != nil {
		return nil, err
	}

	type summaryResult struct {
		count   int64
		revenue decimal.Decimal
		err     error
	}
	type topResult struct {
		products []repository.TopProductResult
		err      error
	}
	type methodsResult struct {
		methods []repository.PaymentMethodCount
		err     error
	}
	type dailyResult struct {
		sales []repository.SaleTimelineResult
		err   error
	}

	summaryCh := make(chan summaryResult, 1)
	topCh := make(chan topResult, 1)
	methodsCh := make(chan methodsResult, 1)
	dailyCh := make(chan dailyResult, 1)

	// La serie diaria siempre cubre los últimos 7 días, independiente del rango.
	dailyFrom := startOfDay(to).AddDate(0, 0, -(dailySeriesDays - 1))

	go func() {
		count, revenue, err := uc.analyticsRepo.GetSalesSummary(ctx, from, to)
		summaryCh <- summaryResult{count, revenue, err}
	}()
	go func() {
		products, err := uc.analyticsRepo.GetTopProducts(ctx, from, to, summaryTopProducts)
		topCh <- topResult{products, err}
	}()
	go func() {
		methods, err := uc.analyticsRepo.GetSalesByPaymentMethod(ctx, from, to)
		methodsCh <- methodsResult{methods, err}
	}()
	go func() {
		sales, err := uc.analyticsRepo.GetSalesTimeline(ctx, dailyFrom, to)
		dailyCh <- dailyResult{sales, err}
	}()

	summary := <-summaryCh
	top := <-topCh
	methods := <-methodsCh
	daily := <-dailyCh

	if summary.err != nil {
		return nil, fmt.Errorf("analytics: resumen de ventas: %w", summary.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("analytics: top productos: %w", top.err)
	}
	if methods.err != nil {
		return nil, fmt.Errorf("analytics: ventas por método de pago: %w", methods.err)
	}
	if daily.err != nil {
		return nil, fmt.Errorf("analytics: serie diaria: %w", daily.err)
	}

	out := &dto.AnalyticsSummaryDTO{
		Range:                dateRange,
		TotalSales:           summary.count,
		TotalRevenue:         summary.revenue.Round(2),
		AverageOrderValue:    averageOrderValue(summary.revenue, summary.count),
		TopProducts:          make([]dto.TopProductDTO, 0, len(top.products)),
		SalesByPaymentMethod: make(map[string]int64, len(methods.methods)),
		DailySales:           buildDailySeries(daily.sales, dailyFrom, dailySeriesDays),
	}
	for _, p := range top.products {
		out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
			Name:     p.Name,
			Quantity: p.Quantity,
			Revenue:  p.Revenue.Round(2),
		})
	}
	for _, m := range methods.methods {
		out.SalesByPaymentMethod[m.PaymentMethod] = m.Count
	}
	return out, nil
}

// rangeBounds traduce el rango a [from, to]: today = desde medianoche local,
// week = últimos 7 días, month = últimos 30 días.
func rangeBounds(dateRange string, now time.Time) (from, to time.Time, err error) {
	switch dateRange {
	case dto.RangeToday:
		return startOfDay(now), now, nil
	case dto.RangeWeek:
		return now.AddDate(0, 0, -7), now, nil
	case dto.RangeMonth:
		return now.AddDate(0, 0, -30), now, nil
	default:
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func averageOrderValue(revenue decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(count)).Round(2)
}

// buildDailySeries materializa una serie continua de `days` días: los días
// sin ventas aparecen con ceros, como espera la gráfica del panel.
//
// Cada venta se asigna al día según la zona horaria de `from`, sin importar
// cómo venga representado el instante (UTC, local u otro offset): el día de
// una venta es siempre el de un solo reloj.
func buildDailySeries(rows []repository.SaleTimelineResult, from time.Time, days int) []dto.DailySalesDTO {
	type bucket struct {
		sales   int64
		revenue decimal.Decimal
	}
	loc := from.Location()
	byDate := make(map[string]*bucket, days)
	for _, r := range rows {
		key := r.CreatedAt.In(loc).Format("2006-01-02")
		b, ok := byDate[key]
		if !ok {
			b = &bucket{revenue: decimal.Zero}
			byDate[key] = b
		}
		b.sales++
		b.revenue = b.revenue.Add(r.Total)
	}
	series := make([]dto.DailySalesDTO, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i).Format("2006-01-02")
		day := dto.DailySalesDTO{Date: date, Revenue: decimal.Zero}
		if b, ok := byDate[date]; ok {
			day.Sales = b.sales
			day.Revenue = b.revenue.Round(2)
		}
		series = append(series, day)
	}
	return series
}
