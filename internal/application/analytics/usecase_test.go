package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/application/analytics"
	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de AnalyticsRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeAnalyticsRepo struct {
	count    int64
	revenue  decimal.Decimal
	top      []repository.TopProductResult
	methods  []repository.PaymentMethodCount
	timeline []repository.SaleTimelineResult

	summaryErr error

	// capturas de los argumentos recibidos
	summaryFrom, summaryTo time.Time
	topLimit               int
	dailyFrom, dailyTo     time.Time
}

var _ repository.AnalyticsRepository = (*fakeAnalyticsRepo)(nil)

func (f *fakeAnalyticsRepo) GetSalesSummary(_ context.Context, from, to time.Time) (int64, decimal.Decimal, error) {
	f.summaryFrom, f.summaryTo = from, to
	return f.count, f.revenue, f.summaryErr
}

func (f *fakeAnalyticsRepo) GetTopProducts(_ context.Context, _, _ time.Time, limit int) ([]repository.TopProductResult, error) {
	f.topLimit = limit
	return f.top, nil
}

func (f *fakeAnalyticsRepo) GetSalesByPaymentMethod(_ context.Context, _, _ time.Time) ([]repository.PaymentMethodCount, error) {
	return f.methods, nil
}

func (f *fakeAnalyticsRepo) GetSalesTimeline(_ context.Context, from, to time.Time) ([]repository.SaleTimelineResult, error) {
	f.dailyFrom, f.dailyTo = from, to
	return f.timeline, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_ResumenCompleto(t *testing.T) {
	hoy := time.Now()
	repo := &fakeAnalyticsRepo{
		count:   4,
		revenue: decimal.NewFromFloat(793.80),
		top: []repository.TopProductResult{
			{ProductID: "p2", Name: "Apples (1kg)", Quantity: 3, Revenue: decimal.NewFromInt(360)},
			{ProductID: "p1", Name: "Bananas (1kg)", Quantity: 5, Revenue: decimal.NewFromInt(225)},
		},
		methods: []repository.PaymentMethodCount{
			{PaymentMethod: "cash", Count: 3},
			{PaymentMethod: "card", Count: 1},
		},
		timeline: []repository.SaleTimelineResult{
			{CreatedAt: hoy, Total: decimal.NewFromFloat(793.80)},
		},
	}
	uc := analytics.NewSummaryUseCase(repo)

	out, err := uc.GetSummary(context.Background(), dto.RangeToday)
	require.NoError(t, err)

	assert.Equal(t, dto.RangeToday, out.Range)
	assert.Equal(t, int64(4), out.TotalSales)
	assert.Equal(t, "793.8", out.TotalRevenue.String())
	assert.Equal(t, "198.45", out.AverageOrderValue.String(), "ticket promedio = 793.80 / 4")

	require.Len(t, out.TopProducts, 2)
	assert.Equal(t, "Apples (1kg)", out.TopProducts[0].Name, "ordenado por ingresos")
	assert.Equal(t, 5, repo.topLimit, "el widget pide top 5")

	assert.Equal(t, int64(3), out.SalesByPaymentMethod["cash"])
	assert.Equal(t, int64(1), out.SalesByPaymentMethod["card"])
}

func TestGetSummary_SinVentas_PromedioCero(t *testing.T) {
	repo := &fakeAnalyticsRepo{count: 0, revenue: decimal.Zero}
	uc := analytics.NewSummaryUseCase(repo)

	out, err := uc.GetSummary(context.Background(), dto.RangeWeek)
	require.NoError(t, err)

	assert.Equal(t, int64(0), out.TotalSales)
	assert.True(t, out.AverageOrderValue.IsZero(), "sin ventas el promedio es 0, no una división por cero")
}

func TestGetSummary_RangoInvalidoRechazado(t *testing.T) {
	uc := analytics.NewSummaryUseCase(&fakeAnalyticsRepo{})

	_, err := uc.GetSummary(context.Background(), "year")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetSummary_ErrorDelRepositorioSePropaga(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := analytics.NewSummaryUseCase(&fakeAnalyticsRepo{summaryErr: boom})

	_, err := uc.GetSummary(context.Background(), dto.RangeToday)
	assert.ErrorIs(t, err, boom)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rangos de fecha y serie diaria
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_RangoToday_DesdeMedianoche(t *testing.T) {
	repo := &fakeAnalyticsRepo{revenue: decimal.Zero}
	uc := analytics.NewSummaryUseCase(repo)

	_, err := uc.GetSummary(context.Background(), dto.RangeToday)
	require.NoError(t, err)

	assert.Equal(t, 0, repo.summaryFrom.Hour(), "today inicia a medianoche local")
	assert.Equal(t, 0, repo.summaryFrom.Minute())
	assert.True(t, repo.summaryTo.After(repo.summaryFrom))
}

func TestGetSummary_RangoWeek_Ultimos7Dias(t *testing.T) {
	repo := &fakeAnalyticsRepo{revenue: decimal.Zero}
	uc := analytics.NewSummaryUseCase(repo)

	_, err := uc.GetSummary(context.Background(), dto.RangeWeek)
	require.NoError(t, err)

	dias := repo.summaryTo.Sub(repo.summaryFrom).Hours() / 24
	assert.InDelta(t, 7, dias, 0.1, "week cubre los últimos 7 días")
}

func TestGetSummary_SerieDiariaCubre7DiasConCeros(t *testing.T) {
	ahora := time.Now()
	// Mediodía de ayer: sumar una hora nunca cambia de día.
	ayer := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 12, 0, 0, 0, ahora.Location()).AddDate(0, 0, -1)
	repo := &fakeAnalyticsRepo{
		revenue: decimal.Zero,
		timeline: []repository.SaleTimelineResult{
			{CreatedAt: ayer, Total: decimal.NewFromInt(60)},
			{CreatedAt: ayer.Add(time.Hour), Total: decimal.NewFromInt(50)},
		},
	}
	uc := analytics.NewSummaryUseCase(repo)

	out, err := uc.GetSummary(context.Background(), dto.RangeMonth)
	require.NoError(t, err)

	require.Len(t, out.DailySales, 7, "la serie siempre tiene 7 días")

	conVentas := 0
	for _, d := range out.DailySales {
		if d.Sales > 0 {
			conVentas++
			assert.Equal(t, ayer.Format("2006-01-02"), d.Date)
			assert.Equal(t, "110", d.Revenue.String())
		} else {
			assert.True(t, d.Revenue.IsZero(), "los días sin ventas van en cero")
		}
	}
	assert.Equal(t, 1, conVentas, "solo un día tiene ventas")

	// La serie es contigua y termina hoy
	ultimo := out.DailySales[len(out.DailySales)-1].Date
	assert.Equal(t, time.Now().Format("2006-01-02"), ultimo)
}

func TestGetSummary_SerieDiaria_AgrupaPorInstanteNoPorRepresentacion(t *testing.T) {
	ahora := time.Now()
	ayer := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 12, 0, 0, 0, ahora.Location()).AddDate(0, 0, -1)

	// El mismo instante en tres representaciones: local, UTC y un offset
	// arbitrario. Una venta a la 01:00 local llega de Postgres como la
	// noche anterior en UTC; las tres deben caer en la barra del día local.
	repo := &fakeAnalyticsRepo{
		revenue: decimal.Zero,
		timeline: []repository.SaleTimelineResult{
			{CreatedAt: ayer, Total: decimal.NewFromInt(10)},
			{CreatedAt: ayer.UTC(), Total: decimal.NewFromInt(20)},
			{CreatedAt: ayer.In(time.FixedZone("UTC+14", 14*3600)), Total: decimal.NewFromInt(30)},
		},
	}
	uc := analytics.NewSummaryUseCase(repo)

	out, err := uc.GetSummary(context.Background(), dto.RangeToday)
	require.NoError(t, err)

	conVentas := 0
	for _, d := range out.DailySales {
		if d.Sales > 0 {
			conVentas++
			assert.Equal(t, ayer.Format("2006-01-02"), d.Date)
			assert.Equal(t, int64(3), d.Sales)
			assert.Equal(t, "60", d.Revenue.String())
		}
	}
	assert.Equal(t, 1, conVentas, "un mismo instante no se reparte en varias barras")
}
