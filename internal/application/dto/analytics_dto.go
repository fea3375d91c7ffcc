package dto

import "github.com/shopspring/decimal"

// Rangos de fecha aceptados por el endpoint de analítica.
const (
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
)

// TopProductDTO producto con mayor ingreso en el período.
type TopProductDTO struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// DailySalesDTO ventas e ingresos de un día (serie de los últimos 7 días).
type DailySalesDTO struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Sales   int64           `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
}

// AnalyticsSummaryDTO resumen de ventas del período solicitado.
type AnalyticsSummaryDTO struct {
	Range                string           `json:"range"`
	TotalSales           int64            `json:"total_sales"`
	TotalRevenue         decimal.Decimal  `json:"total_revenue"`
	AverageOrderValue    decimal.Decimal  `json:"average_order_value"`
	TopProducts          []TopProductDTO  `json:"top_products"`
	SalesByPaymentMethod map[string]int64 `json:"sales_by_payment_method"`
	DailySales           []DailySalesDTO  `json:"daily_sales"`
}
