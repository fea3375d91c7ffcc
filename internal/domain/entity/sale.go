package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)

// ValidPaymentMethod verifica que el método de pago sea uno de los aceptados.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentUPI
}

// SaleItem es una línea de venta: snapshot del producto al momento del cobro.
// Se copia barcode, nombre y precio para que la venta quede íntegra aunque
// el producto cambie o se elimine después.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Barcode   string
	Name      string
	Category  string
	UnitPrice decimal.Decimal
	Quantity  int64
	LineTotal decimal.Decimal // UnitPrice × Quantity
}

// Sale representa una venta cerrada. Inmutable: se crea una sola vez en el
// checkout y nunca se actualiza ni elimina desde la aplicación.
type Sale struct {
	ID            string
	Items         []SaleItem
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal // monto descontado (no el porcentaje)
	Tax           decimal.Decimal // monto de impuesto
	Total         decimal.Decimal // Subtotal - Discount + Tax
	PaymentMethod string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	CreatedAt     time.Time
	CreatedBy     string // usuario (cajero) que cerró la venta
}
