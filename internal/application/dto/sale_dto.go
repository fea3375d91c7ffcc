package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutItemRequest una línea del carrito a cobrar.
type CheckoutItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// CustomerInfoRequest datos opcionales del cliente para el recibo.
type CustomerInfoRequest struct {
	Name  string `json:"name" validate:"omitempty,max=200"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
	Email string `json:"email" validate:"omitempty,email"`
}

// CheckoutRequest entrada del checkout: carrito finalizado más ajustes.
// DiscountPercent y TaxPercent son porcentajes en [0, 100].
type CheckoutRequest struct {
	Items           []CheckoutItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod   string                `json:"payment_method" validate:"required,oneof=cash card upi"`
	Customer        *CustomerInfoRequest  `json:"customer"`
	DiscountPercent decimal.Decimal       `json:"discount_percent"`
	TaxPercent      decimal.Decimal       `json:"tax_percent"`
}

// SaleItemResponse línea de venta persistida (snapshot del producto).
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Barcode   string          `json:"barcode"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// SaleResponse venta persistida, lista para el recibo.
type SaleResponse struct {
	ID            string             `json:"id"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Discount      decimal.Decimal    `json:"discount"`
	Tax           decimal.Decimal    `json:"tax"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	CustomerName  string             `json:"customer_name,omitempty"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	CustomerEmail string             `json:"customer_email,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// SaleListResponse historial de ventas paginado, más recientes primero.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
