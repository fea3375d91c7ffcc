package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Barcode     string          `json:"barcode" validate:"required,min=1,max=64"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock" validate:"min=0"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Barcode     *string          `json:"barcode" validate:"omitempty,min=1,max=64"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int64           `json:"stock" validate:"omitempty,min=0"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Barcode     string          `json:"barcode"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos (ordenada por nombre).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
