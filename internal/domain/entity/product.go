package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo del punto de venta.
// Barcode es único en todo el catálogo; Stock nunca baja de cero
// (CHECK en la tabla + verificación con bloqueo de fila en el checkout).
type Product struct {
	ID          string
	Barcode     string
	Name        string
	Price       decimal.Decimal // precio unitario de venta
	Stock       int64
	Category    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InStock indica si el producto tiene unidades disponibles.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
