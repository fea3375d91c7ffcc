package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale.
// Las ventas son inmutables: solo hay alta y lectura.
type SaleRepository interface {
	// Create persiste la cabecera y todas sus líneas.
	Create(sale *entity.Sale) error
	// GetByID devuelve la venta con sus líneas, o nil si no existe.
	GetByID(id string) (*entity.Sale, error)
	// ListRecent devuelve las ventas más recientes primero (paginado), con líneas.
	ListRecent(limit, offset int) ([]*entity.Sale, error)
}
