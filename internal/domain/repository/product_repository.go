package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Se inyecta en los casos de uso; los tests lo sustituyen por un fake en memoria.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	// Search busca por barcode exacto; si no hay coincidencia, por nombre.
	Search(query string) (*entity.Product, error)
	// List devuelve el catálogo ordenado por nombre (paginado).
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock fija el stock absoluto del producto y refresca updated_at.
	UpdateStock(id string, stock int64) error
}
