package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, barcode, name, price, stock, category, description, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, barcode, name, price, stock, category, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Barcode, product.Name, product.Price, product.Stock,
		product.Category, nullIfEmpty(product.Description), product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetByBarcode obtiene un producto por barcode exacto. Devuelve nil si no existe.
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, barcode), "get product by barcode")
}

// Search busca primero por barcode exacto; si no hay coincidencia, por nombre
// (ILIKE, primera coincidencia en orden alfabético).
func (r *ProductRepo) Search(q string) (*entity.Product, error) {
	product, err := r.GetByBarcode(q)
	if err != nil || product != nil {
		return product, err
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE name ILIKE '%' || $1 || '%' ORDER BY name LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, q), "search product")
}

// List lista el catálogo ordenado por nombre, con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var description *string
		if err := rows.Scan(&p.ID, &p.Barcode, &p.Name, &p.Price, &p.Stock,
			&p.Category, &description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if description != nil {
			p.Description = *description
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente (incluido el stock: ajustes manuales del admin).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET barcode = $2, name = $3, price = $4, stock = $5, category = $6, description = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Barcode, product.Name, product.Price, product.Stock,
		product.Category, nullIfEmpty(product.Description), product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción (TxRunner).
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// UpdateStock fija el stock absoluto y refresca updated_at. El CHECK stock >= 0
// de la tabla es la última barrera contra stock negativo.
func (r *ProductRepo) UpdateStock(id string, stock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	var description *string
	err := row.Scan(&p.ID, &p.Barcode, &p.Name, &p.Price, &p.Stock,
		&p.Category, &description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if description != nil {
		p.Description = *description
	}
	return &p, nil
}
