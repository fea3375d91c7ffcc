package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
// Las ventas son inmutables: no hay UPDATE ni DELETE.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta y todas sus líneas.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales (id, subtotal, discount, tax, total, payment_method, customer_name, customer_phone, customer_email, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Subtotal, sale.Discount, sale.Tax, sale.Total, sale.PaymentMethod,
		nullIfEmpty(sale.CustomerName), nullIfEmpty(sale.CustomerPhone), nullIfEmpty(sale.CustomerEmail),
		sale.CreatedAt, nullIfEmpty(sale.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for i := range sale.Items {
		item := &sale.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.SaleID = sale.ID
		itemQuery := `
			INSERT INTO sale_items (id, sale_id, position, product_id, barcode, name, category, unit_price, quantity, line_total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
		_, err := r.q.Exec(context.Background(), itemQuery,
			item.ID, item.SaleID, i, item.ProductID, item.Barcode, item.Name,
			item.Category, item.UnitPrice, item.Quantity, item.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID devuelve la venta con sus líneas, o nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, subtotal, discount, tax, total, payment_method,
		       COALESCE(customer_name, ''), COALESCE(customer_phone, ''), COALESCE(customer_email, ''),
		       created_at, COALESCE(created_by, '')
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Subtotal, &s.Discount, &s.Tax, &s.Total, &s.PaymentMethod,
		&s.CustomerName, &s.CustomerPhone, &s.CustomerEmail, &s.CreatedAt, &s.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.itemsBySaleIDs([]string{s.ID})
	if err != nil {
		return nil, err
	}
	s.Items = items[s.ID]
	return &s, nil
}

// ListRecent devuelve las ventas más recientes primero, con sus líneas.
func (r *SaleRepo) ListRecent(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, subtotal, discount, tax, total, payment_method,
		       COALESCE(customer_name, ''), COALESCE(customer_phone, ''), COALESCE(customer_email, ''),
		       created_at, COALESCE(created_by, '')
		FROM sales ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	var ids []string
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Subtotal, &s.Discount, &s.Tax, &s.Total, &s.PaymentMethod,
			&s.CustomerName, &s.CustomerPhone, &s.CustomerEmail, &s.CreatedAt, &s.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return sales, nil
	}

	items, err := r.itemsBySaleIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, s := range sales {
		s.Items = items[s.ID]
	}
	return sales, nil
}

// itemsBySaleIDs carga las líneas de un conjunto de ventas en una sola consulta,
// agrupadas por venta y en orden de inserción.
func (r *SaleRepo) itemsBySaleIDs(saleIDs []string) (map[string][]entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, barcode, name, category, unit_price, quantity, line_total
		FROM sale_items WHERE sale_id = ANY($1) ORDER BY sale_id, position`
	rows, err := r.q.Query(context.Background(), query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.SaleItem, len(saleIDs))
	for rows.Next() {
		var item entity.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.Barcode, &item.Name,
			&item.Category, &item.UnitPrice, &item.Quantity, &item.LineTotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		out[item.SaleID] = append(out[item.SaleID], item)
	}
	return out, rows.Err()
}
