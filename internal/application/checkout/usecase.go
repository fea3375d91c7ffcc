// Package checkout implementa el cierre de venta: transforma un carrito
// finalizado en una Sale persistida y descuenta el stock de cada producto,
// todo dentro de una sola transacción.
package checkout

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/cart"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// CheckoutUseCase cierra ventas de forma transaccional: inserta la venta y
// descuenta el stock por línea con bloqueo de fila (SELECT FOR UPDATE).
// Si cualquier paso falla, no se persiste nada y el carrito del caller
// queda intacto.
type CheckoutUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

// Commit cobra el carrito: valida entradas, arma el carrito con verificación
// de stock, calcula montos en decimal (redondeo a 2 decimales en cada paso)
// y persiste venta + descuentos de stock en una transacción.
//
// Cada llamada crea una venta con ID nuevo; no hay deduplicación. El caller
// debe evitar el doble envío (deshabilitar el botón de cobro en vuelo).
func (uc *CheckoutUseCase) Commit(ctx context.Context, userID string, in dto.CheckoutRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	if !percentInRange(in.DiscountPercent) || !percentInRange(in.TaxPercent) {
		return nil, domain.ErrInvalidInput
	}

	// Cargar productos y armar el carrito (fuera de la tx, solo lectura).
	// El carrito rechaza cantidades que exceden el stock visto aquí; la
	// verificación definitiva vuelve a hacerse dentro de la tx con la fila
	// bloqueada.
	ck := cart.New()
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if err := ck.AddLine(*product, item.Quantity); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	sale := buildSale(ck, in, userID, now)

	// Las filas se bloquean en orden total (por ID de producto): dos cobros
	// concurrentes con productos en común nunca se interbloquean.
	lines := ck.Lines()
	sort.Slice(lines, func(i, j int) bool { return lines[i].Product.ID < lines[j].Product.ID })

	// Transacción: descuenta stock por línea (con bloqueo de fila) e inserta
	// la venta. Cualquier error revierte todo.
	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		for _, line := range lines {
			locked, err := productRepo.GetForUpdate(line.Product.ID)
			if err != nil {
				return err
			}
			if locked == nil {
				return domain.ErrNotFound
			}
			if locked.Stock < line.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := productRepo.UpdateStock(locked.ID, locked.Stock-line.Quantity); err != nil {
				return err
			}
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale), nil
}

// buildSale arma la entidad Sale con el snapshot de líneas y los montos.
//
// Montos (decimal, redondeo half-up a 2 decimales en cada paso):
//
//	subtotal  = Σ precio × cantidad
//	descuento = round2(subtotal × discount% / 100)
//	impuesto  = round2((subtotal − descuento) × tax% / 100)
//	total     = subtotal − descuento + impuesto
func buildSale(ck *cart.Cart, in dto.CheckoutRequest, userID string, now time.Time) *entity.Sale {
	subtotal := ck.Subtotal().Round(2)
	discount := subtotal.Mul(in.DiscountPercent).Div(hundred).Round(2)
	tax := subtotal.Sub(discount).Mul(in.TaxPercent).Div(hundred).Round(2)
	total := subtotal.Sub(discount).Add(tax).Round(2)

	sale := &entity.Sale{
		ID:            uuid.New().String(),
		Subtotal:      subtotal,
		Discount:      discount,
		Tax:           tax,
		Total:         total,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
		CreatedBy:     userID,
	}
	if in.Customer != nil {
		sale.CustomerName = in.Customer.Name
		sale.CustomerPhone = in.Customer.Phone
		sale.CustomerEmail = in.Customer.Email
	}
	for _, line := range ck.Lines() {
		sale.Items = append(sale.Items, entity.SaleItem{
			ID:        uuid.New().String(),
			SaleID:    sale.ID,
			ProductID: line.Product.ID,
			Barcode:   line.Product.Barcode,
			Name:      line.Product.Name,
			Category:  line.Product.Category,
			UnitPrice: line.Product.Price,
			Quantity:  line.Quantity,
			LineTotal: line.Total().Round(2),
		})
	}
	return sale
}

// GetSale obtiene una venta por ID con sus líneas (para recibo/consulta).
func (uc *CheckoutUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// ListSales devuelve el historial de ventas, más recientes primero.
func (uc *CheckoutUseCase) ListSales(ctx context.Context, limit, offset int) (*dto.SaleListResponse, error) {
	sales, err := uc.saleRepo.ListRecent(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func percentInRange(p decimal.Decimal) bool {
	return !p.LessThan(decimal.Zero) && !p.GreaterThan(hundred)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		Items:         make([]dto.SaleItemResponse, 0, len(s.Items)),
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Tax:           s.Tax,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		CustomerEmail: s.CustomerEmail,
		CreatedAt:     s.CreatedAt,
	}
	for _, item := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID: item.ProductID,
			Barcode:   item.Barcode,
			Name:      item.Name,
			Category:  item.Category,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}
	return resp
}
