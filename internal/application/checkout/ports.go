package checkout

import (
	"context"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La venta y los descuentos de stock se
// confirman juntos o se revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}
