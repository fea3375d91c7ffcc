package receipt

import (
	"context"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// StoreInfo datos del comercio que encabezan el recibo.
type StoreInfo struct {
	Name    string
	Address string
	Phone   string
}

// PDFGenerator genera el recibo en PDF a partir de una venta cerrada.
// Lo implementa infrastructure/pdf con Maroto.
type PDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, store StoreInfo) ([]byte, error)
}
