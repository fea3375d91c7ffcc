// Package receipt genera el recibo PDF de una venta cerrada.
// Es un consumidor aguas abajo: lee la venta, nunca la modifica.
package receipt

import (
	"context"
	"fmt"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// UseCase arma el PDF del recibo de una venta.
type UseCase struct {
	saleRepo  repository.SaleRepository
	generator PDFGenerator
	store     StoreInfo
}

// NewUseCase construye el caso de uso.
func NewUseCase(saleRepo repository.SaleRepository, generator PDFGenerator, store StoreInfo) *UseCase {
	return &UseCase{saleRepo: saleRepo, generator: generator, store: store}
}

// GenerateBySaleID busca la venta y genera su recibo en PDF.
func (uc *UseCase) GenerateBySaleID(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	pdf, err := uc.generator.GenerateReceiptPDF(ctx, sale, uc.store)
	if err != nil {
		return nil, fmt.Errorf("generar recibo: %w", err)
	}
	return pdf, nil
}
