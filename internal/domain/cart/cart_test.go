package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/cart"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func producto(id, name string, price int64, stock int64) entity.Product {
	return entity.Product{
		ID:      id,
		Barcode: "890" + id,
		Name:    name,
		Price:   decimal.NewFromInt(price),
		Stock:   stock,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AddLine
// ──────────────────────────────────────────────────────────────────────────────

func TestAddLine_ProductoNuevoCreaLinea(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddLine(producto("p1", "Bananas", 45, 50), 2))

	assert.Equal(t, 1, c.Len(), "debe haber una sola línea")
	assert.Equal(t, int64(2), c.ItemCount())
	assert.True(t, decimal.NewFromInt(90).Equal(c.Subtotal()), "subtotal = 45 × 2")
}

func TestAddLine_MismoProductoAcumulaCantidad(t *testing.T) {
	c := cart.New()
	p := producto("p1", "Bananas", 45, 50)
	require.NoError(t, c.AddLine(p, 2))
	require.NoError(t, c.AddLine(p, 3))

	assert.Equal(t, 1, c.Len(), "el mismo producto no crea línea nueva")
	assert.Equal(t, int64(5), c.ItemCount(), "las cantidades se acumulan")
}

func TestAddLine_CantidadInvalidaRechazada(t *testing.T) {
	c := cart.New()
	p := producto("p1", "Bananas", 45, 50)

	assert.ErrorIs(t, c.AddLine(p, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, c.AddLine(p, -3), domain.ErrInvalidInput)
	assert.True(t, c.IsEmpty(), "el carrito debe quedar sin cambios")
}

func TestAddLine_ProductoSinStockRechazado(t *testing.T) {
	c := cart.New()
	agotado := producto("p1", "Milk", 55, 0)

	assert.ErrorIs(t, c.AddLine(agotado, 1), domain.ErrOutOfStock)
	assert.True(t, c.IsEmpty())
}

func TestAddLine_CantidadSuperaStockRechazada(t *testing.T) {
	c := cart.New()
	p := producto("p1", "Yogurt", 45, 3)

	assert.ErrorIs(t, c.AddLine(p, 4), domain.ErrInsufficientStock)
	assert.True(t, c.IsEmpty())
}

func TestAddLine_AcumuladoSuperaStockRechazado(t *testing.T) {
	c := cart.New()
	p := producto("p1", "Yogurt", 45, 3)
	require.NoError(t, c.AddLine(p, 2))

	// 2 + 2 > 3 → se rechaza pero la línea existente queda intacta
	assert.ErrorIs(t, c.AddLine(p, 2), domain.ErrInsufficientStock)
	assert.Equal(t, int64(2), c.ItemCount(), "la cantidad previa no debe cambiar")
}

func TestAddLine_StockExactoPermitido(t *testing.T) {
	c := cart.New()
	p := producto("p1", "Butter", 65, 3)

	require.NoError(t, c.AddLine(p, 3), "comprar todo el stock disponible es válido")
	assert.Equal(t, int64(3), c.ItemCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// SetQuantity / RemoveLine / Clear
// ──────────────────────────────────────────────────────────────────────────────

func TestSetQuantity_ReemplazaCantidad(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddLine(producto("p1", "Rice", 65, 30), 2))

	require.NoError(t, c.SetQuantity("p1", 5))
	assert.Equal(t, int64(5), c.ItemCount(), "SetQuantity fija, no acumula")
}

func TestSetQuantity_CeroEliminaLinea(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddLine(producto("p1", "Rice", 65, 30), 2))

	require.NoError(t, c.SetQuantity("p1", 0))
	assert.True(t, c.IsEmpty(), "cantidad 0 debe eliminar la línea")
}

func TestSetQuantity_NegativaEliminaLinea(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddLine(producto("p1", "Rice", 65, 30), 2))

	require.NoError(t, c.SetQuantity("p1", -4))
	assert.True(t, c.IsEmpty())
}

func TestSetQuantity_ProductoAusenteNoOp(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddLine(producto("p1", "Rice", 65, 30), 2))

	require.NoError(t, c.SetQuantity("desconocido", 7))
	assert.Equal(t, int64(2), c.ItemCount(), "un producto ausente no altera el carrito")
}

func TestSetQuantity_SuperaStockRechazada(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddLine(producto("p1", "Yogurt", 45, 3), 2))

	assert.ErrorIs(t, c.SetQuantity("p1", 9), domain.ErrInsufficientStock)
	assert.Equal(t, int64(2), c.ItemCount(), "la cantidad previa se conserva")
}

func TestRemoveLine_EliminaYPreservaOrden(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddLine(producto("p1", "Bananas", 45, 50), 1))
	require.NoError(t, c.AddLine(producto("p2", "Milk", 55, 20), 1))
	require.NoError(t, c.AddLine(producto("p3", "Rice", 65, 30), 1))

	c.RemoveLine("p2")

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "p1", lines[0].Product.ID, "el orden de inserción se mantiene")
	assert.Equal(t, "p3", lines[1].Product.ID)
}

func TestClear_VaciaElCarrito(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddLine(producto("p1", "Bananas", 45, 50), 2))

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, decimal.Zero.Equal(c.Subtotal()))

	// El carrito sigue siendo usable después de Clear
	require.NoError(t, c.AddLine(producto("p2", "Milk", 55, 20), 1))
	assert.Equal(t, 1, c.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// Subtotal / Lines
// ──────────────────────────────────────────────────────────────────────────────

func TestSubtotal_SumaTodasLasLineas(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddLine(producto("p1", "Bananas", 45, 50), 2))  // 90
	require.NoError(t, c.AddLine(producto("p2", "Apples", 120, 30), 1)) // 120

	assert.True(t, decimal.NewFromInt(210).Equal(c.Subtotal()), "subtotal = 90 + 120")
	assert.Equal(t, int64(3), c.ItemCount())
}

func TestLines_DevuelveCopiaIndependiente(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddLine(producto("p1", "Bananas", 45, 50), 2))

	snapshot := c.Lines()
	require.NoError(t, c.SetQuantity("p1", 9))

	assert.Equal(t, int64(2), snapshot[0].Quantity,
		"mutar el carrito no debe afectar la copia devuelta")
}
