// Package cart implementa el carrito de compra del punto de venta:
// líneas producto+cantidad ordenadas por inserción, con verificación de
// stock en el propio dominio (no depende de que la UI deshabilite botones)
// y cálculo de subtotal en decimal.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// Line es una línea del carrito: snapshot del producto más la cantidad.
type Line struct {
	Product  entity.Product
	Quantity int64
}

// Total devuelve precio × cantidad de la línea.
func (l Line) Total() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// Cart mantiene las líneas en orden de inserción e indexadas por producto.
// Estado puramente en memoria; ninguna operación hace I/O.
// No es seguro para uso concurrente: cada sesión de caja tiene su carrito.
type Cart struct {
	lines []*Line
	index map[string]*Line // product id -> línea
}

// New crea un carrito vacío.
func New() *Cart {
	return &Cart{index: make(map[string]*Line)}
}

// AddLine agrega quantity unidades del producto. Si ya hay una línea para el
// producto, incrementa su cantidad. La cantidad resultante no puede superar
// el stock del producto: en ese caso retorna ErrInsufficientStock y el
// carrito queda sin cambios. Un producto sin stock se rechaza con
// ErrOutOfStock antes de entrar al carrito.
func (c *Cart) AddLine(product entity.Product, quantity int64) error {
	if quantity < 1 {
		return domain.ErrInvalidInput
	}
	if !product.InStock() {
		return domain.ErrOutOfStock
	}
	if line, ok := c.index[product.ID]; ok {
		if line.Quantity+quantity > line.Product.Stock {
			return domain.ErrInsufficientStock
		}
		line.Quantity += quantity
		return nil
	}
	if quantity > product.Stock {
		return domain.ErrInsufficientStock
	}
	line := &Line{Product: product, Quantity: quantity}
	c.lines = append(c.lines, line)
	c.index[product.ID] = line
	return nil
}

// SetQuantity reemplaza la cantidad de la línea del producto. Cantidad <= 0
// elimina la línea. Si el producto no está en el carrito, no hace nada.
func (c *Cart) SetQuantity(productID string, quantity int64) error {
	line, ok := c.index[productID]
	if !ok {
		return nil
	}
	if quantity <= 0 {
		c.RemoveLine(productID)
		return nil
	}
	if quantity > line.Product.Stock {
		return domain.ErrInsufficientStock
	}
	line.Quantity = quantity
	return nil
}

// RemoveLine elimina la línea del producto si existe.
func (c *Cart) RemoveLine(productID string) {
	if _, ok := c.index[productID]; !ok {
		return
	}
	delete(c.index, productID)
	for i, line := range c.lines {
		if line.Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]*Line)
}

// Subtotal suma precio × cantidad de todas las líneas.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Total())
	}
	return total
}

// ItemCount suma las cantidades de todas las líneas.
func (c *Cart) ItemCount() int64 {
	var count int64
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Len devuelve el número de líneas distintas.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines devuelve una copia profunda e independiente de las líneas, en orden
// de inserción. Mutar el carrito después no afecta la copia devuelta.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	return out
}
