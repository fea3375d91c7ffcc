// seed puebla el catálogo de productos con datos de demostración de un
// supermercado. Los barcodes existentes se saltan, así que el comando es
// seguro de ejecutar más de una vez.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/infrastructure/postgres"
	"github.com/jhoicas/PuntoVenta-api/pkg/config"
)

type seedProduct struct {
	name        string
	price       int64
	barcode     string
	category    string
	description string
	stock       int64
}

var catalog = []seedProduct{
	// Frutas y verduras
	{"Bananas (1kg)", 45, "8901030875021", "Fruits", "Fresh yellow bananas", 50},
	{"Apples (1kg)", 120, "8901030875038", "Fruits", "Red delicious apples", 30},
	{"Onions (1kg)", 35, "8901030875045", "Vegetables", "Fresh red onions", 40},
	{"Tomatoes (1kg)", 60, "8901030875052", "Vegetables", "Fresh red tomatoes", 25},
	{"Potatoes (1kg)", 25, "8901030875069", "Vegetables", "Fresh potatoes", 60},
	{"Carrots (500g)", 30, "8901030875076", "Vegetables", "Fresh orange carrots", 35},

	// Lácteos
	{"Milk (1L)", 55, "8901030875083", "Dairy", "Fresh full cream milk", 20},
	{"Yogurt (400g)", 45, "8901030875090", "Dairy", "Natural yogurt", 15},
	{"Cheese Slices (200g)", 85, "8901030875106", "Dairy", "Processed cheese slices", 12},
	{"Butter (100g)", 65, "8901030875113", "Dairy", "Fresh butter", 18},

	// Bebidas
	{"Coca Cola (500ml)", 40, "8901030875120", "Beverages", "Refreshing cola drink", 50},
	{"Pepsi (500ml)", 40, "8901030875137", "Beverages", "Pepsi cola drink", 45},
	{"Orange Juice (1L)", 80, "8901030875144", "Beverages", "Fresh orange juice", 20},
	{"Water Bottle (1L)", 20, "8901030875151", "Beverages", "Mineral water", 100},

	// Snacks y confitería
	{"Lays Chips (50g)", 20, "8901030875168", "Snacks", "Potato chips", 40},
	{"Biscuits (200g)", 35, "8901030875175", "Snacks", "Cream biscuits", 30},
	{"Chocolate Bar (50g)", 45, "8901030875182", "Confectionery", "Milk chocolate", 25},
	{"Candy (100g)", 25, "8901030875199", "Confectionery", "Mixed fruit candy", 35},

	// Granos y legumbres
	{"Rice (1kg)", 65, "8901030875205", "Grains", "Basmati rice", 30},
	{"Wheat Flour (1kg)", 45, "8901030875212", "Grains", "Whole wheat flour", 25},
	{"Toor Dal (500g)", 85, "8901030875229", "Pulses", "Yellow lentils", 20},
	{"Chana Dal (500g)", 75, "8901030875236", "Pulses", "Split chickpeas", 18},

	// Especias y condimentos
	{"Salt (1kg)", 20, "8901030875243", "Spices", "Iodized salt", 50},
	{"Sugar (1kg)", 55, "8901030875250", "Spices", "White sugar", 40},
	{"Turmeric Powder (100g)", 35, "8901030875267", "Spices", "Pure turmeric powder", 25},
	{"Red Chili Powder (100g)", 40, "8901030875274", "Spices", "Hot chili powder", 22},

	// Cuidado personal
	{"Soap (100g)", 25, "8901030875281", "Personal Care", "Bathing soap", 45},
	{"Shampoo (200ml)", 85, "8901030875298", "Personal Care", "Hair shampoo", 20},
	{"Toothpaste (100g)", 55, "8901030875304", "Personal Care", "Dental care", 30},

	// Hogar
	{"Detergent (500g)", 95, "8901030875311", "Household", "Washing powder", 15},
	{"Dish Soap (500ml)", 65, "8901030875328", "Household", "Dishwashing liquid", 18},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewProductRepository(pool)

	inserted, skipped := 0, 0
	for _, p := range catalog {
		existing, err := repo.GetByBarcode(p.barcode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Consultar barcode %s: %v\n", p.barcode, err)
			os.Exit(1)
		}
		if existing != nil {
			skipped++
			continue
		}

		now := time.Now()
		product := &entity.Product{
			ID:          uuid.NewString(),
			Barcode:     p.barcode,
			Name:        p.name,
			Price:       decimal.NewFromInt(p.price),
			Stock:       p.stock,
			Category:    p.category,
			Description: p.description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repo.Create(product); err != nil {
			fmt.Fprintf(os.Stderr, "Insertar %s: %v\n", p.name, err)
			os.Exit(1)
		}
		fmt.Printf("Producto agregado: %s\n", p.name)
		inserted++
	}

	fmt.Printf("Listo: %d insertados, %d ya existían\n", inserted, skipped)
}
