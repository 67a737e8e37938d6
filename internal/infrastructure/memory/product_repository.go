// Package memory contiene adaptadores de repositorio en memoria.
package memory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/product-stats/internal/domain/entity"
	"github.com/jhoicas/product-stats/internal/domain/repository"
)

// seedRecord fila literal del catálogo embebido.
type seedRecord struct {
	name     string
	category string
	price    string
}

// catalogSeed 20 productos en 4 categorías, en orden de inserción.
var catalogSeed = []seedRecord{
	// Electronics
	{"Laptop", "Electronics", "1299.99"},
	{"Smartphone", "Electronics", "899.99"},
	{"Tablet", "Electronics", "499.99"},
	{"Headphones", "Electronics", "249.99"},
	{"TV", "Electronics", "1499.99"},

	// Clothing
	{"T-Shirt", "Clothing", "19.99"},
	{"Jeans", "Clothing", "59.99"},
	{"Dress", "Clothing", "89.99"},
	{"Jacket", "Clothing", "129.99"},
	{"Shoes", "Clothing", "79.99"},

	// Books
	{"Novel", "Books", "14.99"},
	{"Textbook", "Books", "99.99"},
	{"Cookbook", "Books", "24.99"},
	{"Biography", "Books", "19.99"},
	{"Dictionary", "Books", "29.99"},

	// Home
	{"Sofa", "Home", "799.99"},
	{"Dining Table", "Home", "599.99"},
	{"Bed", "Home", "899.99"},
	{"Chair", "Home", "199.99"},
	{"Lamp", "Home", "79.99"},
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementa repository.ProductRepository sobre un slice fijo.
type ProductRepository struct {
	products []entity.Product
}

// NewProductRepository construye el repositorio con los productos dados (se copian).
func NewProductRepository(products []entity.Product) *ProductRepository {
	cp := make([]entity.Product, len(products))
	copy(cp, products)
	return &ProductRepository{products: cp}
}

// NewCatalogRepository construye el repositorio con el catálogo embebido.
func NewCatalogRepository() (*ProductRepository, error) {
	products := make([]entity.Product, 0, len(catalogSeed))
	for _, r := range catalogSeed {
		price, err := decimal.NewFromString(r.price)
		if err != nil {
			return nil, fmt.Errorf("memory: precio de %q: %w", r.name, err)
		}
		p, err := entity.NewProduct(r.name, r.category, price)
		if err != nil {
			return nil, fmt.Errorf("memory: catálogo: %w", err)
		}
		products = append(products, p)
	}
	return &ProductRepository{products: products}, nil
}

// ListAll devuelve una copia de los productos en orden de inserción.
func (r *ProductRepository) ListAll(ctx context.Context) ([]entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}
