package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/product-stats/internal/domain"
)

// productNamespace espacio UUIDv5 del catálogo; el ID de un producto depende solo de su nombre.
var productNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("product-stats/catalog"))

// Product representa un producto del catálogo analizado. Inmutable tras su construcción.
type Product struct {
	ID       string
	Name     string
	Category string          // Electronics, Clothing, Books, Home
	Price    decimal.Decimal // precio de venta, nunca negativo
}

// NewProduct valida y construye un producto.
// Nombre y categoría no pueden estar vacíos; el precio no puede ser negativo.
func NewProduct(name, category string, price decimal.Decimal) (Product, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" {
		return Product{}, fmt.Errorf("%w: nombre vacío", domain.ErrInvalidInput)
	}
	if category == "" {
		return Product{}, fmt.Errorf("%w: categoría vacía para %q", domain.ErrInvalidInput, name)
	}
	if price.IsNegative() {
		return Product{}, fmt.Errorf("%w: precio negativo para %q: %s", domain.ErrInvalidInput, name, price)
	}
	return Product{
		ID:       uuid.NewSHA1(productNamespace, []byte(name)).String(),
		Name:     name,
		Category: category,
		Price:    price,
	}, nil
}

// String devuelve la representación completa del producto, ej:
// "Product [name=TV, category=Electronics, price=$1499.99]".
func (p Product) String() string {
	return "Product [name=" + p.Name + ", category=" + p.Category + ", price=$" + p.Price.String() + "]"
}
