// Package analytics contiene las agregaciones puras sobre el catálogo (servicios de dominio).
// Ninguna función muta los productos recibidos.
package analytics

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/product-stats/internal/domain/entity"
)

// CategoryGroup productos de una categoría, en orden de inserción.
type CategoryGroup struct {
	Category string
	Products []entity.Product
}

// AveragePrice media aritmética de los precios. Devuelve cero si no hay productos.
func AveragePrice(products []entity.Product) decimal.Decimal {
	if len(products) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, p := range products {
		sum = sum.Add(p.Price)
	}
	return sum.Div(decimal.NewFromInt(int64(len(products))))
}

// GroupByCategory particiona los productos por categoría.
// Los grupos siguen el orden de primera aparición de cada categoría.
func GroupByCategory(products []entity.Product) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, CategoryGroup{Category: p.Category})
		}
		groups[i].Products = append(groups[i].Products, p)
	}
	return groups
}

// MostExpensive devuelve el producto de mayor precio; en empate gana el primero.
// ok es false si no hay productos.
func MostExpensive(products []entity.Product) (top entity.Product, ok bool) {
	for i, p := range products {
		if i == 0 || p.Price.GreaterThan(top.Price) {
			top = p
		}
	}
	return top, len(products) > 0
}

// AboveAverage filtra los productos con precio estrictamente mayor que avg
// y los ordena ascendente por precio (orden estable).
func AboveAverage(products []entity.Product, avg decimal.Decimal) []entity.Product {
	above := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Price.GreaterThan(avg) {
			above = append(above, p)
		}
	}
	slices.SortStableFunc(above, func(a, b entity.Product) int {
		return a.Price.Cmp(b.Price)
	})
	return above
}

// SplitByAverage cuenta los productos por encima de avg; below es el resto,
// por lo que un precio igual a la media cuenta como below.
func SplitByAverage(products []entity.Product, avg decimal.Decimal) (above, below int) {
	for _, p := range products {
		if p.Price.GreaterThan(avg) {
			above++
		}
	}
	return above, len(products) - above
}
