package dto

import "github.com/shopspring/decimal"

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductDTO representación completa de un producto en el reporte.
type ProductDTO struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// ── Por categoría ─────────────────────────────────────────────────────────────

// CategoryCountDTO número de productos de una categoría.
type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryMaxDTO producto más caro de una categoría (primero en caso de empate).
type CategoryMaxDTO struct {
	Category    string          `json:"category"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
}

// CategoryAverageDTO precio promedio de una categoría (sin redondear).
type CategoryAverageDTO struct {
	Category     string          `json:"category"`
	AveragePrice decimal.Decimal `json:"average_price"`
}

// ── Reporte combinado ─────────────────────────────────────────────────────────

// ProductReportDTO estadísticas descriptivas del catálogo.
// Las secciones por categoría siguen el orden de primera aparición de cada categoría.
type ProductReportDTO struct {
	TotalCount        int                  `json:"total_count"`
	AveragePrice      decimal.Decimal      `json:"average_price"` // sin redondear; los writers formatean a 2 decimales
	CategoryCounts    []CategoryCountDTO   `json:"category_counts"`
	MostExpensive     []CategoryMaxDTO     `json:"most_expensive"`
	CategoryAverages  []CategoryAverageDTO `json:"category_averages"`
	AboveAverage      []ProductDTO         `json:"above_average"` // ascendente por precio
	AboveAverageCount int                  `json:"above_average_count"`
	BelowAverageCount int                  `json:"below_average_count"` // total - above; incluye los iguales a la media
}
