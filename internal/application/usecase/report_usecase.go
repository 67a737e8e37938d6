package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/product-stats/internal/application/dto"
	"github.com/jhoicas/product-stats/internal/domain/analytics"
	"github.com/jhoicas/product-stats/internal/domain/entity"
	"github.com/jhoicas/product-stats/internal/domain/repository"
)

// ReportUseCase genera el reporte de estadísticas del catálogo:
//   - Conteo total y precio promedio global.
//   - Conteo, producto más caro y promedio por categoría.
//   - Productos por encima del promedio y conteo encima/debajo.
type ReportUseCase struct {
	productRepo repository.ProductRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(productRepo repository.ProductRepository) *ReportUseCase {
	return &ReportUseCase{productRepo: productRepo}
}

// Generate calcula el reporte completo en una sola lectura del catálogo.
func (uc *ReportUseCase) Generate(ctx context.Context) (*dto.ProductReportDTO, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: productos: %w", err)
	}

	avg := analytics.AveragePrice(products)
	groups := analytics.GroupByCategory(products)
	above := analytics.AboveAverage(products, avg)
	nAbove, nBelow := analytics.SplitByAverage(products, avg)

	report := &dto.ProductReportDTO{
		TotalCount:        len(products),
		AveragePrice:      avg,
		CategoryCounts:    make([]dto.CategoryCountDTO, 0, len(groups)),
		MostExpensive:     make([]dto.CategoryMaxDTO, 0, len(groups)),
		CategoryAverages:  make([]dto.CategoryAverageDTO, 0, len(groups)),
		AboveAverage:      toProductDTOs(above),
		AboveAverageCount: nAbove,
		BelowAverageCount: nBelow,
	}

	for _, g := range groups {
		report.CategoryCounts = append(report.CategoryCounts, dto.CategoryCountDTO{
			Category: g.Category,
			Count:    len(g.Products),
		})
		// Los grupos nunca están vacíos; el ok protege ante entradas futuras.
		if top, ok := analytics.MostExpensive(g.Products); ok {
			report.MostExpensive = append(report.MostExpensive, dto.CategoryMaxDTO{
				Category:    g.Category,
				ProductName: top.Name,
				Price:       top.Price,
			})
		}
		report.CategoryAverages = append(report.CategoryAverages, dto.CategoryAverageDTO{
			Category:     g.Category,
			AveragePrice: analytics.AveragePrice(g.Products),
		})
	}
	return report, nil
}

func toProductDTOs(products []entity.Product) []dto.ProductDTO {
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductDTO{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
		})
	}
	return out
}
