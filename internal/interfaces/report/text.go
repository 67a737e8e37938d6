package report

import (
	"fmt"
	"io"

	"github.com/jhoicas/product-stats/internal/application/dto"
)

// TextWriter escribe el reporte como texto plano, una sección por bloque.
type TextWriter struct {
	out io.Writer
	err error
}

// NewTextWriter crea un TextWriter sobre out.
func NewTextWriter(out io.Writer) *TextWriter {
	return &TextWriter{out: out}
}

// Write escribe las siete secciones en orden fijo.
func (w *TextWriter) Write(r *dto.ProductReportDTO) error {
	w.err = nil

	w.printf("Total number of products: %d\n", r.TotalCount)

	w.printf("\nAverage price of all products: %s\n", money(r.AveragePrice))

	w.printf("\nNumber of products in each category:\n")
	for _, c := range r.CategoryCounts {
		w.printf("%s: %d\n", c.Category, c.Count)
	}

	w.printf("\nMost expensive product in each category:\n")
	for _, m := range r.MostExpensive {
		w.printf("%s: %s - $%s\n", m.Category, m.ProductName, m.Price.String())
	}

	w.printf("\nAverage price in each category:\n")
	for _, a := range r.CategoryAverages {
		w.printf("%s: %s\n", a.Category, money(a.AveragePrice))
	}

	w.printf("\nProducts more expensive than the average price:\n")
	for _, p := range r.AboveAverage {
		w.printf("Product [name=%s, category=%s, price=$%s]\n", p.Name, p.Category, p.Price.String())
	}

	w.printf("\nNumber of products above average price: %d\n", r.AboveAverageCount)
	w.printf("Number of products below average price: %d\n", r.BelowAverageCount)

	return w.err
}

// printf conserva el primer error de escritura y omite las escrituras siguientes.
func (w *TextWriter) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}
