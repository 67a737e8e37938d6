package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/jhoicas/product-stats/internal/application/dto"
)

// MarkdownWriter escribe el reporte en Markdown (tablas por sección).
type MarkdownWriter struct {
	out io.Writer
}

// NewMarkdownWriter crea un MarkdownWriter sobre out.
func NewMarkdownWriter(out io.Writer) *MarkdownWriter {
	return &MarkdownWriter{out: out}
}

// Write construye el documento completo y lo vuelca en out.
func (w *MarkdownWriter) Write(r *dto.ProductReportDTO) error {
	md := markdown.NewMarkdown(w.out)

	md.H1("Product Analysis Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total number of products", strconv.Itoa(r.TotalCount)},
			{"Average price of all products", money(r.AveragePrice)},
			{"Number of products above average price", strconv.Itoa(r.AboveAverageCount)},
			{"Number of products below average price", strconv.Itoa(r.BelowAverageCount)},
		},
	})
	md.PlainText("")

	w.writeCategories(md, r)
	w.writeAboveAverage(md, r)

	return md.Build()
}

// writeCategories una sola tabla con conteo, producto más caro y promedio por categoría.
func (w *MarkdownWriter) writeCategories(md *markdown.Markdown, r *dto.ProductReportDTO) {
	md.H2("Categories")
	md.PlainText("")

	maxByCategory := make(map[string]dto.CategoryMaxDTO, len(r.MostExpensive))
	for _, m := range r.MostExpensive {
		maxByCategory[m.Category] = m
	}
	avgByCategory := make(map[string]string, len(r.CategoryAverages))
	for _, a := range r.CategoryAverages {
		avgByCategory[a.Category] = money(a.AveragePrice)
	}

	rows := make([][]string, 0, len(r.CategoryCounts))
	for _, c := range r.CategoryCounts {
		top := maxByCategory[c.Category]
		rows = append(rows, []string{
			c.Category,
			strconv.Itoa(c.Count),
			top.ProductName,
			"$" + top.Price.String(),
			avgByCategory[c.Category],
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Category", "Products", "Most expensive", "Price", "Average price"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeAboveAverage(md *markdown.Markdown, r *dto.ProductReportDTO) {
	md.H2("Products more expensive than the average price")
	md.PlainText("")

	if len(r.AboveAverage) == 0 {
		md.PlainText("No products above the average price.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(r.AboveAverage))
	for _, p := range r.AboveAverage {
		rows = append(rows, []string{p.Name, p.Category, "$" + p.Price.String()})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Name", "Category", "Price"},
		Rows:   rows,
	})
	md.PlainText("")
}
