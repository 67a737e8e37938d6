// Package report renderiza el ProductReportDTO en los formatos de salida soportados.
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/product-stats/internal/application/dto"
	"github.com/jhoicas/product-stats/internal/domain"
)

// Formatos de salida.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Writer escribe un reporte completo en su destino.
type Writer interface {
	Write(report *dto.ProductReportDTO) error
}

// NewWriter devuelve el Writer del formato indicado sobre out.
func NewWriter(format string, out io.Writer) (Writer, error) {
	switch format {
	case FormatText, "":
		return NewTextWriter(out), nil
	case FormatMarkdown:
		return NewMarkdownWriter(out), nil
	case FormatJSON:
		return NewJSONWriter(out), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}

// money formatea un importe con 2 decimales (redondeo mitad lejos de cero).
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
