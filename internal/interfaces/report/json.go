package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jhoicas/product-stats/internal/application/dto"
)

// JSONWriter escribe el reporte como un documento JSON indentado.
// Los importes se serializan como strings exactos (decimal.Decimal).
type JSONWriter struct {
	out io.Writer
}

// NewJSONWriter crea un JSONWriter sobre out.
func NewJSONWriter(out io.Writer) *JSONWriter {
	return &JSONWriter{out: out}
}

func (w *JSONWriter) Write(r *dto.ProductReportDTO) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: json: %w", err)
	}
	return nil
}
