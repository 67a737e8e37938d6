package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnknownFormat = errors.New("formato de reporte desconocido")
)
