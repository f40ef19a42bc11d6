package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidBaseURL          = errors.New("URL base del backend inválida")
	ErrUnknownDashboardVariant = errors.New("variante de dashboard desconocida")
	ErrRouteNotFound           = errors.New("ruta no encontrada")
	ErrDuplicateRoute          = errors.New("ruta duplicada")
	ErrInvalidRoute            = errors.New("ruta inválida")
	ErrUnsupportedCharset      = errors.New("codificación de caracteres no soportada")
	ErrNotTextFile             = errors.New("el archivo no es de texto")
	ErrNilView                 = errors.New("la vista no se pudo construir")
)
