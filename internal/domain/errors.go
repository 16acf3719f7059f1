package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada operación del núcleo devuelve
// uno de estos errores envuelto con detalle; clasificar siempre con errors.Is.
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicateName     = errors.New("nombre de categoría duplicado")
	ErrDuplicateCode     = errors.New("código de producto duplicado")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidCategory   = errors.New("categoría no válida")
	ErrDanglingReference = errors.New("movimiento sin producto existente")
	ErrStorage           = errors.New("falla de almacenamiento")
)
