package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidQuantity     = errors.New("cantidad inválida: debe ser distinta de cero y no dejar el stock en negativo")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrAuthentication      = errors.New("usuario o contraseña inválidos")
	ErrInactiveAccount     = errors.New("la cuenta está inactiva")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrTooManyAttempts     = errors.New("demasiados intentos, espere un momento")
	ErrUpstreamUnavailable = errors.New("fuente de datos no disponible")
)
