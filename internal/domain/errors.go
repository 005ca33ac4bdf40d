package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrBuildingInactive   = errors.New("edificio inactivo")
	ErrQuotaExceeded      = errors.New("cuota de mensajes agotada")
	ErrNoPhones           = errors.New("el apartamento no tiene teléfonos registrados")
	ErrDispatchFailed     = errors.New("fallo al enviar la notificación")
	ErrPlanLimitExceeded  = errors.New("el plan no permite más apartamentos")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
)
