package repository

import (
	"time"

	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
)

// DeliveryFilter filtros opcionales e independientes (AND lógico) para el historial.
type DeliveryFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time
	ApartmentNumber string
	Status          string // success | failed | "" (todos)
}

// DeliveryRepository puerto del historial de entregas. Append-only: la única
// escritura es Append; nunca hay update ni delete individual (solo la cascada
// del edificio).
type DeliveryRepository interface {
	Append(r *entity.DeliveryRecord) error
	// Query entregas del edificio ordenadas por fecha descendente.
	Query(buildingID string, f DeliveryFilter) ([]*entity.DeliveryRecord, error)
	DeleteByBuilding(buildingID string) error
}
