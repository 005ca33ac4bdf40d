package entity

import "time"

// Estados de un DeliveryRecord.
const (
	DeliverySuccess = "success"
	DeliveryFailed  = "failed"
)

// DeliveryRecord entrada append-only del historial de notificaciones.
// Nunca se actualiza ni se borra después de creada (salvo cascada del edificio).
type DeliveryRecord struct {
	ID              string
	BuildingID      string
	ApartmentID     string
	ApartmentNumber string
	DoormanName     string
	Status          string   // success | failed
	PhonesNotified  []string // números contactados, en orden; vacío si failed
	CreatedAt       time.Time
}
