package repository

import "github.com/tu-usuario/portaria-pro/internal/domain/entity"

// PhoneRepository puerto de persistencia para PhoneRegistration.
type PhoneRepository interface {
	Create(p *entity.PhoneRegistration) error
	// Delete es idempotente: borrar un id inexistente es éxito sin efecto
	// (simplifica reintentos concurrentes de la UI).
	Delete(id string) error
	ListByApartment(apartmentID string) ([]entity.PhoneRegistration, error)
	// ListByBuilding secuencia plana ordenada por número de apartamento.
	ListByBuilding(buildingID string) ([]entity.PhoneListing, error)
	DeleteByBuilding(buildingID string) error
}
