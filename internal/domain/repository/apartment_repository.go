package repository

import "github.com/tu-usuario/portaria-pro/internal/domain/entity"

// ApartmentRepository puerto de persistencia para Apartment.
type ApartmentRepository interface {
	Create(a *entity.Apartment) error
	CreateBatch(list []*entity.Apartment) error
	GetByID(id string) (*entity.Apartment, error)
	// GetByBuildingAndNumber resuelve un apartamento por su número dentro del
	// edificio. Si hay números duplicados devuelve el más antiguo.
	GetByBuildingAndNumber(buildingID, number string) (*entity.Apartment, error)
	ListByBuilding(buildingID string) ([]*entity.Apartment, error)
	// ListWithPhones lista ordenada de apartamentos con sus teléfonos embebidos.
	ListWithPhones(buildingID string) ([]*entity.ApartmentWithPhones, error)
	CountByBuilding(buildingID string) (int, error)
	UpdateNumber(id, number string) error
	DeleteByBuilding(buildingID string) error
}
