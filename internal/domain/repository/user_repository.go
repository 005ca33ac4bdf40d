package repository

import "github.com/tu-usuario/portaria-pro/internal/domain/entity"

// UserRepository puerto de persistencia para User.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	ListByBuilding(buildingID string) ([]*entity.User, error)
	DeleteByBuilding(buildingID string) error
}
