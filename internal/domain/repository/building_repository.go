package repository

import "github.com/tu-usuario/portaria-pro/internal/domain/entity"

// BuildingRepository define el puerto de persistencia para Building (DIP).
// La implementación vive en infrastructure.
type BuildingRepository interface {
	Create(b *entity.Building) error
	GetByID(id string) (*entity.Building, error)
	// GetByRegistrationCode búsqueda case-insensitive por código de registro.
	GetByRegistrationCode(code string) (*entity.Building, error)
	// CodeExists verifica colisión de código contra todos los edificios.
	CodeExists(code string) (bool, error)
	Update(b *entity.Building) error
	List(limit, offset int) ([]*entity.Building, error)
	// IncrementUsage suma exactamente 1 a messages_used, de forma condicional en
	// el storage: solo si messages_used < quota o la cuota es ilimitada.
	// Devuelve domain.ErrQuotaExceeded si la condición no se cumple.
	IncrementUsage(id string, quota int) error
	Delete(id string) error
}
