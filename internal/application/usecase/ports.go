package usecase

import (
	"context"

	"github.com/tu-usuario/portaria-pro/internal/domain/repository"
)

// CascadeTxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el borrado en cascada de un
// edificio sea todo o nada (sin registros huérfanos).
type CascadeTxRunner interface {
	Run(ctx context.Context, fn func(
		buildingRepo repository.BuildingRepository,
		apartmentRepo repository.ApartmentRepository,
		phoneRepo repository.PhoneRepository,
		deliveryRepo repository.DeliveryRepository,
		userRepo repository.UserRepository,
	) error) error
}
