package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/portaria-pro/internal/application/usecase"
	"github.com/tu-usuario/portaria-pro/internal/domain/repository"
)

var _ usecase.CascadeTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Se usa para el borrado en cascada de un edificio (todo o nada).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	buildingRepo repository.BuildingRepository,
	apartmentRepo repository.ApartmentRepository,
	phoneRepo repository.PhoneRepository,
	deliveryRepo repository.DeliveryRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	buildingRepo := NewBuildingRepository(tx)
	apartmentRepo := NewApartmentRepository(tx)
	phoneRepo := NewPhoneRepository(tx)
	deliveryRepo := NewDeliveryRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(buildingRepo, apartmentRepo, phoneRepo, deliveryRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
