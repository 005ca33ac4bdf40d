package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/portaria-pro/internal/domain"
	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
	"github.com/tu-usuario/portaria-pro/internal/domain/repository"
)

var _ repository.BuildingRepository = (*BuildingRepo)(nil)

const buildingColumns = `id, registration_code, name, address, plan, messages_used, num_apartments, active, custom_message, created_at, updated_at`

// BuildingRepo implementación de BuildingRepository (usable con pool o tx).
type BuildingRepo struct {
	q Querier
}

// NewBuildingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBuildingRepository(q Querier) *BuildingRepo {
	return &BuildingRepo{q: q}
}

func scanBuilding(row pgx.Row) (*entity.Building, error) {
	var b entity.Building
	err := row.Scan(
		&b.ID, &b.RegistrationCode, &b.Name, &b.Address, &b.Plan,
		&b.MessagesUsed, &b.NumApartments, &b.Active, &b.CustomMessage,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// Create persiste un nuevo edificio.
func (r *BuildingRepo) Create(b *entity.Building) error {
	query := `
		INSERT INTO buildings (` + buildingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.RegistrationCode, b.Name, b.Address, b.Plan,
		b.MessagesUsed, b.NumApartments, b.Active, b.CustomMessage,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert building: %w", err)
	}
	return nil
}

// GetByID obtiene un edificio por ID.
func (r *BuildingRepo) GetByID(id string) (*entity.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings WHERE id = $1`
	b, err := scanBuilding(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get building: %w", err)
	}
	return b, nil
}

// GetByRegistrationCode búsqueda case-insensitive por código de registro.
func (r *BuildingRepo) GetByRegistrationCode(code string) (*entity.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings WHERE UPPER(registration_code) = UPPER($1)`
	b, err := scanBuilding(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		return nil, fmt.Errorf("get building by code: %w", err)
	}
	return b, nil
}

// CodeExists verifica colisión de código (case-insensitive).
func (r *BuildingRepo) CodeExists(code string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM buildings WHERE UPPER(registration_code) = UPPER($1))`, code,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("code exists: %w", err)
	}
	return exists, nil
}

// Update actualiza los campos editables del edificio.
func (r *BuildingRepo) Update(b *entity.Building) error {
	query := `
		UPDATE buildings
		SET name = $2, address = $3, plan = $4, num_apartments = $5,
		    active = $6, custom_message = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Name, b.Address, b.Plan, b.NumApartments,
		b.Active, b.CustomMessage, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update building: %w", err)
	}
	return nil
}

// List lista edificios con paginación (vista superadmin).
func (r *BuildingRepo) List(limit, offset int) ([]*entity.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Building
	for rows.Next() {
		var b entity.Building
		if err := rows.Scan(
			&b.ID, &b.RegistrationCode, &b.Name, &b.Address, &b.Plan,
			&b.MessagesUsed, &b.NumApartments, &b.Active, &b.CustomMessage,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan building: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// IncrementUsage incremento condicional en el storage: suma 1 solo si queda
// cuota (o la cuota es ilimitada). Cero filas afectadas => cuota agotada.
func (r *BuildingRepo) IncrementUsage(id string, quota int) error {
	if entity.IsUnlimited(quota) {
		_, err := r.q.Exec(context.Background(),
			`UPDATE buildings SET messages_used = messages_used + 1, updated_at = now() WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("increment usage: %w", err)
		}
		return nil
	}
	ct, err := r.q.Exec(context.Background(),
		`UPDATE buildings SET messages_used = messages_used + 1, updated_at = now()
		 WHERE id = $1 AND messages_used < $2`, id, quota)
	if err != nil {
		return fmt.Errorf("increment usage: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrQuotaExceeded
	}
	return nil
}

// Delete elimina el edificio (la cascada de hijos la orquesta el caso de uso
// dentro de la transacción).
func (r *BuildingRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM buildings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete building: %w", err)
	}
	return nil
}
