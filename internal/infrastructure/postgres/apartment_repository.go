package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
	"github.com/tu-usuario/portaria-pro/internal/domain/repository"
)

var _ repository.ApartmentRepository = (*ApartmentRepo)(nil)

// ApartmentRepo implementación de ApartmentRepository (usable con pool o tx).
type ApartmentRepo struct {
	q Querier
}

// NewApartmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewApartmentRepository(q Querier) *ApartmentRepo {
	return &ApartmentRepo{q: q}
}

// Create persiste un apartamento.
func (r *ApartmentRepo) Create(a *entity.Apartment) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO apartments (id, building_id, number, created_at) VALUES ($1, $2, $3, $4)`,
		a.ID, a.BuildingID, a.Number, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert apartment: %w", err)
	}
	return nil
}

// CreateBatch inserta los apartamentos iniciales del edificio.
func (r *ApartmentRepo) CreateBatch(list []*entity.Apartment) error {
	for _, a := range list {
		if err := r.Create(a); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene un apartamento por ID.
func (r *ApartmentRepo) GetByID(id string) (*entity.Apartment, error) {
	var a entity.Apartment
	err := r.q.QueryRow(context.Background(),
		`SELECT id, building_id, number, created_at FROM apartments WHERE id = $1`, id,
	).Scan(&a.ID, &a.BuildingID, &a.Number, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get apartment: %w", err)
	}
	return &a, nil
}

// GetByBuildingAndNumber resuelve por número dentro del edificio; ante
// duplicados devuelve el más antiguo.
func (r *ApartmentRepo) GetByBuildingAndNumber(buildingID, number string) (*entity.Apartment, error) {
	var a entity.Apartment
	err := r.q.QueryRow(context.Background(),
		`SELECT id, building_id, number, created_at FROM apartments
		 WHERE building_id = $1 AND number = $2 ORDER BY created_at LIMIT 1`,
		buildingID, number,
	).Scan(&a.ID, &a.BuildingID, &a.Number, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get apartment by number: %w", err)
	}
	return &a, nil
}

// ListByBuilding apartamentos ordenados por creación (el más antiguo primero).
func (r *ApartmentRepo) ListByBuilding(buildingID string) ([]*entity.Apartment, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, building_id, number, created_at FROM apartments
		 WHERE building_id = $1 ORDER BY created_at`, buildingID)
	if err != nil {
		return nil, fmt.Errorf("list apartments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Apartment
	for rows.Next() {
		var a entity.Apartment
		if err := rows.Scan(&a.ID, &a.BuildingID, &a.Number, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan apartment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ListWithPhones apartamentos con teléfonos embebidos en una sola consulta
// (LEFT JOIN), ordenados por número de apartamento.
func (r *ApartmentRepo) ListWithPhones(buildingID string) ([]*entity.ApartmentWithPhones, error) {
	query := `
		SELECT a.id, a.building_id, a.number, a.created_at,
		       p.id, p.whatsapp, p.name, p.created_at
		FROM apartments a
		LEFT JOIN phones p ON p.apartment_id = a.id
		WHERE a.building_id = $1
		ORDER BY a.number, a.created_at, p.created_at`
	rows, err := r.q.Query(context.Background(), query, buildingID)
	if err != nil {
		return nil, fmt.Errorf("list apartments with phones: %w", err)
	}
	defer rows.Close()

	var list []*entity.ApartmentWithPhones
	index := make(map[string]*entity.ApartmentWithPhones)
	for rows.Next() {
		var a entity.Apartment
		var phoneID, whatsapp, name *string
		var phoneCreatedAt *time.Time
		if err := rows.Scan(
			&a.ID, &a.BuildingID, &a.Number, &a.CreatedAt,
			&phoneID, &whatsapp, &name, &phoneCreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan apartment with phones: %w", err)
		}
		apt, ok := index[a.ID]
		if !ok {
			apt = &entity.ApartmentWithPhones{Apartment: a, Phones: []entity.PhoneRegistration{}}
			index[a.ID] = apt
			list = append(list, apt)
		}
		if phoneID != nil {
			p := entity.PhoneRegistration{ID: *phoneID, ApartmentID: a.ID, WhatsApp: *whatsapp}
			if name != nil {
				p.Name = *name
			}
			if phoneCreatedAt != nil {
				p.CreatedAt = *phoneCreatedAt
			}
			apt.Phones = append(apt.Phones, p)
		}
	}
	return list, rows.Err()
}

// CountByBuilding cantidad de apartamentos del edificio.
func (r *ApartmentRepo) CountByBuilding(buildingID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM apartments WHERE building_id = $1`, buildingID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count apartments: %w", err)
	}
	return count, nil
}

// UpdateNumber cambia el número del apartamento.
func (r *ApartmentRepo) UpdateNumber(id, number string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE apartments SET number = $2 WHERE id = $1`, id, number)
	if err != nil {
		return fmt.Errorf("update apartment number: %w", err)
	}
	return nil
}

// DeleteByBuilding borra todos los apartamentos del edificio (cascada).
func (r *ApartmentRepo) DeleteByBuilding(buildingID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM apartments WHERE building_id = $1`, buildingID)
	if err != nil {
		return fmt.Errorf("delete apartments: %w", err)
	}
	return nil
}
