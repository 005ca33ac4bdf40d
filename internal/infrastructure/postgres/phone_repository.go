package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
	"github.com/tu-usuario/portaria-pro/internal/domain/repository"
)

var _ repository.PhoneRepository = (*PhoneRepo)(nil)

// PhoneRepo implementación de PhoneRepository (usable con pool o tx).
type PhoneRepo struct {
	q Querier
}

// NewPhoneRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPhoneRepository(q Querier) *PhoneRepo {
	return &PhoneRepo{q: q}
}

// Create persiste un teléfono. No hay dedup por apartamento+número:
// comportamiento laxo conocido del producto.
func (r *PhoneRepo) Create(p *entity.PhoneRegistration) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO phones (id, apartment_id, whatsapp, name, created_at) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.ApartmentID, p.WhatsApp, p.Name, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert phone: %w", err)
	}
	return nil
}

// Delete idempotente: un id inexistente no es error.
func (r *PhoneRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM phones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete phone: %w", err)
	}
	return nil
}

// ListByApartment teléfonos del apartamento en orden de registro.
func (r *PhoneRepo) ListByApartment(apartmentID string) ([]entity.PhoneRegistration, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, apartment_id, whatsapp, name, created_at FROM phones
		 WHERE apartment_id = $1 ORDER BY created_at`, apartmentID)
	if err != nil {
		return nil, fmt.Errorf("list phones: %w", err)
	}
	defer rows.Close()
	var list []entity.PhoneRegistration
	for rows.Next() {
		var p entity.PhoneRegistration
		if err := rows.Scan(&p.ID, &p.ApartmentID, &p.WhatsApp, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan phone: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListByBuilding listado plano (número de apartamento, teléfono) ordenado
// por número de apartamento.
func (r *PhoneRepo) ListByBuilding(buildingID string) ([]entity.PhoneListing, error) {
	query := `
		SELECT a.number, p.id, p.apartment_id, p.whatsapp, p.name, p.created_at
		FROM phones p
		JOIN apartments a ON a.id = p.apartment_id
		WHERE a.building_id = $1
		ORDER BY a.number, p.created_at`
	rows, err := r.q.Query(context.Background(), query, buildingID)
	if err != nil {
		return nil, fmt.Errorf("list phones by building: %w", err)
	}
	defer rows.Close()
	var list []entity.PhoneListing
	for rows.Next() {
		var l entity.PhoneListing
		if err := rows.Scan(&l.ApartmentNumber, &l.Phone.ID, &l.Phone.ApartmentID,
			&l.Phone.WhatsApp, &l.Phone.Name, &l.Phone.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan phone listing: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// DeleteByBuilding borra todos los teléfonos del edificio (cascada).
func (r *PhoneRepo) DeleteByBuilding(buildingID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM phones WHERE apartment_id IN (SELECT id FROM apartments WHERE building_id = $1)`,
		buildingID)
	if err != nil {
		return fmt.Errorf("delete phones: %w", err)
	}
	return nil
}
