package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
	"github.com/tu-usuario/portaria-pro/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo historial append-only de entregas (usable con pool o tx).
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// Append único camino de escritura del historial; nunca hay update.
func (r *DeliveryRepo) Append(d *entity.DeliveryRecord) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO deliveries (id, building_id, apartment_id, apartment_number, doorman_name, status, phones_notified, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		d.ID, d.BuildingID, d.ApartmentID, d.ApartmentNumber, d.DoormanName,
		d.Status, d.PhonesNotified, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// Query historial filtrado (los filtros se combinan con AND), ordenado por
// fecha descendente. created_at está indexado para los rangos de fechas.
func (r *DeliveryRepo) Query(buildingID string, f repository.DeliveryFilter) ([]*entity.DeliveryRecord, error) {
	query := `
		SELECT id, building_id, apartment_id, apartment_number, doorman_name, status, phones_notified, created_at
		FROM deliveries WHERE building_id = $1`
	args := []any{buildingID}

	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		query += ` AND created_at >= $` + strconv.Itoa(len(args))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		query += ` AND created_at <= $` + strconv.Itoa(len(args))
	}
	if f.ApartmentNumber != "" {
		args = append(args, f.ApartmentNumber)
		query += ` AND apartment_number = $` + strconv.Itoa(len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query deliveries: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeliveryRecord
	for rows.Next() {
		var d entity.DeliveryRecord
		if err := rows.Scan(&d.ID, &d.BuildingID, &d.ApartmentID, &d.ApartmentNumber,
			&d.DoormanName, &d.Status, &d.PhonesNotified, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		if d.PhonesNotified == nil {
			d.PhonesNotified = []string{}
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// DeleteByBuilding borra el historial del edificio (solo cascada del tenant).
func (r *DeliveryRepo) DeleteByBuilding(buildingID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM deliveries WHERE building_id = $1`, buildingID)
	if err != nil {
		return fmt.Errorf("delete deliveries: %w", err)
	}
	return nil
}
