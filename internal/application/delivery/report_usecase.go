package delivery

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/portaria-pro/internal/application/dto"
	"github.com/tu-usuario/portaria-pro/internal/domain"
	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
	"github.com/tu-usuario/portaria-pro/internal/domain/repository"
)

// topApartmentsLimit cantidad de apartamentos en el ranking de stats.
const topApartmentsLimit = 5

// ReportUseCase consultas y agregados sobre el historial de entregas.
// Todo se deriva de Query: no hay contadores mutables que mantener en sync
// (salvo messages_used, que pertenece al edificio).
type ReportUseCase struct {
	deliveryRepo repository.DeliveryRepository
	writer       TabularWriter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(deliveryRepo repository.DeliveryRepository, writer TabularWriter) *ReportUseCase {
	return &ReportUseCase{deliveryRepo: deliveryRepo, writer: writer}
}

// parseFilter convierte el query DTO al filtro del repositorio.
// Fechas en formato YYYY-MM-DD; EndDate es inclusivo (fin del día).
func parseFilter(q dto.DeliveryQuery) (repository.DeliveryFilter, error) {
	var f repository.DeliveryFilter
	if q.StartDate != "" {
		t, err := time.Parse("2006-01-02", q.StartDate)
		if err != nil {
			return f, fmt.Errorf("%w: start_date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		f.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := time.Parse("2006-01-02", q.EndDate)
		if err != nil {
			return f, fmt.Errorf("%w: end_date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		f.EndDate = &end
	}
	if q.Status != "" && q.Status != entity.DeliverySuccess && q.Status != entity.DeliveryFailed {
		return f, fmt.Errorf("%w: status debe ser success o failed", domain.ErrInvalidInput)
	}
	f.Status = q.Status
	f.ApartmentNumber = strings.TrimSpace(q.ApartmentNumber)
	return f, nil
}

// Query historial filtrado, ordenado por fecha descendente.
func (uc *ReportUseCase) Query(buildingID string, q dto.DeliveryQuery) ([]*dto.DeliveryResponse, error) {
	f, err := parseFilter(q)
	if err != nil {
		return nil, err
	}
	records, err := uc.deliveryRepo.Query(buildingID, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DeliveryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toDeliveryResponse(r))
	}
	return out, nil
}

// Stats agregados recomputados desde Query en cada llamada.
func (uc *ReportUseCase) Stats(buildingID string, q dto.DeliveryQuery) (*dto.DeliveryStatsResponse, error) {
	f, err := parseFilter(q)
	if err != nil {
		return nil, err
	}
	records, err := uc.deliveryRepo.Query(buildingID, f)
	if err != nil {
		return nil, err
	}

	stats := &dto.DeliveryStatsResponse{TopApartments: []dto.ApartmentRank{}}
	perApartment := make(map[string]int)
	for _, r := range records {
		stats.TotalDeliveries++
		switch r.Status {
		case entity.DeliverySuccess:
			stats.Successful++
		case entity.DeliveryFailed:
			stats.Failed++
		}
		stats.TotalPhonesNotified += len(r.PhonesNotified)
		perApartment[r.ApartmentNumber]++
	}

	ranks := make([]dto.ApartmentRank, 0, len(perApartment))
	for number, count := range perApartment {
		ranks = append(ranks, dto.ApartmentRank{ApartmentNumber: number, Deliveries: count})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Deliveries != ranks[j].Deliveries {
			return ranks[i].Deliveries > ranks[j].Deliveries
		}
		return ranks[i].ApartmentNumber < ranks[j].ApartmentNumber
	})
	if len(ranks) > topApartmentsLimit {
		ranks = ranks[:topApartmentsLimit]
	}
	stats.TopApartments = ranks
	return stats, nil
}

// ExportCSV historial filtrado como bytes tabulares para descarga.
func (uc *ReportUseCase) ExportCSV(buildingID string, q dto.DeliveryQuery) ([]byte, error) {
	records, err := uc.Query(buildingID, q)
	if err != nil {
		return nil, err
	}
	headers := []string{"Data", "Apartamento", "Porteiro", "Status", "Telefones notificados"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.ApartmentNumber,
			r.DoormanName,
			r.Status,
			strings.Join(r.PhonesNotified, " "),
		})
	}
	return uc.writer.Write(headers, rows)
}
