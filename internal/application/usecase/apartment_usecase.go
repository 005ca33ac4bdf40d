package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/portaria-pro/internal/application/dto"
	"github.com/tu-usuario/portaria-pro/internal/domain"
	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
	"github.com/tu-usuario/portaria-pro/internal/domain/plan"
	"github.com/tu-usuario/portaria-pro/internal/domain/repository"
	"github.com/tu-usuario/portaria-pro/pkg/phone"
)

// ApartmentUseCase casos de uso de apartamentos y teléfonos de un edificio.
type ApartmentUseCase struct {
	buildingRepo  repository.BuildingRepository
	apartmentRepo repository.ApartmentRepository
	phoneRepo     repository.PhoneRepository
	plans         *plan.Registry
}

// NewApartmentUseCase construye el caso de uso.
func NewApartmentUseCase(
	buildingRepo repository.BuildingRepository,
	apartmentRepo repository.ApartmentRepository,
	phoneRepo repository.PhoneRepository,
	plans *plan.Registry,
) *ApartmentUseCase {
	return &ApartmentUseCase{
		buildingRepo:  buildingRepo,
		apartmentRepo: apartmentRepo,
		phoneRepo:     phoneRepo,
		plans:         plans,
	}
}

// ListWithPhones apartamentos del edificio con teléfonos embebidos. Marca los
// números duplicados para que la UI pueda avisar (no es error: dos apartamentos
// pueden compartir etiqueta en despliegues raros).
func (uc *ApartmentUseCase) ListWithPhones(buildingID string) ([]*dto.ApartmentResponse, error) {
	list, err := uc.apartmentRepo.ListWithPhones(buildingID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]int, len(list))
	for _, a := range list {
		seen[a.Number]++
	}
	out := make([]*dto.ApartmentResponse, 0, len(list))
	for _, a := range list {
		phones := make([]dto.PhoneResponse, 0, len(a.Phones))
		for _, p := range a.Phones {
			phones = append(phones, toPhoneResponse(p))
		}
		out = append(out, &dto.ApartmentResponse{
			ID:              a.ID,
			Number:          a.Number,
			Phones:          phones,
			DuplicateNumber: seen[a.Number] > 1,
		})
	}
	return out, nil
}

// Create agrega un apartamento vía edición admin, respetando el tope del plan.
func (uc *ApartmentUseCase) Create(buildingID string, in dto.CreateApartmentRequest) (*dto.ApartmentResponse, error) {
	number := strings.TrimSpace(in.Number)
	if number == "" {
		return nil, domain.ErrInvalidInput
	}
	b, err := uc.buildingRepo.GetByID(buildingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	p, err := uc.plans.Get(b.Plan)
	if err != nil {
		return nil, err
	}
	count, err := uc.apartmentRepo.CountByBuilding(buildingID)
	if err != nil {
		return nil, err
	}
	if !entity.IsUnlimited(p.MaxApartments) && count >= p.MaxApartments {
		return nil, domain.ErrPlanLimitExceeded
	}
	a := &entity.Apartment{
		ID:         uuid.New().String(),
		BuildingID: buildingID,
		Number:     number,
		CreatedAt:  time.Now(),
	}
	if err := uc.apartmentRepo.Create(a); err != nil {
		return nil, err
	}
	b.NumApartments = count + 1
	b.UpdatedAt = time.Now()
	if err := uc.buildingRepo.Update(b); err != nil {
		return nil, err
	}
	return &dto.ApartmentResponse{ID: a.ID, Number: a.Number, Phones: []dto.PhoneResponse{}}, nil
}

// Rename cambia el número del apartamento. Rechaza vacío o solo espacios;
// no exige unicidad dentro del edificio.
func (uc *ApartmentUseCase) Rename(buildingID, apartmentID string, in dto.RenameApartmentRequest) error {
	number := strings.TrimSpace(in.Number)
	if number == "" {
		return domain.ErrInvalidInput
	}
	a, err := uc.apartmentRepo.GetByID(apartmentID)
	if err != nil {
		return err
	}
	if a == nil || a.BuildingID != buildingID {
		return domain.ErrNotFound
	}
	return uc.apartmentRepo.UpdateNumber(apartmentID, number)
}

// AddPhone registra un teléfono en el apartamento. La normalización es la
// misma regla que usa la importación masiva.
func (uc *ApartmentUseCase) AddPhone(buildingID, apartmentID string, in dto.AddPhoneRequest) (*dto.PhoneResponse, error) {
	a, err := uc.apartmentRepo.GetByID(apartmentID)
	if err != nil {
		return nil, err
	}
	if a == nil || a.BuildingID != buildingID {
		return nil, domain.ErrNotFound
	}
	normalized, err := phone.Normalize(in.WhatsApp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	p := &entity.PhoneRegistration{
		ID:          uuid.New().String(),
		ApartmentID: apartmentID,
		WhatsApp:    normalized,
		Name:        strings.TrimSpace(in.Name),
		CreatedAt:   time.Now(),
	}
	if err := uc.phoneRepo.Create(p); err != nil {
		return nil, err
	}
	resp := toPhoneResponse(*p)
	return &resp, nil
}

// AddPhoneByCode auto-registro público de residente: código del edificio +
// número de apartamento + teléfono. No requiere cuenta.
func (uc *ApartmentUseCase) AddPhoneByCode(code string, in dto.PublicAddPhoneRequest) (*dto.PhoneResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	b, err := uc.buildingRepo.GetByRegistrationCode(code)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	number := strings.TrimSpace(in.ApartmentNumber)
	if number == "" {
		return nil, domain.ErrInvalidInput
	}
	a, err := uc.apartmentRepo.GetByBuildingAndNumber(b.ID, number)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return uc.AddPhone(b.ID, a.ID, dto.AddPhoneRequest{WhatsApp: in.WhatsApp, Name: in.Name})
}

// DeletePhone idempotente: borrar un id inexistente es éxito sin efecto.
func (uc *ApartmentUseCase) DeletePhone(phoneID string) error {
	return uc.phoneRepo.Delete(phoneID)
}

// ListAllPhones listado plano (número de apartamento, teléfono) para el
// reporte consolidado del edificio.
func (uc *ApartmentUseCase) ListAllPhones(buildingID string) ([]*dto.PhoneListingResponse, error) {
	list, err := uc.phoneRepo.ListByBuilding(buildingID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PhoneListingResponse, 0, len(list))
	for _, l := range list {
		out = append(out, &dto.PhoneListingResponse{
			ApartmentNumber: l.ApartmentNumber,
			PhoneResponse:   toPhoneResponse(l.Phone),
		})
	}
	return out, nil
}

func toPhoneResponse(p entity.PhoneRegistration) dto.PhoneResponse {
	return dto.PhoneResponse{
		ID:        p.ID,
		WhatsApp:  phone.Format(p.WhatsApp),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}
