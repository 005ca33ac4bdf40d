package delivery_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tu-usuario/portaria-pro/internal/domain"
	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
	"github.com/tu-usuario/portaria-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de repositorio
// ──────────────────────────────────────────────────────────────────────────────

type fakeBuildingRepo struct {
	mu        sync.Mutex
	buildings map[string]*entity.Building
}

func newFakeBuildingRepo(list ...*entity.Building) *fakeBuildingRepo {
	r := &fakeBuildingRepo{buildings: make(map[string]*entity.Building)}
	for _, b := range list {
		cp := *b
		r.buildings[b.ID] = &cp
	}
	return r
}

func (r *fakeBuildingRepo) Create(b *entity.Building) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.buildings[b.ID] = &cp
	return nil
}

func (r *fakeBuildingRepo) GetByID(id string) (*entity.Building, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.buildings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBuildingRepo) GetByRegistrationCode(code string) (*entity.Building, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.buildings {
		if strings.EqualFold(b.RegistrationCode, code) {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeBuildingRepo) CodeExists(code string) (bool, error) {
	b, _ := r.GetByRegistrationCode(code)
	return b != nil, nil
}

func (r *fakeBuildingRepo) Update(b *entity.Building) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.buildings[b.ID] = &cp
	return nil
}

func (r *fakeBuildingRepo) List(limit, offset int) ([]*entity.Building, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Building, 0, len(r.buildings))
	for _, b := range r.buildings {
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// IncrementUsage replica el contrato del storage real: incremento condicional,
// ErrQuotaExceeded si el contador ya alcanzó la cuota (salvo ilimitada).
func (r *fakeBuildingRepo) IncrementUsage(id string, quota int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.buildings[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !entity.IsUnlimited(quota) && b.MessagesUsed >= quota {
		return domain.ErrQuotaExceeded
	}
	b.MessagesUsed++
	return nil
}

func (r *fakeBuildingRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.buildings, id)
	return nil
}

func (r *fakeBuildingRepo) messagesUsed(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buildings[id].MessagesUsed
}

type fakeApartmentRepo struct {
	apartments map[string]*entity.Apartment
}

func newFakeApartmentRepo(list ...*entity.Apartment) *fakeApartmentRepo {
	r := &fakeApartmentRepo{apartments: make(map[string]*entity.Apartment)}
	for _, a := range list {
		r.apartments[a.ID] = a
	}
	return r
}

func (r *fakeApartmentRepo) Create(a *entity.Apartment) error {
	r.apartments[a.ID] = a
	return nil
}

func (r *fakeApartmentRepo) CreateBatch(list []*entity.Apartment) error {
	for _, a := range list {
		r.apartments[a.ID] = a
	}
	return nil
}

func (r *fakeApartmentRepo) GetByID(id string) (*entity.Apartment, error) {
	a, ok := r.apartments[id]
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (r *fakeApartmentRepo) GetByBuildingAndNumber(buildingID, number string) (*entity.Apartment, error) {
	var oldest *entity.Apartment
	for _, a := range r.apartments {
		if a.BuildingID != buildingID || a.Number != number {
			continue
		}
		if oldest == nil || a.CreatedAt.Before(oldest.CreatedAt) {
			oldest = a
		}
	}
	return oldest, nil
}

func (r *fakeApartmentRepo) ListByBuilding(buildingID string) ([]*entity.Apartment, error) {
	out := []*entity.Apartment{}
	for _, a := range r.apartments {
		if a.BuildingID == buildingID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeApartmentRepo) ListWithPhones(buildingID string) ([]*entity.ApartmentWithPhones, error) {
	return nil, nil
}

func (r *fakeApartmentRepo) CountByBuilding(buildingID string) (int, error) {
	list, _ := r.ListByBuilding(buildingID)
	return len(list), nil
}

func (r *fakeApartmentRepo) UpdateNumber(id, number string) error {
	if a, ok := r.apartments[id]; ok {
		a.Number = number
	}
	return nil
}

func (r *fakeApartmentRepo) DeleteByBuilding(buildingID string) error {
	for id, a := range r.apartments {
		if a.BuildingID == buildingID {
			delete(r.apartments, id)
		}
	}
	return nil
}

type fakePhoneRepo struct {
	phones map[string][]entity.PhoneRegistration // por apartmentID
}

func newFakePhoneRepo() *fakePhoneRepo {
	return &fakePhoneRepo{phones: make(map[string][]entity.PhoneRegistration)}
}

func (r *fakePhoneRepo) Create(p *entity.PhoneRegistration) error {
	r.phones[p.ApartmentID] = append(r.phones[p.ApartmentID], *p)
	return nil
}

func (r *fakePhoneRepo) Delete(id string) error {
	for aptID, list := range r.phones {
		for i, p := range list {
			if p.ID == id {
				r.phones[aptID] = append(list[:i], list[i+1:]...)
				return nil
			}
		}
	}
	return nil // idempotente
}

func (r *fakePhoneRepo) ListByApartment(apartmentID string) ([]entity.PhoneRegistration, error) {
	return r.phones[apartmentID], nil
}

func (r *fakePhoneRepo) ListByBuilding(buildingID string) ([]entity.PhoneListing, error) {
	return nil, nil
}

func (r *fakePhoneRepo) DeleteByBuilding(buildingID string) error {
	return nil
}

type fakeDeliveryRepo struct {
	mu      sync.Mutex
	records []*entity.DeliveryRecord
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{}
}

func (r *fakeDeliveryRepo) Append(rec *entity.DeliveryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rec
	r.records = append(r.records, &cp)
	return nil
}

func (r *fakeDeliveryRepo) Query(buildingID string, f repository.DeliveryFilter) ([]*entity.DeliveryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.DeliveryRecord{}
	for _, rec := range r.records {
		if rec.BuildingID != buildingID {
			continue
		}
		if f.StartDate != nil && rec.CreatedAt.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && rec.CreatedAt.After(*f.EndDate) {
			continue
		}
		if f.ApartmentNumber != "" && rec.ApartmentNumber != f.ApartmentNumber {
			continue
		}
		if f.Status != "" && rec.Status != f.Status {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	// Más recientes primero, como el storage real.
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeDeliveryRepo) DeleteByBuilding(buildingID string) error {
	return nil
}

// deliveryFilterAll filtro vacío: devuelve todo el historial del edificio.
func deliveryFilterAll() repository.DeliveryFilter {
	return repository.DeliveryFilter{}
}

func (r *fakeDeliveryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fake del sender de WhatsApp
// ──────────────────────────────────────────────────────────────────────────────

type sentMessage struct {
	Phones  []string
	Message string
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error // si no es nil, todo Send falla
}

func (s *fakeSender) Send(ctx context.Context, phones []string, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMessage{Phones: phones, Message: message})
	return nil
}

func (s *fakeSender) calls() []sentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sent
}
