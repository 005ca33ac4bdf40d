package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/tu-usuario/portaria-pro/internal/domain"
	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
	"github.com/tu-usuario/portaria-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de repositorio
// ──────────────────────────────────────────────────────────────────────────────

type fakeBuildingRepo struct {
	buildings map[string]*entity.Building
	// forceCollisions hace que los próximos N chequeos de código reporten
	// colisión, para probar el reintento del generador.
	forceCollisions int
	codeChecks      int
}

func newFakeBuildingRepo(list ...*entity.Building) *fakeBuildingRepo {
	r := &fakeBuildingRepo{buildings: make(map[string]*entity.Building)}
	for _, b := range list {
		r.buildings[b.ID] = b
	}
	return r
}

func (r *fakeBuildingRepo) Create(b *entity.Building) error {
	r.buildings[b.ID] = b
	return nil
}

func (r *fakeBuildingRepo) GetByID(id string) (*entity.Building, error) {
	return r.buildings[id], nil
}

func (r *fakeBuildingRepo) GetByRegistrationCode(code string) (*entity.Building, error) {
	for _, b := range r.buildings {
		if strings.EqualFold(b.RegistrationCode, code) {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBuildingRepo) CodeExists(code string) (bool, error) {
	r.codeChecks++
	if r.forceCollisions > 0 {
		r.forceCollisions--
		return true, nil
	}
	b, _ := r.GetByRegistrationCode(code)
	return b != nil, nil
}

func (r *fakeBuildingRepo) Update(b *entity.Building) error {
	r.buildings[b.ID] = b
	return nil
}

func (r *fakeBuildingRepo) List(limit, offset int) ([]*entity.Building, error) {
	out := make([]*entity.Building, 0, len(r.buildings))
	for _, b := range r.buildings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if offset >= len(out) {
		return []*entity.Building{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeBuildingRepo) IncrementUsage(id string, quota int) error {
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
	delete(r.buildings, id)
	return nil
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
	return r.apartments[id], nil
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
	list, _ := r.ListByBuilding(buildingID)
	out := make([]*entity.ApartmentWithPhones, 0, len(list))
	for _, a := range list {
		out = append(out, &entity.ApartmentWithPhones{Apartment: *a, Phones: []entity.PhoneRegistration{}})
	}
	return out, nil
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
	return []entity.PhoneListing{}, nil
}

func (r *fakePhoneRepo) DeleteByBuilding(buildingID string) error {
	r.phones = make(map[string][]entity.PhoneRegistration)
	return nil
}

type fakeDeliveryRepo struct {
	records []*entity.DeliveryRecord
}

func (r *fakeDeliveryRepo) Append(rec *entity.DeliveryRecord) error {
	r.records = append(r.records, rec)
	return nil
}

func (r *fakeDeliveryRepo) Query(buildingID string, f repository.DeliveryFilter) ([]*entity.DeliveryRecord, error) {
	return r.records, nil
}

func (r *fakeDeliveryRepo) DeleteByBuilding(buildingID string) error {
	r.records = nil
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListByBuilding(buildingID string) ([]*entity.User, error) {
	out := []*entity.User{}
	for _, u := range r.users {
		if u.BuildingID == buildingID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) DeleteByBuilding(buildingID string) error {
	for id, u := range r.users {
		if u.BuildingID == buildingID {
			delete(r.users, id)
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fake del runner transaccional de la cascada
// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta la función con los mismos repos en memoria (sin
// transacción real) y registra cuántas veces corrió.
type fakeTxRunner struct {
	buildings  *fakeBuildingRepo
	apartments *fakeApartmentRepo
	phones     *fakePhoneRepo
	deliveries *fakeDeliveryRepo
	users      *fakeUserRepo
	runs       int
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	buildingRepo repository.BuildingRepository,
	apartmentRepo repository.ApartmentRepository,
	phoneRepo repository.PhoneRepository,
	deliveryRepo repository.DeliveryRepository,
	userRepo repository.UserRepository,
) error) error {
	tx.runs++
	return fn(tx.buildings, tx.apartments, tx.phones, tx.deliveries, tx.users)
}
