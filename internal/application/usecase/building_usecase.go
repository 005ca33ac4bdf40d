package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/portaria-pro/internal/application/dto"
	"github.com/tu-usuario/portaria-pro/internal/domain"
	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
	"github.com/tu-usuario/portaria-pro/internal/domain/plan"
	"github.com/tu-usuario/portaria-pro/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// Alfabeto del código de registro: sin 0/O/1/I para que sea fácil de dictar.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 6

// maxCodeAttempts reintentos de generación ante colisión de código.
const maxCodeAttempts = 10

// BuildingUseCase casos de uso del registro de edificios (tenants).
type BuildingUseCase struct {
	buildingRepo  repository.BuildingRepository
	apartmentRepo repository.ApartmentRepository
	userRepo      repository.UserRepository
	plans         *plan.Registry
	tx            CascadeTxRunner
}

// NewBuildingUseCase construye el caso de uso.
func NewBuildingUseCase(
	buildingRepo repository.BuildingRepository,
	apartmentRepo repository.ApartmentRepository,
	userRepo repository.UserRepository,
	plans *plan.Registry,
	tx CascadeTxRunner,
) *BuildingUseCase {
	return &BuildingUseCase{
		buildingRepo:  buildingRepo,
		apartmentRepo: apartmentRepo,
		userRepo:      userRepo,
		plans:         plans,
		tx:            tx,
	}
}

// Create da de alta un edificio: genera código de registro único, crea los
// apartamentos iniciales numerados "1".."N" y provisiona el usuario admin.
func (uc *BuildingUseCase) Create(in dto.CreateBuildingRequest) (*dto.BuildingResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.NumApartments < 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.plans.Get(in.Plan)
	if err != nil {
		return nil, fmt.Errorf("plan %q: %w", in.Plan, domain.ErrInvalidInput)
	}
	if !entity.IsUnlimited(p.MaxApartments) && in.NumApartments > p.MaxApartments {
		return nil, domain.ErrPlanLimitExceeded
	}

	code, err := uc.generateCode()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	b := &entity.Building{
		ID:               uuid.New().String(),
		RegistrationCode: code,
		Name:             strings.TrimSpace(in.Name),
		Address:          strings.TrimSpace(in.Address),
		Plan:             p.Key,
		MessagesUsed:     0,
		NumApartments:    in.NumApartments,
		Active:           true,
		CustomMessage:    "Olá! Chegou uma encomenda para o apartamento [numero]. Retire na portaria.",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.buildingRepo.Create(b); err != nil {
		return nil, err
	}

	if in.NumApartments > 0 {
		apts := make([]*entity.Apartment, 0, in.NumApartments)
		for i := 1; i <= in.NumApartments; i++ {
			apts = append(apts, &entity.Apartment{
				ID:         uuid.New().String(),
				BuildingID: b.ID,
				Number:     strconv.Itoa(i),
				CreatedAt:  now,
			})
		}
		if err := uc.apartmentRepo.CreateBatch(apts); err != nil {
			return nil, err
		}
	}

	if in.AdminEmail != "" {
		if err := uc.provisionAdmin(b.ID, in); err != nil {
			return nil, err
		}
	}

	return toBuildingResponse(b), nil
}

// provisionAdmin crea el usuario admin inicial del edificio (bcrypt).
func (uc *BuildingUseCase) provisionAdmin(buildingID string, in dto.CreateBuildingRequest) error {
	existing, _ := uc.userRepo.FindByEmail(in.AdminEmail)
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	name := in.AdminName
	if name == "" {
		name = in.AdminEmail
	}
	now := time.Now()
	return uc.userRepo.Create(&entity.User{
		ID:           uuid.New().String(),
		BuildingID:   buildingID,
		Email:        in.AdminEmail,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// generateCode genera un código corto único, con reintento ante colisión.
func (uc *BuildingUseCase) generateCode() (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		buf := make([]byte, codeLength)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generar código: %w", err)
		}
		for i := range buf {
			buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
		}
		code := string(buf)
		exists, err := uc.buildingRepo.CodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("no se pudo generar un código de registro único tras %d intentos", maxCodeAttempts)
}

// FindByCode lookup público case-insensitive. Expone solo id y nombre:
// el endpoint no exige autenticación.
func (uc *BuildingUseCase) FindByCode(code string) (*dto.PublicBuildingResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	b, err := uc.buildingRepo.GetByRegistrationCode(code)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.PublicBuildingResponse{ID: b.ID, Name: b.Name}, nil
}

// GetByID devuelve el edificio completo (vistas admin/superadmin).
func (uc *BuildingUseCase) GetByID(id string) (*dto.BuildingResponse, error) {
	b, err := uc.buildingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return toBuildingResponse(b), nil
}

// List lista edificios con paginación (superadmin).
func (uc *BuildingUseCase) List(limit, offset int) ([]*dto.BuildingResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.buildingRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BuildingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBuildingResponse(b))
	}
	return out, nil
}

// Update edición parcial: dirección, mensaje, plan y flag activo son setters
// idempotentes; el cambio de plan se valida contra la cantidad actual de
// apartamentos (rechaza si excede el tope del plan nuevo, salvo ilimitado).
func (uc *BuildingUseCase) Update(id string, in dto.UpdateBuildingRequest) (*dto.BuildingResponse, error) {
	b, err := uc.buildingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}

	if in.Plan != nil && *in.Plan != b.Plan {
		newPlan, err := uc.plans.Get(*in.Plan)
		if err != nil {
			return nil, fmt.Errorf("plan %q: %w", *in.Plan, domain.ErrInvalidInput)
		}
		count, err := uc.apartmentRepo.CountByBuilding(id)
		if err != nil {
			return nil, err
		}
		if !entity.IsUnlimited(newPlan.MaxApartments) && count > newPlan.MaxApartments {
			return nil, domain.ErrPlanLimitExceeded
		}
		b.Plan = newPlan.Key
	}
	if in.Address != nil {
		b.Address = strings.TrimSpace(*in.Address)
	}
	if in.CustomMessage != nil {
		b.CustomMessage = *in.CustomMessage
	}
	if in.Active != nil {
		b.Active = *in.Active
	}
	b.UpdatedAt = time.Now()

	if err := uc.buildingRepo.Update(b); err != nil {
		return nil, err
	}
	return toBuildingResponse(b), nil
}

// Delete borra el edificio en cascada dentro de una transacción:
// teléfonos, apartamentos, historial de entregas, usuarios y el propio
// edificio. Irreversible.
func (uc *BuildingUseCase) Delete(ctx context.Context, id string) error {
	b, err := uc.buildingRepo.GetByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(
		buildingRepo repository.BuildingRepository,
		apartmentRepo repository.ApartmentRepository,
		phoneRepo repository.PhoneRepository,
		deliveryRepo repository.DeliveryRepository,
		userRepo repository.UserRepository,
	) error {
		if err := phoneRepo.DeleteByBuilding(id); err != nil {
			return err
		}
		if err := apartmentRepo.DeleteByBuilding(id); err != nil {
			return err
		}
		if err := deliveryRepo.DeleteByBuilding(id); err != nil {
			return err
		}
		if err := userRepo.DeleteByBuilding(id); err != nil {
			return err
		}
		return buildingRepo.Delete(id)
	})
}

func toBuildingResponse(b *entity.Building) *dto.BuildingResponse {
	return &dto.BuildingResponse{
		ID:               b.ID,
		RegistrationCode: b.RegistrationCode,
		Name:             b.Name,
		Address:          b.Address,
		Plan:             b.Plan,
		MessagesUsed:     b.MessagesUsed,
		NumApartments:    b.NumApartments,
		Active:           b.Active,
		CustomMessage:    b.CustomMessage,
		CreatedAt:        b.CreatedAt,
	}
}
