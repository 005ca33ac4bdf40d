// Package delivery implementa el flujo de notificación de entregas y los
// reportes sobre el historial.
package delivery

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/portaria-pro/internal/application/dto"
	"github.com/tu-usuario/portaria-pro/internal/domain"
	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
	"github.com/tu-usuario/portaria-pro/internal/domain/plan"
	"github.com/tu-usuario/portaria-pro/internal/domain/repository"
	"github.com/tu-usuario/portaria-pro/pkg/logger"
)

// Placeholders reconocidos en el mensaje personalizado del edificio.
var placeholders = []string{"[numero]", "[apartmentNumber]"}

// NotifyUseCase máquina de estados de una entrega:
// CHECK_ACTIVE → CHECK_QUOTA → CHECK_PHONES → DISPATCH → RECORD.
type NotifyUseCase struct {
	buildingRepo  repository.BuildingRepository
	apartmentRepo repository.ApartmentRepository
	phoneRepo     repository.PhoneRepository
	deliveryRepo  repository.DeliveryRepository
	plans         *plan.Registry
	sender        MessageSender
	log           *logger.Logger

	// Serializa check-then-increment por edificio: sin esto dos porteros
	// simultáneos podrían pasar CHECK_QUOTA con una sola unidad restante.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewNotifyUseCase construye el caso de uso.
func NewNotifyUseCase(
	buildingRepo repository.BuildingRepository,
	apartmentRepo repository.ApartmentRepository,
	phoneRepo repository.PhoneRepository,
	deliveryRepo repository.DeliveryRepository,
	plans *plan.Registry,
	sender MessageSender,
	log *logger.Logger,
) *NotifyUseCase {
	return &NotifyUseCase{
		buildingRepo:  buildingRepo,
		apartmentRepo: apartmentRepo,
		phoneRepo:     phoneRepo,
		deliveryRepo:  deliveryRepo,
		plans:         plans,
		sender:        sender,
		log:           log,
		locks:         make(map[string]*sync.Mutex),
	}
}

func (uc *NotifyUseCase) buildingLock(buildingID string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	l, ok := uc.locks[buildingID]
	if !ok {
		l = &sync.Mutex{}
		uc.locks[buildingID] = l
	}
	return l
}

// Notify dispara una notificación de entrega para un apartamento.
//
// Invariantes:
//   - edificio inactivo o cuota agotada => se aborta antes de cualquier efecto,
//     no se escribe DeliveryRecord ni se toca el contador;
//   - apartamento sin teléfonos => error del caller, no consume cuota;
//   - éxito => messages_used sube exactamente 1, sin importar cuántos
//     teléfonos se notificaron;
//   - fallo de envío => se registra status=failed y NO se consume cuota.
func (uc *NotifyUseCase) Notify(ctx context.Context, buildingID string, in dto.NotifyRequest) (*dto.DeliveryResponse, error) {
	lock := uc.buildingLock(buildingID)
	lock.Lock()
	defer lock.Unlock()

	// CHECK_ACTIVE
	b, err := uc.buildingRepo.GetByID(buildingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if !b.Active {
		return nil, domain.ErrBuildingInactive
	}

	// CHECK_QUOTA
	p, err := uc.plans.Get(b.Plan)
	if err != nil {
		return nil, err
	}
	if !entity.IsUnlimited(p.MessageQuota) && b.MessagesUsed >= p.MessageQuota {
		return nil, domain.ErrQuotaExceeded
	}

	// CHECK_PHONES
	apt, err := uc.apartmentRepo.GetByID(in.ApartmentID)
	if err != nil {
		return nil, err
	}
	if apt == nil || apt.BuildingID != buildingID {
		return nil, domain.ErrNotFound
	}
	phones, err := uc.phoneRepo.ListByApartment(apt.ID)
	if err != nil {
		return nil, err
	}
	if len(phones) == 0 {
		return nil, domain.ErrNoPhones
	}

	// DISPATCH — un solo evento atómico con toda la lista de teléfonos.
	numbers := make([]string, 0, len(phones))
	for _, ph := range phones {
		numbers = append(numbers, ph.WhatsApp)
	}
	message := renderMessage(b.CustomMessage, apt.Number)
	sendErr := uc.sender.Send(ctx, numbers, message)

	// RECORD
	record := &entity.DeliveryRecord{
		ID:              uuid.New().String(),
		BuildingID:      b.ID,
		ApartmentID:     apt.ID,
		ApartmentNumber: apt.Number,
		DoormanName:     strings.TrimSpace(in.DoormanName),
		CreatedAt:       time.Now(),
	}
	if sendErr != nil {
		// El envío fallido se registra pero no consume cuota.
		record.Status = entity.DeliveryFailed
		record.PhonesNotified = []string{}
		if err := uc.deliveryRepo.Append(record); err != nil {
			return nil, err
		}
		uc.log.Warn().
			Str("building_id", b.ID).
			Str("apartment", apt.Number).
			Err(sendErr).
			Msg("envío de notificación fallido")
		return nil, fmt.Errorf("%w: %v", domain.ErrDispatchFailed, sendErr)
	}

	record.Status = entity.DeliverySuccess
	record.PhonesNotified = numbers
	// Incremento condicional en el storage: backstop del lock por edificio.
	if err := uc.buildingRepo.IncrementUsage(b.ID, p.MessageQuota); err != nil {
		return nil, err
	}
	if err := uc.deliveryRepo.Append(record); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("building_id", b.ID).
		Str("apartment", apt.Number).
		Int("phones", len(numbers)).
		Msg("notificación de entrega enviada")
	return toDeliveryResponse(record), nil
}

// renderMessage sustituye los placeholders por el número del apartamento.
func renderMessage(template, apartmentNumber string) string {
	msg := template
	for _, ph := range placeholders {
		msg = strings.ReplaceAll(msg, ph, apartmentNumber)
	}
	return msg
}

func toDeliveryResponse(r *entity.DeliveryRecord) *dto.DeliveryResponse {
	return &dto.DeliveryResponse{
		ID:              r.ID,
		ApartmentNumber: r.ApartmentNumber,
		DoormanName:     r.DoormanName,
		Status:          r.Status,
		PhonesNotified:  r.PhonesNotified,
		CreatedAt:       r.CreatedAt,
	}
}
