package usecase

import (
	"github.com/tu-usuario/portaria-pro/internal/application/dto"
	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
	"github.com/tu-usuario/portaria-pro/internal/domain/plan"
)

// PlanUseCase consulta y edición del catálogo de planes (superadmin).
type PlanUseCase struct {
	plans *plan.Registry
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(plans *plan.Registry) *PlanUseCase {
	return &PlanUseCase{plans: plans}
}

// List catálogo completo en orden fijo de enumeración.
func (uc *PlanUseCase) List() []*dto.PlanResponse {
	list := uc.plans.List()
	out := make([]*dto.PlanResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPlanResponse(p))
	}
	return out
}

// Get plan por clave.
func (uc *PlanUseCase) Get(key string) (*dto.PlanResponse, error) {
	p, err := uc.plans.Get(key)
	if err != nil {
		return nil, err
	}
	return toPlanResponse(p), nil
}

// Replace sustituye la entrada completa del catálogo (todo o nada): nunca
// puede quedar un plan con precio nuevo y cuota vieja.
func (uc *PlanUseCase) Replace(key string, in dto.ReplacePlanRequest) (*dto.PlanResponse, error) {
	p := entity.Plan{
		Key:           key,
		MonthlyPrice:  in.MonthlyPrice,
		MessageQuota:  in.MessageQuota,
		MaxApartments: in.MaxApartments,
		TrialDays:     in.TrialDays,
	}
	if err := uc.plans.Replace(p); err != nil {
		return nil, err
	}
	return toPlanResponse(p), nil
}

func toPlanResponse(p entity.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		Key:                p.Key,
		MonthlyPrice:       p.MonthlyPrice,
		MessageQuota:       p.MessageQuota,
		QuotaUnlimited:     entity.IsUnlimited(p.MessageQuota),
		MaxApartments:      p.MaxApartments,
		ApartmentUnlimited: entity.IsUnlimited(p.MaxApartments),
		TrialDays:          p.TrialDays,
	}
}
