// Package plan contiene el catálogo estático de planes de suscripción.
// Los planes son configuración, no datos de usuario: viven en memoria y las
// ediciones del super-admin reemplazan la entrada completa de forma atómica.
package plan

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/portaria-pro/internal/domain"
	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
)

// order orden fijo de enumeración del catálogo (List siempre lo respeta).
var order = []string{entity.PlanTrial, entity.PlanBasic, entity.PlanStandard, entity.PlanPremium}

// Registry catálogo de planes con reemplazo atómico por entrada.
type Registry struct {
	mu    sync.RWMutex
	plans map[string]entity.Plan
}

// NewRegistry construye el catálogo con los planes por defecto.
func NewRegistry() *Registry {
	return &Registry{plans: defaultCatalog()}
}

func defaultCatalog() map[string]entity.Plan {
	return map[string]entity.Plan{
		entity.PlanTrial: {
			Key:           entity.PlanTrial,
			MonthlyPrice:  decimal.Zero,
			MessageQuota:  50,
			MaxApartments: 20,
			TrialDays:     7,
		},
		entity.PlanBasic: {
			Key:           entity.PlanBasic,
			MonthlyPrice:  decimal.NewFromInt(49),
			MessageQuota:  300,
			MaxApartments: 50,
		},
		entity.PlanStandard: {
			Key:           entity.PlanStandard,
			MonthlyPrice:  decimal.NewFromInt(99),
			MessageQuota:  1000,
			MaxApartments: 150,
		},
		entity.PlanPremium: {
			Key:           entity.PlanPremium,
			MonthlyPrice:  decimal.NewFromInt(199),
			MessageQuota:  entity.UnlimitedSentinel,
			MaxApartments: entity.UnlimitedSentinel,
		},
	}
}

// Get devuelve el plan por clave, o ErrNotFound.
func (r *Registry) Get(key string) (entity.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[key]
	if !ok {
		return entity.Plan{}, domain.ErrNotFound
	}
	return p, nil
}

// List devuelve los planes en el orden fijo de enumeración.
func (r *Registry) List() []entity.Plan {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Plan, 0, len(order))
	for _, key := range order {
		if p, ok := r.plans[key]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Replace sustituye la entrada completa del catálogo (todo o nada). Rechaza
// claves fuera de la enumeración fija para no dejar planes huérfanos.
func (r *Registry) Replace(p entity.Plan) error {
	valid := false
	for _, key := range order {
		if p.Key == key {
			valid = true
			break
		}
	}
	if !valid {
		return domain.ErrInvalidInput
	}
	if p.MessageQuota < 0 || p.MaxApartments <= 0 || p.MonthlyPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[p.Key] = p
	return nil
}
