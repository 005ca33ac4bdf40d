package dto

import "github.com/shopspring/decimal"

// PlanResponse entrada del catálogo de planes.
// Unlimited refleja el sentinel de cuota/tope ilimitado para que la UI no
// tenga que conocer el número mágico.
type PlanResponse struct {
	Key                string          `json:"key"`
	MonthlyPrice       decimal.Decimal `json:"monthly_price"`
	MessageQuota       int             `json:"message_quota"`
	QuotaUnlimited     bool            `json:"quota_unlimited"`
	MaxApartments      int             `json:"max_apartments"`
	ApartmentUnlimited bool            `json:"apartments_unlimited"`
	TrialDays          int             `json:"trial_days,omitempty"`
}

// ReplacePlanRequest reemplazo completo de una entrada del catálogo (todo o nada).
type ReplacePlanRequest struct {
	MonthlyPrice  decimal.Decimal `json:"monthly_price"`
	MessageQuota  int             `json:"message_quota"`
	MaxApartments int             `json:"max_apartments"`
	TrialDays     int             `json:"trial_days"`
}
