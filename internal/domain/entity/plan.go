package entity

import "github.com/shopspring/decimal"

// Claves de plan válidas (orden fijo de enumeración en plan.Registry).
const (
	PlanTrial    = "trial"
	PlanBasic    = "basic"
	PlanStandard = "standard"
	PlanPremium  = "premium"
)

// UnlimitedSentinel marca cuota o tope de apartamentos ilimitado.
// Cualquier valor >= a este sentinel se trata como infinito en las comparaciones.
const UnlimitedSentinel = 999999

// Plan entrada inmutable del catálogo de suscripciones.
// Las ediciones del super-admin reemplazan la entrada completa (todo o nada),
// nunca campos sueltos.
type Plan struct {
	Key           string
	MonthlyPrice  decimal.Decimal
	MessageQuota  int // mensajes por período de facturación; UnlimitedSentinel = sin tope
	MaxApartments int // UnlimitedSentinel = sin tope
	TrialDays     int // 0 = no aplica
}

// IsUnlimited indica si un valor de cuota o tope debe tratarse como infinito.
func IsUnlimited(n int) bool {
	return n >= UnlimitedSentinel
}
