package dto

import "time"

// NotifyRequest disparo de notificación de entrega por el portero.
type NotifyRequest struct {
	ApartmentID string `json:"apartment_id"`
	DoormanName string `json:"doorman_name"`
}

// DeliveryResponse entrada del historial de entregas.
type DeliveryResponse struct {
	ID              string    `json:"id"`
	ApartmentNumber string    `json:"apartment_number"`
	DoormanName     string    `json:"doorman_name"`
	Status          string    `json:"status"`
	PhonesNotified  []string  `json:"phones_notified"`
	CreatedAt       time.Time `json:"created_at"`
}

// DeliveryQuery filtros opcionales del historial (se combinan con AND).
type DeliveryQuery struct {
	StartDate       string `query:"start_date"` // YYYY-MM-DD
	EndDate         string `query:"end_date"`   // YYYY-MM-DD
	ApartmentNumber string `query:"apartment_number"`
	Status          string `query:"status"`
}

// ApartmentRank apartamento rankeado por cantidad de entregas.
type ApartmentRank struct {
	ApartmentNumber string `json:"apartment_number"`
	Deliveries      int    `json:"deliveries"`
}

// DeliveryStatsResponse agregados derivados del historial (recomputables
// en cualquier momento a partir de Query).
type DeliveryStatsResponse struct {
	TotalDeliveries     int             `json:"total_deliveries"`
	Successful          int             `json:"successful"`
	Failed              int             `json:"failed"`
	TotalPhonesNotified int             `json:"total_phones_notified"`
	TopApartments       []ApartmentRank `json:"top_apartments"`
}
