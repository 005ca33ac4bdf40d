package dto

import "time"

// CreateApartmentRequest alta de apartamento vía edición admin.
type CreateApartmentRequest struct {
	Number string `json:"number"`
}

// RenameApartmentRequest cambio de número del apartamento.
type RenameApartmentRequest struct {
	Number string `json:"number"`
}

// AddPhoneRequest registro de teléfono en un apartamento.
type AddPhoneRequest struct {
	WhatsApp string `json:"whatsapp"`
	Name     string `json:"name"`
}

// PublicAddPhoneRequest auto-registro de residente vía código del edificio.
type PublicAddPhoneRequest struct {
	ApartmentNumber string `json:"apartment_number"`
	WhatsApp        string `json:"whatsapp"`
	Name            string `json:"name"`
}

// PhoneResponse teléfono registrado. WhatsApp viene formateado para la UI.
type PhoneResponse struct {
	ID        string    `json:"id"`
	WhatsApp  string    `json:"whatsapp"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ApartmentResponse apartamento con sus teléfonos embebidos.
type ApartmentResponse struct {
	ID     string          `json:"id"`
	Number string          `json:"number"`
	Phones []PhoneResponse `json:"phones"`
	// DuplicateNumber avisa que otro apartamento del edificio comparte el número.
	DuplicateNumber bool `json:"duplicate_number,omitempty"`
}

// PhoneListingResponse fila del listado consolidado de teléfonos.
type PhoneListingResponse struct {
	ApartmentNumber string `json:"apartment_number"`
	PhoneResponse
}
