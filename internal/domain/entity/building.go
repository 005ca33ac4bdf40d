package entity

import "time"

// Building representa un edificio/condominio, tenant de la plataforma.
// RegistrationCode es un código corto alfanumérico que los residentes usan para
// auto-registrar su teléfono sin cuenta; la búsqueda es case-insensitive.
type Building struct {
	ID               string
	RegistrationCode string
	Name             string
	Address          string
	Plan             string // referencia a Plan.Key
	MessagesUsed     int    // contador monótono; el reset por período es externo
	NumApartments    int
	Active           bool // inactivo => rechaza toda operación de entrega
	CustomMessage    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Apartment unidad dentro de un edificio. Number es texto libre ("101", "A1",
// "Bloco B 23"); no se exige unicidad dentro del edificio.
type Apartment struct {
	ID         string
	BuildingID string
	Number     string
	CreatedAt  time.Time
}

// PhoneRegistration teléfono WhatsApp registrado en un apartamento.
// Un apartamento puede tener varios teléfonos (miembros del hogar);
// cada teléfono pertenece a exactamente un apartamento.
type PhoneRegistration struct {
	ID          string
	ApartmentID string
	WhatsApp    string // dígitos normalizados con DDI (ej. 5511911111111)
	Name        string
	CreatedAt   time.Time
}

// ApartmentWithPhones apartamento con sus teléfonos embebidos (listados admin).
type ApartmentWithPhones struct {
	Apartment
	Phones []PhoneRegistration
}

// PhoneListing teléfono junto al número de su apartamento (reporte consolidado).
type PhoneListing struct {
	ApartmentNumber string
	Phone           PhoneRegistration
}
