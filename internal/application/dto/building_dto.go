package dto

import "time"

// CreateBuildingRequest alta de edificio por el superadmin. Provisiona también
// el usuario admin inicial.
type CreateBuildingRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Plan          string `json:"plan"`
	NumApartments int    `json:"num_apartments"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
	AdminName     string `json:"admin_name"`
}

// UpdateBuildingRequest edición parcial (punteros nil = campo sin tocar).
type UpdateBuildingRequest struct {
	Address       *string `json:"address"`
	Plan          *string `json:"plan"`
	Active        *bool   `json:"active"`
	CustomMessage *string `json:"custom_message"`
}

// BuildingResponse edificio completo (vistas admin/superadmin).
type BuildingResponse struct {
	ID               string    `json:"id"`
	RegistrationCode string    `json:"registration_code"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Plan             string    `json:"plan"`
	MessagesUsed     int       `json:"messages_used"`
	NumApartments    int       `json:"num_apartments"`
	Active           bool      `json:"active"`
	CustomMessage    string    `json:"custom_message"`
	CreatedAt        time.Time `json:"created_at"`
}

// PublicBuildingResponse vista pública del lookup por código de registro.
// No expone nada más allá de id y nombre (endpoint sin autenticación).
type PublicBuildingResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
