package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin = "superadmin" // gestiona edificios y planes de toda la plataforma
	RoleAdmin      = "admin"      // gestiona su edificio: apartamentos, teléfonos, historial
	RolePorteiro   = "porteiro"   // solo dispara notificaciones de entrega
)

// User usuario del sistema. Los roles admin y porteiro pertenecen a un Building;
// superadmin tiene BuildingID vacío.
type User struct {
	ID           string
	BuildingID   string
	Email        string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Name         string
	Role         string // superadmin, admin, porteiro
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
