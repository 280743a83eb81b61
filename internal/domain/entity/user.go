package entity

import "time"

// Estados válidos para User.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// User representa un usuario interno del CRM (vendedor, marketing, soporte o admin).
// Permissions son permisos explícitos adicionales a los del rol; nunca restan.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string   // "Sales", "Marketing", "Tech Support", "Admin"
	Status       string   // active, inactive, suspended
	Permissions  []string // permisos explícitos por usuario (unión con los del rol)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive informa si el usuario puede operar. Solo "active" cuenta:
// inactive y suspended quedan sin rol ni permisos efectivos.
func (u *User) IsActive() bool {
	return u != nil && u.Status == UserStatusActive
}
