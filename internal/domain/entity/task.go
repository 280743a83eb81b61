package entity

import "time"

// Estados de una tarea.
const (
	TaskStatusPending   = "pending"
	TaskStatusDone      = "done"
	TaskStatusCancelled = "cancelled"
)

// Task representa una actividad comercial con dueño (llamada, visita, seguimiento).
// El dueño puede editarla con edit_own_tasks aunque no tenga edit_tasks global.
type Task struct {
	ID        string
	OwnerID   string // usuario dueño de la tarea
	CompanyID string // empresa cliente relacionada (opcional)
	Title     string
	Notes     string
	DueDate   *time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
