package dto

import "time"

// CreateTaskRequest body para POST /api/tasks.
type CreateTaskRequest struct {
	CompanyID string     `json:"company_id,omitempty"`
	Title     string     `json:"title" validate:"required,min=1,max=300"`
	Notes     string     `json:"notes,omitempty"`
	DueDate   *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskRequest body para PUT /api/tasks/:id.
// La autorización decide entre edit_tasks (global) y edit_own_tasks (dueño).
type UpdateTaskRequest struct {
	Title   *string    `json:"title,omitempty"`
	Notes   *string    `json:"notes,omitempty"`
	DueDate *time.Time `json:"due_date,omitempty"`
	Status  *string    `json:"status,omitempty" validate:"omitempty,oneof=pending done cancelled"`
}

// TaskResponse tarea en respuestas.
type TaskResponse struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	CompanyID string     `json:"company_id,omitempty"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes,omitempty"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TaskListResponse listado paginado de tareas.
type TaskListResponse struct {
	Items []TaskResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
