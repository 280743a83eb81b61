package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/access"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// TaskUseCase actividades comerciales con dueño. La edición pasa por
// access.CanPerformAction: edit_tasks global o edit_own_tasks siendo dueño.
type TaskUseCase struct {
	repo repository.TaskRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo}
}

// Create crea una tarea a nombre del actor.
func (uc *TaskUseCase) Create(actorID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	t := &entity.Task{
		ID:        uuid.New().String(),
		OwnerID:   actorID,
		CompanyID: in.CompanyID,
		Title:     in.Title,
		Notes:     in.Notes,
		DueDate:   in.DueDate,
		Status:    entity.TaskStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return taskToResponse(t), nil
}

// GetByID obtiene una tarea por ID.
func (uc *TaskUseCase) GetByID(id string) (*dto.TaskResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return taskToResponse(t), nil
}

// Update edita la tarea si el actor está autorizado: edit_tasks alcanza
// siempre; edit_own_tasks solo si el actor es el dueño. Devuelve ErrForbidden
// en cualquier otro caso.
func (uc *TaskUseCase) Update(actor *access.User, actorID, taskID string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	t, err := uc.repo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	isOwner := t.OwnerID == actorID
	if !access.CanPerformAction(actor, "tasks", access.ActionUpdate, isOwner) {
		return nil, domain.ErrForbidden
	}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Notes != nil {
		t.Notes = *in.Notes
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return taskToResponse(t), nil
}

// Delete elimina la tarea; requiere delete_tasks (no hay camino delete_own).
func (uc *TaskUseCase) Delete(actor *access.User, taskID string) error {
	if !access.CanPerformAction(actor, "tasks", access.ActionDelete, false) {
		return domain.ErrForbidden
	}
	t, err := uc.repo.GetByID(taskID)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(taskID)
}

// List lista tareas; con ownerID filtra las del dueño.
func (uc *TaskUseCase) List(ownerID string, limit, offset int) (*dto.TaskListResponse, error) {
	var list []*entity.Task
	var err error
	if ownerID != "" {
		list, err = uc.repo.ListByOwner(ownerID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaskResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *taskToResponse(t))
	}
	return &dto.TaskListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func taskToResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		CompanyID: t.CompanyID,
		Title:     t.Title,
		Notes:     t.Notes,
		DueDate:   t.DueDate,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
