package usecase

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

// TaskUseCase tareas por usuario.
type TaskUseCase struct {
	repo repository.TaskRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo}
}

// Create crea una tarea para ownerID sin comprobar que el usuario exista.
func (uc *TaskUseCase) Create(ctx context.Context, ownerID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, domain.NewFieldError("user_id", "required")
	}
	t := &entity.Task{
		ID:          entity.NewID(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Completed:   in.Completed,
		OwnerID:     ownerID,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toTaskResponse(t), nil
}

func (uc *TaskUseCase) GetByID(ctx context.Context, id string) (*dto.TaskResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(t), nil
}

func (uc *TaskUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.TaskResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(t *entity.Task, _ int) dto.TaskResponse { return *toTaskResponse(t) }), nil
}

// Update aplica solo los campos presentes.
func (uc *TaskUseCase) Update(ctx context.Context, id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		t.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTaskResponse(t), nil
}

func (uc *TaskUseCase) Delete(ctx context.Context, id string) (*dto.TaskResponse, error) {
	t, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(t), nil
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
