package usecase

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

// NoteUseCase notas privadas. ownerID siempre sale del token, nunca del cuerpo;
// la nota de otro usuario responde como inexistente.
type NoteUseCase struct {
	repo repository.NoteRepository
}

// NewNoteUseCase construye el caso de uso.
func NewNoteUseCase(repo repository.NoteRepository) *NoteUseCase {
	return &NoteUseCase{repo: repo}
}

func (uc *NoteUseCase) Create(ctx context.Context, ownerID string, in dto.NoteRequest) (*dto.NoteResponse, error) {
	n := &entity.Note{ID: entity.NewID(), Title: strings.TrimSpace(in.Title), Content: in.Content, OwnerID: ownerID}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return toNoteResponse(n), nil
}

func (uc *NoteUseCase) Get(ctx context.Context, ownerID, id string) (*dto.NoteResponse, error) {
	n, err := uc.repo.GetByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(n), nil
}

func (uc *NoteUseCase) List(ctx context.Context, ownerID string, page dto.PageRequest) ([]dto.NoteResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByOwner(ctx, ownerID, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(n *entity.Note, _ int) dto.NoteResponse { return *toNoteResponse(n) }), nil
}

func (uc *NoteUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	n, err := uc.repo.GetByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		n.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		n.Content = *in.Content
	}
	if err := uc.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return toNoteResponse(n), nil
}

func (uc *NoteUseCase) Delete(ctx context.Context, ownerID, id string) (*dto.NoteResponse, error) {
	n, err := uc.repo.DeleteByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(n), nil
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Owner:     n.OwnerID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
