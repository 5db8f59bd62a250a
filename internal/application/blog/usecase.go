package blog

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/jhoicas/practica-api/internal/application/dto"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

// Sanitizer limpia HTML de contenido enviado por usuarios. El contenido se guarda
// tal como llega; la versión saneada solo se expone como content_html.
type Sanitizer interface {
	Sanitize(s string) string
}

// BlogUseCase autores, posts y comentarios.
type BlogUseCase struct {
	authors   repository.AuthorRepository
	posts     repository.PostRepository
	comments  repository.CommentRepository
	sanitizer Sanitizer
}

// NewBlogUseCase construye el caso de uso.
func NewBlogUseCase(authors repository.AuthorRepository, posts repository.PostRepository, comments repository.CommentRepository, sanitizer Sanitizer) *BlogUseCase {
	return &BlogUseCase{authors: authors, posts: posts, comments: comments, sanitizer: sanitizer}
}

// ── Autores ───────────────────────────────────────────────────────────────────

func (uc *BlogUseCase) CreateAuthor(ctx context.Context, in dto.AuthorRequest) (*dto.AuthorResponse, error) {
	a := &entity.Author{ID: entity.NewID(), Name: strings.TrimSpace(in.Name)}
	if err := uc.authors.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAuthorResponse(a), nil
}

func (uc *BlogUseCase) GetAuthor(ctx context.Context, id string) (*dto.AuthorResponse, error) {
	a, err := uc.authors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAuthorResponse(a), nil
}

func (uc *BlogUseCase) ListAuthors(ctx context.Context, page dto.PageRequest) ([]dto.AuthorResponse, error) {
	page.DefaultPage()
	list, err := uc.authors.List(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(a *entity.Author, _ int) dto.AuthorResponse { return *toAuthorResponse(a) }), nil
}

func (uc *BlogUseCase) UpdateAuthor(ctx context.Context, id string, in dto.AuthorRequest) (*dto.AuthorResponse, error) {
	a, err := uc.authors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Name = strings.TrimSpace(in.Name)
	if err := uc.authors.Update(ctx, a); err != nil {
		return nil, err
	}
	return toAuthorResponse(a), nil
}

// DeleteAuthor borra el autor y, en cascada, sus posts y comentarios.
func (uc *BlogUseCase) DeleteAuthor(ctx context.Context, id string) (*dto.AuthorResponse, error) {
	a, err := uc.authors.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAuthorResponse(a), nil
}

// ── Posts ─────────────────────────────────────────────────────────────────────

// CreatePost un autor inexistente es domain.ErrInvalidReference.
func (uc *BlogUseCase) CreatePost(ctx context.Context, in dto.CreatePostRequest) (*dto.PostResponse, error) {
	p := &entity.Post{
		ID:       entity.NewID(),
		Title:    strings.TrimSpace(in.Title),
		Content:  in.Content,
		AuthorID: in.AuthorID,
	}
	if err := uc.posts.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("crear post: %w", err)
	}
	return uc.toPostResponse(p), nil
}

func (uc *BlogUseCase) GetPost(ctx context.Context, id string) (*dto.PostResponse, error) {
	p, err := uc.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toPostResponse(p), nil
}

func (uc *BlogUseCase) ListPosts(ctx context.Context, page dto.PageRequest) ([]dto.PostResponse, error) {
	page.DefaultPage()
	list, err := uc.posts.List(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(p *entity.Post, _ int) dto.PostResponse { return *uc.toPostResponse(p) }), nil
}

func (uc *BlogUseCase) UpdatePost(ctx context.Context, id string, in dto.UpdatePostRequest) (*dto.PostResponse, error) {
	p, err := uc.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		p.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.AuthorID != nil {
		p.AuthorID = *in.AuthorID
	}
	if err := uc.posts.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("actualizar post: %w", err)
	}
	return uc.toPostResponse(p), nil
}

func (uc *BlogUseCase) DeletePost(ctx context.Context, id string) (*dto.PostResponse, error) {
	p, err := uc.posts.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toPostResponse(p), nil
}

// ── Comentarios ───────────────────────────────────────────────────────────────

// CreateComment el post debe existir (404 si no).
func (uc *BlogUseCase) CreateComment(ctx context.Context, postID string, in dto.CommentRequest) (*dto.CommentResponse, error) {
	if _, err := uc.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	c := &entity.Comment{ID: entity.NewID(), Content: in.Content, PostID: postID}
	if err := uc.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("crear comentario: %w", err)
	}
	return uc.toCommentResponse(c), nil
}

func (uc *BlogUseCase) ListPostComments(ctx context.Context, postID string, page dto.PageRequest) ([]dto.CommentResponse, error) {
	page.DefaultPage()
	if _, err := uc.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	list, err := uc.comments.ListByPost(ctx, postID, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(c *entity.Comment, _ int) dto.CommentResponse { return *uc.toCommentResponse(c) }), nil
}

func (uc *BlogUseCase) ListComments(ctx context.Context, page dto.PageRequest) ([]dto.CommentResponse, error) {
	page.DefaultPage()
	list, err := uc.comments.List(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(c *entity.Comment, _ int) dto.CommentResponse { return *uc.toCommentResponse(c) }), nil
}

func (uc *BlogUseCase) GetComment(ctx context.Context, id string) (*dto.CommentResponse, error) {
	c, err := uc.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toCommentResponse(c), nil
}

func (uc *BlogUseCase) UpdateComment(ctx context.Context, id string, in dto.CommentRequest) (*dto.CommentResponse, error) {
	c, err := uc.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Content = in.Content
	if err := uc.comments.Update(ctx, c); err != nil {
		return nil, err
	}
	return uc.toCommentResponse(c), nil
}

func (uc *BlogUseCase) DeleteComment(ctx context.Context, id string) (*dto.CommentResponse, error) {
	c, err := uc.comments.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toCommentResponse(c), nil
}

func toAuthorResponse(a *entity.Author) *dto.AuthorResponse {
	return &dto.AuthorResponse{ID: a.ID, Name: a.Name, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
}

func (uc *BlogUseCase) toPostResponse(p *entity.Post) *dto.PostResponse {
	return &dto.PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		ContentHTML: uc.sanitizer.Sanitize(p.Content),
		AuthorID:    p.AuthorID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (uc *BlogUseCase) toCommentResponse(c *entity.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:          c.ID,
		Content:     c.Content,
		ContentHTML: uc.sanitizer.Sanitize(c.Content),
		PostID:      c.PostID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
