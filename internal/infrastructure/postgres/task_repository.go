package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

const taskColumns = `id, title, description, completed, owner_id, created_at, updated_at`

// TaskRepo implementación de TaskRepository. owner_id no tiene FK.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador.
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepo) Create(ctx context.Context, t *entity.Task) error {
	if t.ID == "" {
		t.ID = entity.NewID()
	}
	stamp(&t.CreatedAt, &t.UpdatedAt)
	_, err := r.q.Exec(ctx, `INSERT INTO tasks (`+taskColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Title, t.Description, t.Completed, t.OwnerID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "insert task")
	}
	return nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	t, err := scanTask(r.q.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "get task")
	}
	return t, nil
}

func (r *TaskRepo) List(ctx context.Context, limit, offset int) ([]*entity.Task, error) {
	rows, err := r.q.Query(ctx, `SELECT `+taskColumns+` FROM tasks
		ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "list tasks")
	}
	return collect(rows, scanTask)
}

func (r *TaskRepo) Update(ctx context.Context, t *entity.Task) error {
	stamp(&t.CreatedAt, &t.UpdatedAt)
	tag, err := r.q.Exec(ctx, `UPDATE tasks SET title = $2, description = $3, completed = $4, updated_at = $5 WHERE id = $1`,
		t.ID, t.Title, t.Description, t.Completed, t.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "update task")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string) (*entity.Task, error) {
	t, err := scanTask(r.q.QueryRow(ctx, `DELETE FROM tasks WHERE id = $1 RETURNING `+taskColumns, id))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "delete task")
	}
	return t, nil
}
