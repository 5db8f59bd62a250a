package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

var (
	_ repository.UserRepository = (*UserRepo)(nil)
	_ repository.RoleRepository = (*RoleRepo)(nil)
)

const userColumns = `
	u.id, u.username, u.firstname, u.lastname, u.hashed_password, u.active, u.created_at, u.updated_at,
	ARRAY(SELECT r.name FROM user_roles ur JOIN roles r ON r.id = ur.role_id
	      WHERE ur.user_id = u.id ORDER BY r.name) AS roles`

// UserRepo implementación de UserRepository (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.PasswordHash, &u.Active,
		&u.CreatedAt, &u.UpdatedAt, &u.Roles); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario; el username repetido lo detecta el índice único.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	if u.ID == "" {
		u.ID = entity.NewID()
	}
	stamp(&u.CreatedAt, &u.UpdatedAt)
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (id, username, firstname, lastname, hashed_password, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Username, u.FirstName, u.LastName, u.PasswordHash, u.Active, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return writeErr(err, domain.ErrUsernameExists, "insert user")
	}
	return nil
}

// GetByID obtiene un usuario con sus roles.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users u WHERE u.id = $1`, id))
	if err != nil {
		return nil, readErr(err, domain.ErrUserNotFound, "get user")
	}
	return u, nil
}

// GetByUsername obtiene un usuario por username (sensible a mayúsculas).
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users u WHERE u.username = $1`, username))
	if err != nil {
		return nil, readErr(err, domain.ErrUserNotFound, "get user by username")
	}
	return u, nil
}

// List usuarios en orden de creación.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users u
		ORDER BY u.created_at, u.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "list users")
	}
	return collect(rows, scanUser)
}

// Update perfil y estado; los roles no se tocan.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	stamp(&u.CreatedAt, &u.UpdatedAt)
	tag, err := r.q.Exec(ctx, `
		UPDATE users SET username = $2, firstname = $3, lastname = $4, hashed_password = $5,
			active = $6, updated_at = $7
		WHERE id = $1`,
		u.ID, u.Username, u.FirstName, u.LastName, u.PasswordHash, u.Active, u.UpdatedAt,
	)
	if err != nil {
		return writeErr(err, domain.ErrUsernameExists, "update user")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// RoleRepo roles y tabla intermedia user_roles.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Upsert el DO UPDATE sin cambios hace que RETURNING devuelva la fila existente.
func (r *RoleRepo) Upsert(ctx context.Context, name string) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(ctx, `
		INSERT INTO roles (id, name) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name`, entity.NewID(), name,
	).Scan(&role.ID, &role.Name)
	if err != nil {
		return nil, writeErr(err, domain.ErrDuplicate, "upsert role")
	}
	return &role, nil
}

// Assign vincula rol y usuario; repetir es no-op.
func (r *RoleRepo) Assign(ctx context.Context, userID, roleID string) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, userID, roleID)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "assign role")
	}
	return nil
}
