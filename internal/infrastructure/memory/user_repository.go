package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

var (
	_ repository.UserRepository = (*UserRepository)(nil)
	_ repository.RoleRepository = (*RoleRepository)(nil)
)

// UserRepository usuarios en memoria.
type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.users.exists(func(x entity.User) bool { return x.Username == u.Username }) {
		return domain.ErrUsernameExists
	}
	if u.ID == "" {
		u.ID = entity.NewID()
	}
	stamp(&u.CreatedAt, &u.UpdatedAt)
	row := *u
	row.Roles = nil
	if !r.s.users.insert(u.ID, row) {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return r.withRoles(u), nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	found := r.s.users.page(1, 0, func(x entity.User) bool { return x.Username == username })
	if len(found) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.withRoles(*found[0]), nil
}

func (r *UserRepository) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.users.page(limit, offset, nil)
	for i, u := range rows {
		rows[i] = r.withRoles(*u)
	}
	return rows, nil
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users.get(u.ID); !ok {
		return domain.ErrUserNotFound
	}
	if r.s.users.exists(func(x entity.User) bool { return x.Username == u.Username && x.ID != u.ID }) {
		return domain.ErrUsernameExists
	}
	row := *u
	row.Roles = nil
	r.s.users.put(u.ID, row)
	return nil
}

func (r *UserRepository) withRoles(u entity.User) *entity.User {
	roles := slices.Clone(r.s.userRoles[u.ID])
	slices.Sort(roles)
	if roles == nil {
		roles = []string{}
	}
	u.Roles = roles
	return &u
}

// RoleRepository roles en memoria.
type RoleRepository struct{ s *Store }

func (r *RoleRepository) Upsert(_ context.Context, name string) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	role, ok := r.s.roles[name]
	if !ok {
		role = entity.Role{ID: entity.NewID(), Name: name}
		r.s.roles[name] = role
	}
	return &role, nil
}

func (r *RoleRepository) Assign(_ context.Context, userID, roleID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users.get(userID); !ok {
		return domain.ErrInvalidReference
	}
	for _, role := range r.s.roles {
		if role.ID != roleID {
			continue
		}
		if !slices.Contains(r.s.userRoles[userID], role.Name) {
			r.s.userRoles[userID] = append(r.s.userRoles[userID], role.Name)
		}
		return nil
	}
	return domain.ErrInvalidReference
}
