// Package memory implementa los repositorios en memoria para STORE_DRIVER=memory y tests.
// Las restricciones (únicos, claves foráneas, cascadas) se aplican bajo el mismo lock
// que la escritura, igual que lo haría el motor SQL.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

// table filas indexadas por id en orden de inserción.
type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insert(id string, v T) bool {
	if _, ok := t.rows[id]; ok {
		return false
	}
	t.rows[id] = v
	t.order = append(t.order, id)
	return true
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) put(id string, v T) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = v
	return true
}

func (t *table[T]) remove(id string) (T, bool) {
	v, ok := t.rows[id]
	if !ok {
		return v, false
	}
	delete(t.rows, id)
	t.order = slices.DeleteFunc(t.order, func(s string) bool { return s == id })
	return v, true
}

func (t *table[T]) exists(match func(T) bool) bool {
	for _, id := range t.order {
		if match(t.rows[id]) {
			return true
		}
	}
	return false
}

// page aplica filtro y luego offset/limit.
func (t *table[T]) page(limit, offset int, keep func(T) bool) []*T {
	out := make([]*T, 0)
	skipped := 0
	for _, id := range t.order {
		v := t.rows[id]
		if keep != nil && !keep(v) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, &v)
	}
	return out
}

// Store agrupa todas las tablas en memoria.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	users     *table[entity.User]
	roles     map[string]entity.Role // por nombre
	userRoles map[string][]string    // userID -> nombres de rol

	authors    *table[entity.Author]
	posts      *table[entity.Post]
	comments   *table[entity.Comment]
	tasks      *table[entity.Task]
	categories *table[entity.Category]
	products   *table[entity.Product]
	customers  *table[entity.Customer]
	orders     *table[entity.Order]
	notes      *table[entity.Note]
	books      *table[entity.Book]
	flags      map[string]entity.FeatureFlag
}

// NewStore crea un store vacío con los flags iniciales.
func NewStore() *Store {
	now := time.Now().UTC()
	return &Store{
		users:      newTable[entity.User](),
		roles:      make(map[string]entity.Role),
		userRoles:  make(map[string][]string),
		authors:    newTable[entity.Author](),
		posts:      newTable[entity.Post](),
		comments:   newTable[entity.Comment](),
		tasks:      newTable[entity.Task](),
		categories: newTable[entity.Category](),
		products:   newTable[entity.Product](),
		customers:  newTable[entity.Customer](),
		orders:     newTable[entity.Order](),
		notes:      newTable[entity.Note](),
		books:      newTable[entity.Book](),
		flags: map[string]entity.FeatureFlag{
			entity.FlagDarkMode:   {Name: entity.FlagDarkMode, Enabled: false, UpdatedAt: now},
			entity.FlagReset:      {Name: entity.FlagReset, Enabled: false, UpdatedAt: now},
			entity.FlagAutoBright: {Name: entity.FlagAutoBright, Enabled: true, UpdatedAt: now},
		},
	}
}

func (s *Store) Users() *UserRepository               { return &UserRepository{s: s} }
func (s *Store) Roles() *RoleRepository               { return &RoleRepository{s: s} }
func (s *Store) Authors() *AuthorRepository           { return &AuthorRepository{s: s} }
func (s *Store) Posts() *PostRepository               { return &PostRepository{s: s} }
func (s *Store) Comments() *CommentRepository         { return &CommentRepository{s: s} }
func (s *Store) Tasks() *TaskRepository               { return &TaskRepository{s: s} }
func (s *Store) Categories() *CategoryRepository      { return &CategoryRepository{s: s} }
func (s *Store) Products() *ProductRepository         { return &ProductRepository{s: s} }
func (s *Store) Customers() *CustomerRepository       { return &CustomerRepository{s: s} }
func (s *Store) Orders() *OrderRepository             { return &OrderRepository{s: s} }
func (s *Store) Notes() *NoteRepository               { return &NoteRepository{s: s} }
func (s *Store) Books() *BookRepository               { return &BookRepository{s: s} }
func (s *Store) FeatureFlags() *FeatureFlagRepository { return &FeatureFlagRepository{s: s} }

// RunRegistration serializa los registros y, si fn falla, deshace solo las filas que
// fn insertó; escrituras ajenas hechas mientras tanto se conservan.
func (s *Store) RunRegistration(ctx context.Context, fn func(
	users repository.UserRepository,
	roles repository.RoleRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	tx := &registrationTx{s: s}
	if err := fn(&txUserRepository{UserRepository: s.Users(), tx: tx}, &txRoleRepository{tx: tx}); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

// registrationTx anota lo insertado durante un registro.
type registrationTx struct {
	s     *Store
	users []string
	roles []string
	links [][2]string // userID, nombre de rol
}

func (tx *registrationTx) rollback() {
	s := tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range tx.links {
		names := slices.DeleteFunc(s.userRoles[l[0]], func(n string) bool { return n == l[1] })
		if len(names) == 0 {
			delete(s.userRoles, l[0])
		} else {
			s.userRoles[l[0]] = names
		}
	}
	for _, id := range tx.users {
		s.users.remove(id)
		delete(s.userRoles, id)
	}
	for _, name := range tx.roles {
		delete(s.roles, name)
	}
}

type txUserRepository struct {
	*UserRepository
	tx *registrationTx
}

func (r *txUserRepository) Create(ctx context.Context, u *entity.User) error {
	if err := r.UserRepository.Create(ctx, u); err != nil {
		return err
	}
	r.tx.users = append(r.tx.users, u.ID)
	return nil
}

type txRoleRepository struct{ tx *registrationTx }

func (r *txRoleRepository) Upsert(_ context.Context, name string) (*entity.Role, error) {
	s := r.tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	role, ok := s.roles[name]
	if !ok {
		role = entity.Role{ID: entity.NewID(), Name: name}
		s.roles[name] = role
		r.tx.roles = append(r.tx.roles, name)
	}
	return &role, nil
}

func (r *txRoleRepository) Assign(_ context.Context, userID, roleID string) error {
	s := r.tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users.get(userID); !ok {
		return domain.ErrInvalidReference
	}
	for _, role := range s.roles {
		if role.ID != roleID {
			continue
		}
		if !slices.Contains(s.userRoles[userID], role.Name) {
			s.userRoles[userID] = append(s.userRoles[userID], role.Name)
			r.tx.links = append(r.tx.links, [2]string{userID, role.Name})
		}
		return nil
	}
	return domain.ErrInvalidReference
}

func stamp(created *time.Time, updated *time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = now
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
