package memory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepository)(nil)
	_ repository.ProductRepository  = (*ProductRepository)(nil)
	_ repository.CustomerRepository = (*CustomerRepository)(nil)
	_ repository.OrderRepository    = (*OrderRepository)(nil)
)

// CategoryRepository categorías en memoria.
type CategoryRepository struct{ s *Store }

func (r *CategoryRepository) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.categories.exists(func(x entity.Category) bool { return x.Name == c.Name }) {
		return domain.ErrDuplicate
	}
	if c.ID == "" {
		c.ID = entity.NewID()
	}
	stamp(&c.CreatedAt, &c.UpdatedAt)
	if !r.s.categories.insert(c.ID, *c) {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *CategoryRepository) List(_ context.Context, limit, offset int) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.categories.page(limit, offset, nil), nil
}

func (r *CategoryRepository) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories.get(c.ID); !ok {
		return domain.ErrNotFound
	}
	if r.s.categories.exists(func(x entity.Category) bool { return x.Name == c.Name && x.ID != c.ID }) {
		return domain.ErrDuplicate
	}
	c.UpdatedAt = time.Now().UTC()
	r.s.categories.put(c.ID, *c)
	return nil
}

func (r *CategoryRepository) Delete(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories.get(id); !ok {
		return nil, domain.ErrNotFound
	}
	if r.s.products.exists(func(p entity.Product) bool { return p.CategoryID == id }) {
		return nil, domain.ErrInUse
	}
	c, _ := r.s.categories.remove(id)
	return &c, nil
}

// ProductRepository productos en memoria.
type ProductRepository struct{ s *Store }

func (r *ProductRepository) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories.get(p.CategoryID); !ok {
		return domain.ErrInvalidReference
	}
	if p.ID == "" {
		p.ID = entity.NewID()
	}
	stamp(&p.CreatedAt, &p.UpdatedAt)
	if !r.s.products.insert(p.ID, *p) {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *ProductRepository) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.products.page(limit, offset, nil), nil
}

func (r *ProductRepository) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products.get(p.ID); !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.categories.get(p.CategoryID); !ok {
		return domain.ErrInvalidReference
	}
	p.UpdatedAt = time.Now().UTC()
	r.s.products.put(p.ID, *p)
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products.get(id); !ok {
		return nil, domain.ErrNotFound
	}
	if r.s.orders.exists(func(o entity.Order) bool { return o.ProductID == id }) {
		return nil, domain.ErrInUse
	}
	p, _ := r.s.products.remove(id)
	return &p, nil
}

// CustomerRepository clientes en memoria.
type CustomerRepository struct{ s *Store }

func (r *CustomerRepository) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.customers.exists(func(x entity.Customer) bool { return strings.EqualFold(x.Email, c.Email) }) {
		return domain.ErrDuplicate
	}
	if c.ID == "" {
		c.ID = entity.NewID()
	}
	stamp(&c.CreatedAt, &c.UpdatedAt)
	if !r.s.customers.insert(c.ID, *c) {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.customers.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *CustomerRepository) List(_ context.Context, limit, offset int) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.customers.page(limit, offset, nil), nil
}

func (r *CustomerRepository) Update(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers.get(c.ID); !ok {
		return domain.ErrNotFound
	}
	if r.s.customers.exists(func(x entity.Customer) bool { return strings.EqualFold(x.Email, c.Email) && x.ID != c.ID }) {
		return domain.ErrDuplicate
	}
	c.UpdatedAt = time.Now().UTC()
	r.s.customers.put(c.ID, *c)
	return nil
}

func (r *CustomerRepository) Delete(_ context.Context, id string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers.get(id); !ok {
		return nil, domain.ErrNotFound
	}
	if r.s.orders.exists(func(o entity.Order) bool { return o.CustomerID == id }) {
		return nil, domain.ErrInUse
	}
	c, _ := r.s.customers.remove(id)
	return &c, nil
}

// OrderRepository pedidos en memoria.
type OrderRepository struct{ s *Store }

func (r *OrderRepository) checkRefs(o *entity.Order) error {
	if _, ok := r.s.products.get(o.ProductID); !ok {
		return domain.ErrInvalidReference
	}
	if _, ok := r.s.customers.get(o.CustomerID); !ok {
		return domain.ErrInvalidReference
	}
	return nil
}

func (r *OrderRepository) Create(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkRefs(o); err != nil {
		return err
	}
	if o.ID == "" {
		o.ID = entity.NewID()
	}
	stamp(&o.CreatedAt, &o.UpdatedAt)
	if !r.s.orders.insert(o.ID, *o) {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

func (r *OrderRepository) List(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.orders.page(limit, offset, nil), nil
}

func (r *OrderRepository) Update(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders.get(o.ID); !ok {
		return domain.ErrNotFound
	}
	if err := r.checkRefs(o); err != nil {
		return err
	}
	o.UpdatedAt = time.Now().UTC()
	r.s.orders.put(o.ID, *o)
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, id string) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders.remove(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}
