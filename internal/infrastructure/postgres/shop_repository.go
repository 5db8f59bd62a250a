package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
	_ repository.OrderRepository    = (*OrderRepo)(nil)
)

// ── Categorías ────────────────────────────────────────────────────────────────

// CategoryRepo implementación de CategoryRepository.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	if c.ID == "" {
		c.ID = entity.NewID()
	}
	stamp(&c.CreatedAt, &c.UpdatedAt)
	_, err := r.q.Exec(ctx, `INSERT INTO categories (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "insert category")
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, `SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "get category")
	}
	return c, nil
}

func (r *CategoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at, updated_at FROM categories
		ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "list categories")
	}
	return collect(rows, scanCategory)
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	stamp(&c.CreatedAt, &c.UpdatedAt)
	tag, err := r.q.Exec(ctx, `UPDATE categories SET name = $2, updated_at = $3 WHERE id = $1`, c.ID, c.Name, c.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "update category")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, `DELETE FROM categories WHERE id = $1
		RETURNING id, name, created_at, updated_at`, id))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, deleteErr(err, "delete category")
		}
		return nil, readErr(err, domain.ErrNotFound, "delete category")
	}
	return c, nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

const productColumns = `id, name, description, price, category_id, created_at, updated_at`

// ProductRepo implementación de ProductRepository; price es NUMERIC vía pgx-shopspring-decimal.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if p.ID == "" {
		p.ID = entity.NewID()
	}
	stamp(&p.CreatedAt, &p.UpdatedAt)
	_, err := r.q.Exec(ctx, `INSERT INTO products (`+productColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Name, p.Description, p.Price, p.CategoryID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "insert product")
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "get product")
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products
		ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "list products")
	}
	return collect(rows, scanProduct)
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	stamp(&p.CreatedAt, &p.UpdatedAt)
	tag, err := r.q.Exec(ctx, `
		UPDATE products SET name = $2, description = $3, price = $4, category_id = $5, updated_at = $6
		WHERE id = $1`,
		p.ID, p.Name, p.Description, p.Price, p.CategoryID, p.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "update product")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `DELETE FROM products WHERE id = $1 RETURNING `+productColumns, id))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, deleteErr(err, "delete product")
		}
		return nil, readErr(err, domain.ErrNotFound, "delete product")
	}
	return p, nil
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente; el email repetido lo rechaza el índice único.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	if c.ID == "" {
		c.ID = entity.NewID()
	}
	stamp(&c.CreatedAt, &c.UpdatedAt)
	_, err := r.q.Exec(ctx, `INSERT INTO customers (id, name, email, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Email, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "insert customer")
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT id, name, email, created_at, updated_at FROM customers WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "get customer")
	}
	return c, nil
}

// List lista clientes con paginación.
func (r *CustomerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, email, created_at, updated_at FROM customers
		ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "list customers")
	}
	return collect(rows, scanCustomer)
}

// Update actualiza un cliente existente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	stamp(&c.CreatedAt, &c.UpdatedAt)
	tag, err := r.q.Exec(ctx, `UPDATE customers SET name = $2, email = $3, updated_at = $4 WHERE id = $1`,
		c.ID, c.Name, c.Email, c.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "update customer")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente sin pedidos.
func (r *CustomerRepo) Delete(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `DELETE FROM customers WHERE id = $1
		RETURNING id, name, email, created_at, updated_at`, id))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, deleteErr(err, "delete customer")
		}
		return nil, readErr(err, domain.ErrNotFound, "delete customer")
	}
	return c, nil
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

const orderColumns = `id, product_id, customer_id, quantity, created_at, updated_at`

// OrderRepo implementación de OrderRepository.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	if err := row.Scan(&o.ID, &o.ProductID, &o.CustomerID, &o.Quantity, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	if o.ID == "" {
		o.ID = entity.NewID()
	}
	stamp(&o.CreatedAt, &o.UpdatedAt)
	_, err := r.q.Exec(ctx, `INSERT INTO orders (`+orderColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		o.ID, o.ProductID, o.CustomerID, o.Quantity, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "insert order")
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "get order")
	}
	return o, nil
}

func (r *OrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM orders
		ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "list orders")
	}
	return collect(rows, scanOrder)
}

func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	stamp(&o.CreatedAt, &o.UpdatedAt)
	tag, err := r.q.Exec(ctx, `
		UPDATE orders SET product_id = $2, customer_id = $3, quantity = $4, updated_at = $5
		WHERE id = $1`,
		o.ID, o.ProductID, o.CustomerID, o.Quantity, o.UpdatedAt)
	if err != nil {
		return writeErr(err, domain.ErrDuplicate, "update order")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) Delete(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `DELETE FROM orders WHERE id = $1 RETURNING `+orderColumns, id))
	if err != nil {
		return nil, readErr(err, domain.ErrNotFound, "delete order")
	}
	return o, nil
}
