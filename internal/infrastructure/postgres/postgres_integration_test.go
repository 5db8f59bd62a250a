//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/practica-api/internal/domain"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/domain/repository"
	"github.com/jhoicas/practica-api/internal/infrastructure/postgres"
	"github.com/jhoicas/practica-api/pkg/config"
)

func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("practica"),
		tcpostgres.WithUsername("practica"),
		tcpostgres.WithPassword("practica"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminar contenedor: %v", err)
		}
	})

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, postgres.RunMigrations(url, nil))
	require.NoError(t, postgres.RunMigrations(url, nil), "segunda ejecución sin cambios")

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestPostgres_Integracion(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()

	// ── Usuarios y roles ──────────────────────────────────────────────────────

	t.Run("registro transaccional con roles", func(t *testing.T) {
		runner := postgres.NewTxRunner(pool)
		u := &entity.User{Username: "alice", PasswordHash: "x", Active: true}
		err := runner.RunRegistration(ctx, func(users repository.UserRepository, roles repository.RoleRepository) error {
			if err := users.Create(ctx, u); err != nil {
				return err
			}
			r, err := roles.Upsert(ctx, entity.RoleUser)
			if err != nil {
				return err
			}
			return roles.Assign(ctx, u.ID, r.ID)
		})
		require.NoError(t, err)

		got, err := postgres.NewUserRepository(pool).GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []string{entity.RoleUser}, got.Roles)

		err = runner.RunRegistration(ctx, func(users repository.UserRepository, _ repository.RoleRepository) error {
			return users.Create(ctx, &entity.User{Username: "alice", PasswordHash: "y"})
		})
		assert.ErrorIs(t, err, domain.ErrUsernameExists)
	})

	t.Run("id que no es uuid es no encontrado", func(t *testing.T) {
		_, err := postgres.NewAuthorRepository(pool).GetByID(ctx, "no-uuid")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	// ── Tienda ────────────────────────────────────────────────────────────────

	t.Run("restricciones de la tienda", func(t *testing.T) {
		categories := postgres.NewCategoryRepository(pool)
		products := postgres.NewProductRepository(pool)
		customers := postgres.NewCustomerRepository(pool)
		orders := postgres.NewOrderRepository(pool)

		cat := &entity.Category{Name: "libros"}
		require.NoError(t, categories.Create(ctx, cat))
		assert.ErrorIs(t, categories.Create(ctx, &entity.Category{Name: "libros"}), domain.ErrDuplicate)

		prod := &entity.Product{Name: "Go", Price: decimal.RequireFromString("19.99"), CategoryID: cat.ID}
		require.NoError(t, products.Create(ctx, prod))
		got, err := products.GetByID(ctx, prod.ID)
		require.NoError(t, err)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("19.99")))

		bad := &entity.Product{Name: "x", Price: decimal.NewFromInt(1), CategoryID: entity.NewID()}
		assert.ErrorIs(t, products.Create(ctx, bad), domain.ErrInvalidReference)

		cust := &entity.Customer{Name: "Bob", Email: "Bob@Example.com"}
		require.NoError(t, customers.Create(ctx, cust))
		gotCust, err := customers.GetByID(ctx, cust.ID)
		require.NoError(t, err)
		assert.Equal(t, "Bob@Example.com", gotCust.Email)
		assert.ErrorIs(t, customers.Create(ctx, &entity.Customer{Name: "Otro", Email: "bob@example.com"}), domain.ErrDuplicate)
		ord := &entity.Order{ProductID: prod.ID, CustomerID: cust.ID, Quantity: 2}
		require.NoError(t, orders.Create(ctx, ord))

		_, err = categories.Delete(ctx, cat.ID)
		assert.ErrorIs(t, err, domain.ErrInUse)
		_, err = customers.Delete(ctx, cust.ID)
		assert.ErrorIs(t, err, domain.ErrInUse)

		_, err = orders.Delete(ctx, ord.ID)
		require.NoError(t, err)
		_, err = products.Delete(ctx, prod.ID)
		require.NoError(t, err)
		_, err = categories.Delete(ctx, cat.ID)
		require.NoError(t, err)
	})

	// ── Blog ──────────────────────────────────────────────────────────────────

	t.Run("borrar autor arrastra posts y comentarios", func(t *testing.T) {
		authors := postgres.NewAuthorRepository(pool)
		posts := postgres.NewPostRepository(pool)
		comments := postgres.NewCommentRepository(pool)

		a := &entity.Author{Name: "Ana"}
		require.NoError(t, authors.Create(ctx, a))
		p := &entity.Post{Title: "t", Content: "c", AuthorID: a.ID}
		require.NoError(t, posts.Create(ctx, p))
		c := &entity.Comment{Content: "hola", PostID: p.ID}
		require.NoError(t, comments.Create(ctx, c))

		_, err := authors.Delete(ctx, a.ID)
		require.NoError(t, err)
		_, err = posts.GetByID(ctx, p.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = comments.GetByID(ctx, c.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	// ── Biblioteca y flags ────────────────────────────────────────────────────

	t.Run("libros y flags sembrados", func(t *testing.T) {
		books := postgres.NewBookRepository(pool)
		require.NoError(t, books.Create(ctx, &entity.Book{ID: "978-0", Title: "SICP", Author: "Abelson", Year: 1985}))
		assert.ErrorIs(t, books.Create(ctx, &entity.Book{ID: "978-0", Title: "x", Author: "y", Year: 1}), domain.ErrDuplicate)

		all, err := books.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)

		flags := postgres.NewFeatureFlagRepository(pool)
		list, err := flags.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, entity.FlagAutoBright, list[0].Name)
		assert.True(t, list[0].Enabled)

		f, err := flags.SetEnabled(ctx, entity.FlagDarkMode, true)
		require.NoError(t, err)
		assert.True(t, f.Enabled)

		_, err = flags.SetEnabled(ctx, "inexistente", true)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
