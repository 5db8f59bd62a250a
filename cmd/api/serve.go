package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/jhoicas/practica-api/internal/application/auth"
	"github.com/jhoicas/practica-api/internal/application/blog"
	"github.com/jhoicas/practica-api/internal/application/library"
	"github.com/jhoicas/practica-api/internal/application/shop"
	"github.com/jhoicas/practica-api/internal/application/usecase"
	"github.com/jhoicas/practica-api/internal/domain/repository"
	"github.com/jhoicas/practica-api/internal/infrastructure/catalog"
	"github.com/jhoicas/practica-api/internal/infrastructure/memory"
	"github.com/jhoicas/practica-api/internal/infrastructure/metrics"
	"github.com/jhoicas/practica-api/internal/infrastructure/pdf"
	"github.com/jhoicas/practica-api/internal/infrastructure/postgres"
	"github.com/jhoicas/practica-api/internal/infrastructure/sanitize"
	httpRouter "github.com/jhoicas/practica-api/internal/interfaces/http"
	"github.com/jhoicas/practica-api/pkg/config"
	"github.com/jhoicas/practica-api/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia el servidor HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// repositories conjunto de repos según el driver configurado.
type repositories struct {
	users      repository.UserRepository
	txRunner   auth.RegistrationTxRunner
	authors    repository.AuthorRepository
	posts      repository.PostRepository
	comments   repository.CommentRepository
	tasks      repository.TaskRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
	customers  repository.CustomerRepository
	orders     repository.OrderRepository
	notes      repository.NoteRepository
	books      repository.BookRepository
	flags      repository.FeatureFlagRepository
}

func memoryRepositories() repositories {
	s := memory.NewStore()
	return repositories{
		users: s.Users(), txRunner: s,
		authors: s.Authors(), posts: s.Posts(), comments: s.Comments(),
		tasks:      s.Tasks(),
		categories: s.Categories(), products: s.Products(), customers: s.Customers(), orders: s.Orders(),
		notes: s.Notes(),
		books: s.Books(), flags: s.FeatureFlags(),
	}
}

func postgresRepositories(pool *pgxpool.Pool) repositories {
	return repositories{
		users: postgres.NewUserRepository(pool), txRunner: postgres.NewTxRunner(pool),
		authors:    postgres.NewAuthorRepository(pool),
		posts:      postgres.NewPostRepository(pool),
		comments:   postgres.NewCommentRepository(pool),
		tasks:      postgres.NewTaskRepository(pool),
		categories: postgres.NewCategoryRepository(pool),
		products:   postgres.NewProductRepository(pool),
		customers:  postgres.NewCustomerRepository(pool),
		orders:     postgres.NewOrderRepository(pool),
		notes:      postgres.NewNoteRepository(pool),
		books:      postgres.NewBookRepository(pool),
		flags:      postgres.NewFeatureFlagRepository(pool),
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	appLog := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log := appLog.Zerolog()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.StoreDriver).
		Msg("iniciando aplicación")

	var (
		repos repositories
		db    httpRouter.Pinger
	)
	switch cfg.App.StoreDriver {
	case config.StoreMemory:
		repos = memoryRepositories()
	default:
		if cfg.DB.AutoMigrate {
			if err := postgres.RunMigrations(cfg.DB.ConnectionString(), appLog); err != nil {
				return err
			}
			log.Info().Msg("migraciones aplicadas")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		defer pool.Close()
		repos = postgresRepositories(pool)
		db = pool
	}

	creds := auth.NewCredentialService(auth.CredentialConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		TTL:        time.Duration(cfg.JWT.Expiration) * time.Minute,
		BcryptCost: cfg.JWT.BcryptCost,
	})

	var (
		collector *metrics.Collector
		gatherer  prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		collector = metrics.NewCollector(reg)
		gatherer = reg
	}

	app := httpRouter.NewServer(cfg.App.Name, log, collector)
	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(repos.users, repos.txRunner, creds),
		Credentials: creds,
		BlogUC:      blog.NewBlogUseCase(repos.authors, repos.posts, repos.comments, sanitize.NewHTMLSanitizer()),
		TaskUC:      usecase.NewTaskUseCase(repos.tasks),
		ShopUC: shop.NewShopUseCase(repos.categories, repos.products, repos.customers, repos.orders,
			pdf.NewReceiptGenerator(cfg.App.Name)),
		NoteUC:       usecase.NewNoteUseCase(repos.notes),
		LibraryUC:    library.NewLibraryUseCase(repos.books, catalog.NewXMLExporter()),
		Features:     usecase.NewFeatureService(repos.flags),
		LoginLimiter: httpRouter.NewRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst),
		Metrics:      collector,
		Gatherer:     gatherer,
		DB:           db,
		ServiceName:  cfg.App.Name,
		SwaggerFile:  cfg.App.SwaggerFile,
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.HTTP.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("servidor HTTP: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("aplicación detenida")
	return nil
}
