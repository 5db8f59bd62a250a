package http

import (
	"context"
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/swaggo/swag"

	"github.com/jhoicas/practica-api/internal/application/auth"
	"github.com/jhoicas/practica-api/internal/application/blog"
	"github.com/jhoicas/practica-api/internal/application/library"
	"github.com/jhoicas/practica-api/internal/application/shop"
	"github.com/jhoicas/practica-api/internal/application/usecase"
	"github.com/jhoicas/practica-api/internal/domain/entity"
	"github.com/jhoicas/practica-api/internal/infrastructure/metrics"
)

// Pinger lo implementa *pgxpool.Pool; nil en el driver de memoria.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Credentials  *auth.CredentialService
	BlogUC       *blog.BlogUseCase
	TaskUC       *usecase.TaskUseCase
	ShopUC       *shop.ShopUseCase
	NoteUC       *usecase.NoteUseCase
	LibraryUC    *library.LibraryUseCase
	Features     *usecase.FeatureService
	LoginLimiter *RateLimiter

	// Metrics y Gatherer nil deshabilitan métricas y /metrics.
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer

	// DB nil: /health no consulta la base.
	DB          Pinger
	ServiceName string

	// SwaggerFile vacío o inexistente: sin UI de Swagger.
	SwaggerFile string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps.DB, deps.ServiceName))
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(deps.Gatherer)))
	}
	app.Get("/docs/doc.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})
	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			// UI en /docs
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    "Práctica API",
			}))
		}
	}

	requireToken := AuthMiddleware(deps.Credentials)

	// Auth
	var recorder authRecorder
	if deps.Metrics != nil {
		recorder = deps.Metrics
	}
	authHandler := NewAuthHandler(deps.AuthUC, recorder)
	authGroup := app.Group("/auth")
	authGroup.Post("/register_user", authHandler.RegisterUser)
	authGroup.Post("/register_admin", authHandler.RegisterAdmin)
	if deps.LoginLimiter != nil {
		authGroup.Post("/login", deps.LoginLimiter.Middleware(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Get("/me", requireToken, authHandler.Me)
	authGroup.Put("/me", requireToken, authHandler.UpdateMe)
	authGroup.Get("/users", requireToken, authHandler.ListUsers)
	authGroup.Get("/users/:id", requireToken, authHandler.GetUser)
	authGroup.Get("/users_n/:username", requireToken, authHandler.GetUserByUsername)

	// Blog (público)
	blogHandler := NewBlogHandler(deps.BlogUC)
	blogGroup := app.Group("/blog")
	blogGroup.Post("/authors", blogHandler.CreateAuthor)
	blogGroup.Get("/authors", blogHandler.ListAuthors)
	blogGroup.Get("/authors/:id", blogHandler.GetAuthor)
	blogGroup.Put("/authors/:id", blogHandler.UpdateAuthor)
	blogGroup.Delete("/authors/:id", blogHandler.DeleteAuthor)
	blogGroup.Post("/posts", blogHandler.CreatePost)
	blogGroup.Get("/posts", blogHandler.ListPosts)
	blogGroup.Get("/posts/:id", blogHandler.GetPost)
	blogGroup.Put("/posts/:id", blogHandler.UpdatePost)
	blogGroup.Delete("/posts/:id", blogHandler.DeletePost)
	blogGroup.Post("/posts/:id/comments", blogHandler.CreateComment)
	blogGroup.Get("/posts/:id/comments", blogHandler.ListPostComments)
	blogGroup.Get("/comments", blogHandler.ListComments)
	blogGroup.Get("/comments/:id", blogHandler.GetComment)
	blogGroup.Put("/comments/:id", blogHandler.UpdateComment)
	blogGroup.Delete("/comments/:id", blogHandler.DeleteComment)

	// Tasks (protegido)
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks := app.Group("/task", requireToken)
	tasks.Get("/tasks", taskHandler.List)
	tasks.Post("/tasks/:user_id", taskHandler.Create)
	tasks.Get("/tasks/:id", taskHandler.GetByID)
	tasks.Put("/tasks/:id", taskHandler.Update)
	tasks.Delete("/tasks/:id", taskHandler.Delete)

	// Shop (protegido)
	shopHandler := NewShopHandler(deps.ShopUC)
	shopGroup := app.Group("/shop", requireToken)
	shopGroup.Post("/categories", shopHandler.CreateCategory)
	shopGroup.Get("/categories", shopHandler.ListCategories)
	shopGroup.Get("/categories/:id", shopHandler.GetCategory)
	shopGroup.Put("/categories/:id", shopHandler.UpdateCategory)
	shopGroup.Delete("/categories/:id", shopHandler.DeleteCategory)
	shopGroup.Post("/products", shopHandler.CreateProduct)
	shopGroup.Get("/products", shopHandler.ListProducts)
	shopGroup.Get("/products/:id", shopHandler.GetProduct)
	shopGroup.Put("/products/:id", shopHandler.UpdateProduct)
	shopGroup.Delete("/products/:id", shopHandler.DeleteProduct)
	shopGroup.Post("/customers", shopHandler.CreateCustomer)
	shopGroup.Get("/customers", shopHandler.ListCustomers)
	shopGroup.Get("/customers/:id", shopHandler.GetCustomer)
	shopGroup.Put("/customers/:id", shopHandler.UpdateCustomer)
	shopGroup.Delete("/customers/:id", shopHandler.DeleteCustomer)
	shopGroup.Post("/orders", shopHandler.CreateOrder)
	shopGroup.Get("/orders", shopHandler.ListOrders)
	shopGroup.Get("/orders/:id", shopHandler.GetOrder)
	shopGroup.Get("/orders/:id/receipt", shopHandler.Receipt)
	shopGroup.Put("/orders/:id", shopHandler.UpdateOrder)
	shopGroup.Delete("/orders/:id", shopHandler.DeleteOrder)

	// Notes (protegido, por dueño)
	noteHandler := NewNoteHandler(deps.NoteUC)
	notes := app.Group("/notes", requireToken)
	notes.Post("/", noteHandler.Create)
	notes.Get("/", noteHandler.List)
	notes.Get("/:id", noteHandler.Get)
	notes.Put("/:id", noteHandler.Update)
	notes.Delete("/:id", noteHandler.Delete)

	// Library (público)
	libraryHandler := NewLibraryHandler(deps.LibraryUC)
	lib := app.Group("/library")
	lib.Get("/catalog.xml", libraryHandler.Catalog)
	lib.Post("/books", libraryHandler.CreateBook)
	lib.Get("/books", libraryHandler.ListBooks)
	lib.Get("/books/:id", libraryHandler.GetBook)
	lib.Put("/books/:id", libraryHandler.UpdateBook)
	lib.Delete("/books/:id", libraryHandler.DeleteBook)

	// Feature flags
	featureHandler := NewFeatureHandler(deps.Features)
	features := app.Group("/features")
	features.Get("/", featureHandler.List)
	features.Put("/", requireToken, featureHandler.Update)
	features.Get("/:name", featureHandler.Get)

	app.Get("/example_one", RequireFeature(entity.FlagDarkMode, deps.Features), demoMessage("modo oscuro activado"))
	app.Get("/example_2", RequireFeature(entity.FlagAutoBright, deps.Features), demoMessage("brillo automático activado"))
	app.Get("/example_3", RequireFeature(entity.FlagReset, deps.Features), demoMessage("reinicio activado"))
}

func healthHandler(db Pinger, service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			if err := db.Ping(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": service})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	}
}
