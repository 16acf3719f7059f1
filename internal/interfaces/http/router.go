package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/inventory"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/report"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/usecase"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/logger"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/pkg/validator"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	Inventory *inventory.Service
	Queries   *usecase.QueryFacade
	Reports   *report.UseCase
	Validator validator.Validator
	Log       *logger.Logger
}

// NewApp crea la aplicación Fiber con middlewares y rutas.
func NewApp(deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:               deps.AppName,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 30,
		IdleTimeout:           time.Second * 60,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})
	app.Use(RequestLogger(deps.Log))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.Inventory, deps.Queries, deps.Validator)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Rename)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Inventory, deps.Queries, deps.Validator)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/code/:code", productHandler.GetByCode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Movements (solo lectura: el libro solo lo escribe el servicio de inventario)
	movementHandler := NewMovementHandler(deps.Queries)
	products.Get("/:id/movements", movementHandler.ListForProduct)
	api.Get("/movements", movementHandler.List)
	api.Get("/ledger/audit", movementHandler.Audit)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Reports)
	reports.Get("/products.csv", reportHandler.Export(report.FormatCSV))
	reports.Get("/products.pdf", reportHandler.Export(report.FormatPDF))
}
