package handler

import (
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/middleware"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/repository"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/service"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/ws"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Options struct {
	Services *service.Services
	Store    repository.Store
	Logger   *zap.Logger
	// Hub enables GET /ws when set.
	Hub *ws.Hub
	// MetricsPath enables the Prometheus endpoint when not empty.
	MetricsPath string
}

// NewApp builds the Fiber application with middleware and every route.
func NewApp(opts Options) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:      "POS Back Office v1.0",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(middleware.Metrics())
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())

	// Operational routes
	app.Get("/healthz", NewHealthHandler(opts.Store, log).Health)
	if opts.MetricsPath != "" {
		app.Get(opts.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	}

	RegisterResources(app, opts.Services)

	// WebSocket Route
	if opts.Hub != nil {
		app.Use("/ws", ws.Upgrade)
		app.Get("/ws", opts.Hub.Handler())
	}

	return app
}

// RegisterResources mounts the CRUD endpoints of every resource.
func RegisterResources(router fiber.Router, svc *service.Services) {
	NewCRUDHandler(svc.Customers, "Customer").Register(router.Group("/customer"))
	NewCRUDHandler(svc.Categories, "Product category").Register(router.Group("/product-category"))
	NewCRUDHandler(svc.Units, "Product unit").Register(router.Group("/product-unit"))
	NewCRUDHandler(svc.Products, "Product").Register(router.Group("/product"))
	NewCRUDHandler(svc.Suppliers, "Supplier").Register(router.Group("/supplier"))
	NewCRUDHandler(svc.Invoices, "Invoice").Register(router.Group("/invoice"))
	NewCRUDHandler(svc.Sales, "Sale").Register(router.Group("/sales"))
	NewCRUDHandler(svc.PurchaseOrders, "Purchase order").Register(router.Group("/purchase-order"))
	NewCRUDHandler(svc.ReceiveProducts, "Receive product").Register(router.Group("/receive-product"))
	NewCRUDHandler(svc.Users, "User").Register(router.Group("/user"))
}
