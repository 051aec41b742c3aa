package cmd

import (
	"context"
	"log/slog"
	"net/http"

	httpin "bakery/internal/adapters/in/http"
	rabbitin "bakery/internal/adapters/in/rabbitmq"
	"bakery/internal/adapters/in/tui"
	"bakery/internal/adapters/out/backend"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/jobs"
	"bakery/internal/pkg/metrics"
	"bakery/internal/view"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
)

// CompositionRoot wires the order backend: the HTTP API and the fulfillment
// worker share it.
type CompositionRoot struct {
	configs      Config
	gormDB       *gorm.DB
	uowFactory   *postgres.GormUnitOfWorkFactory
	publisher    ports.OrderPublisher
	productCache ports.ProductCache
	registry     *prometheus.Registry
	service      string
	orderMetrics *metrics.OrderMetrics
	logger       *slog.Logger
}

// NewCompositionRoot creates the backend root. publisher may be nil in
// processes that never place orders. service names the metrics subsystem.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	publisher ports.OrderPublisher,
	service string,
	logger *slog.Logger,
) CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return CompositionRoot{
		configs:      configs,
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:    publisher,
		registry:     registry,
		service:      service,
		orderMetrics: metrics.NewOrderMetrics(registry, service),
		logger:       logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() *commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	h := commands.NewPlaceOrderCommandHandler(f, c.publisher, c.logger)
	return &h
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessOrderCommandHandler(f, c.configs.ProcessingDelay, c.configs.CompletionDelay, c.logger)
}

// UseProductCache puts cache in front of the products query. Without it the
// catalog is read from the database on every request.
func (c *CompositionRoot) UseProductCache(cache ports.ProductCache) {
	c.productCache = cache
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.ProductsReader {
	reader := queries.NewGetProductsQueryHandler(c.gormDB)
	if c.productCache == nil {
		return reader
	}
	return queries.NewCachedGetProductsQueryHandler(reader, c.productCache, c.configs.ProductsCacheTTL, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

// CreateRouter builds the echo instance for the order API. Call it once per
// root; it registers the HTTP metrics.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateGetProductsQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.orderMetrics,
		c.logger,
	)
	return httpin.NewRouter(server, metrics.NewServerMetrics(c.registry, c.service), c.MetricsHandler())
}

func (c *CompositionRoot) CreateOrderConsumer(conn *amqp.Connection) *rabbitin.Consumer {
	return rabbitin.NewConsumer(conn, c.configs.OrderQueue, c.CreateProcessOrderCommandHandler(), c.orderMetrics, c.logger)
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return metrics.HandlerFor(c.registry)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// StorefrontRoot wires the customer facing client against a running backend.
type StorefrontRoot struct {
	configs Config
	client  *backend.Client
	logger  *slog.Logger
}

func NewStorefrontRoot(configs Config, logger *slog.Logger) (StorefrontRoot, error) {
	client, err := backend.NewClient(configs.BackendURL, &http.Client{Timeout: configs.BackendTimeout}, logger)
	if err != nil {
		return StorefrontRoot{}, err
	}
	return StorefrontRoot{configs: configs, client: client, logger: logger}, nil
}

func (s *StorefrontRoot) CreateLoadCatalogQueryHandler() queries.LoadCatalogQueryHandler {
	return queries.NewLoadCatalogQueryHandler(s.client, s.logger)
}

func (s *StorefrontRoot) CreateLookupOrderStatusQueryHandler() queries.LookupOrderStatusQueryHandler {
	return queries.NewLookupOrderStatusQueryHandler(s.client, s.logger)
}

func (s *StorefrontRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(s.client, s.logger)
}

func (s *StorefrontRoot) CreateCatalogView() *view.CatalogView {
	return view.NewCatalogView(s.CreateLoadCatalogQueryHandler())
}

func (s *StorefrontRoot) CreateOrderFormView() *view.OrderFormView {
	return view.NewOrderFormView(s.CreateLoadCatalogQueryHandler(), s.CreateSubmitOrderCommandHandler())
}

func (s *StorefrontRoot) CreateOrderStatusView() *view.OrderStatusView {
	return view.NewOrderStatusView(s.CreateLookupOrderStatusQueryHandler())
}

func (s *StorefrontRoot) CreateStatusPollJob(onUpdate func(order.Record)) *jobs.StatusPollJob {
	return jobs.NewStatusPollJob(s.CreateLookupOrderStatusQueryHandler(), s.configs.StatusPollSchedule, onUpdate, s.logger)
}

func (s *StorefrontRoot) CreateTUI(ctx context.Context) tui.Model {
	return tui.NewModel(ctx, s.CreateCatalogView(), s.CreateOrderFormView(), s.CreateOrderStatusView())
}
