package app

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
	"github.com/vladislavdragonenkov/orderdesk/internal/health"
	"github.com/vladislavdragonenkov/orderdesk/internal/httpapi"
	"github.com/vladislavdragonenkov/orderdesk/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/catalog"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/customer"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/order"
	"github.com/vladislavdragonenkov/orderdesk/internal/service/outbox"
	"github.com/vladislavdragonenkov/orderdesk/internal/storage/memory"
	"github.com/vladislavdragonenkov/orderdesk/internal/storage/postgres"
	"github.com/vladislavdragonenkov/orderdesk/internal/version"
)

// dependencies — собранный граф сервиса: репозитории, сервисы, внешние клиенты.
type dependencies struct {
	services httpapi.Services
	health   *health.Handler

	store        *postgres.Store
	producer     *kafka.Producer
	outboxWorker *outbox.Worker
}

// buildDependencies выбирает хранилище по конфигурации и собирает сервисы.
// Kafka опционален: без брокеров события копятся в outbox без публикации.
func buildDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*dependencies, error) {
	deps := &dependencies{
		health: health.NewHandler(version.GetVersion()),
	}

	var (
		orderRepo    domain.OrderRepository
		productRepo  domain.ProductRepository
		customerRepo domain.CustomerRepository
		supplierRepo domain.SupplierRepository
		outboxRepo   domain.OutboxRepository
		timelineRepo domain.TimelineRepository
	)

	if cfg.PostgresDSN != "" {
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		deps.store = store

		orderRepo = postgres.NewOrderRepository(store)
		productRepo = postgres.NewProductRepository(store)
		customerRepo = postgres.NewCustomerRepository(store)
		supplierRepo = postgres.NewSupplierRepository(store)
		outboxRepo = postgres.NewOutboxRepository(store)
		timelineRepo = postgres.NewTimelineRepository(store)

		deps.health.RegisterCheck("postgres", func() error {
			return store.Ping(context.Background())
		})
		logger.Info("using postgres storage")
	} else {
		orderRepo = memory.NewOrderRepository()
		productRepo = memory.NewProductRepository()
		customerRepo = memory.NewCustomerRepository()
		supplierRepo = memory.NewSupplierRepository()
		outboxRepo = memory.NewOutboxRepository()
		timelineRepo = memory.NewTimelineRepository()
		logger.Info("using in-memory storage")
	}

	if cfg.KafkaBrokers != "" {
		brokers := strings.Split(cfg.KafkaBrokers, ",")
		producer, err := kafka.NewProducer(brokers)
		if err != nil {
			logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		} else {
			deps.producer = producer
			deps.outboxWorker = outbox.NewWorker(
				outboxRepo,
				kafka.NewOutboxPublisher(producer, kafka.TopicOrderEvents),
				kafka.NewOutboxPublisher(producer, kafka.TopicDeadLetterQueue),
				logger.WithField("component", "outbox-worker"),
				outbox.Config{
					PollInterval: cfg.OutboxPollInterval,
					BatchSize:    cfg.OutboxBatchSize,
				},
			)
			logger.WithField("brokers", brokers).Info("kafka producer initialized")
		}
	}

	deps.services = httpapi.Services{
		Orders: order.NewCoordinator(
			orderRepo, customerRepo, productRepo, outboxRepo, timelineRepo,
			logger.WithField("component", "order-coordinator"),
		),
		Products:  catalog.NewProductService(productRepo, logger.WithField("component", "product-service")),
		Suppliers: catalog.NewSupplierService(supplierRepo, logger.WithField("component", "supplier-service")),
		Customers: customer.NewService(customerRepo, logger.WithField("component", "customer-service")),
	}

	return deps, nil
}

// close останавливает внешние подключения в обратном порядке создания.
func (d *dependencies) close(logger *log.Entry) {
	if d.producer != nil {
		if err := d.producer.Close(); err != nil {
			logger.WithError(err).Warn("failed to close kafka producer")
		} else {
			logger.Info("kafka producer closed")
		}
	}
	if d.store != nil {
		if err := d.store.Close(); err != nil {
			logger.WithError(err).Warn("failed to close postgres store")
		}
	}
}
