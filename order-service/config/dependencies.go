package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/myeshop/order-system/order-service/application"
	"github.com/myeshop/order-system/order-service/handlers"
	"github.com/myeshop/order-system/order-service/infrastructure"
	"github.com/myeshop/order-system/order-service/saga"
	"github.com/myeshop/order-system/shared/gateway"
	sharedinfra "github.com/myeshop/order-system/shared/infrastructure"
	"github.com/myeshop/order-system/shared/telemetry"
	"go.uber.org/zap"
)

type Dependencies struct {
	// Logging
	Logger *zap.Logger

	// Database
	DB *sqlx.DB

	// Repositories
	OrderRepository infrastructure.PostgresOrderRepository

	// Stores
	EventStore *sharedinfra.PostgresEventStore
	SagaStore  *sharedinfra.PostgresSagaStore
	DedupGuard *sharedinfra.PostgresDedupGuard

	// Use Cases
	CreateOrder  *application.CreateOrder
	GetOrder     *application.GetOrder
	CancelOrder  *application.CancelOrder
	ApproveOrder *application.ApproveOrder
	RejectOrder  *application.RejectOrder
	ProjectOrder *application.ProjectOrder

	// Saga
	OrderSaga *saga.OrderSaga

	// HTTP Handlers
	OrderHandlers *handlers.OrderHandlers

	// Event Handlers
	OrderEventHandlers *handlers.OrderEventHandlers

	// Infrastructure
	EventPublisher  *sharedinfra.SNSPublisherAdapter
	EventSubscriber *sharedinfra.SQSSubscriberAdapter

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	deps.Logger = logger

	// Initialize telemetry first
	if config.Telemetry.Enabled {
		telConfig := telemetry.Config{
			ServiceName:    config.ServiceName,
			ServiceVersion: "1.0.0",
			OTLPEndpoint:   config.Telemetry.OTLPEndpoint,
		}
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			log.Printf("Failed to initialize telemetry: %v", err)
			// Continue without telemetry rather than failing
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	// Initialize database
	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	deps.DB = db

	// Initialize AWS infrastructure
	eventPublisher, err := sharedinfra.NewSNSPublisherAdapter(config.AWS.SNSTopicArn)
	if err != nil {
		return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher

	eventSubscriber, err := sharedinfra.NewSQSSubscriberAdapter(config.AWS.SQSQueueURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQS subscriber: %w", err)
	}
	deps.EventSubscriber = eventSubscriber

	// Initialize stores and repositories
	deps.EventStore = sharedinfra.NewPostgresEventStore(db)
	deps.SagaStore = sharedinfra.NewPostgresSagaStore(db)
	deps.DedupGuard = sharedinfra.NewPostgresDedupGuard(db)
	deps.OrderRepository = *infrastructure.NewPostgresOrderRepository(db)

	// Initialize use cases
	deps.CreateOrder = application.NewCreateOrder(deps.EventStore, eventPublisher)
	deps.GetOrder = application.NewGetOrder(&deps.OrderRepository)
	deps.CancelOrder = application.NewCancelOrder(deps.EventStore, eventPublisher)
	deps.ApproveOrder = application.NewApproveOrder(deps.EventStore, eventPublisher)
	deps.RejectOrder = application.NewRejectOrder(deps.EventStore, eventPublisher)
	deps.ProjectOrder = application.NewProjectOrder(deps.EventStore, &deps.OrderRepository)

	// Initialize collaborator gateways
	inventoryClient := gateway.NewClient(gateway.Config{
		Name:     "inventory-service",
		Timeout:  config.Inventory.Timeout,
		MaxTries: config.Inventory.MaxTries,
	}, logger)
	paymentClient := gateway.NewClient(gateway.Config{
		Name:     "payment-service",
		Timeout:  config.Payments.Timeout,
		MaxTries: config.Payments.MaxTries,
	}, logger)

	inventoryGateway := infrastructure.NewHTTPInventoryGateway(config.Inventory.BaseURL, inventoryClient)
	paymentGateway := infrastructure.NewHTTPPaymentGateway(config.Payments.BaseURL, paymentClient)
	orderCommander := infrastructure.NewLocalOrderCommander(deps.CancelOrder, deps.ApproveOrder, deps.RejectOrder)

	// Initialize saga
	deps.OrderSaga = saga.NewOrderSaga(
		deps.SagaStore,
		inventoryGateway,
		paymentGateway,
		orderCommander,
		logger,
		saga.WithReserveTimeout(config.Saga.ReserveTimeout),
		saga.WithDetailTimeout(config.Saga.DetailTimeout),
		saga.WithProcessTimeout(config.Saga.ProcessTimeout),
	)

	// Initialize handlers
	deps.OrderHandlers = handlers.NewOrderHandlers(deps.CreateOrder, deps.GetOrder)
	deps.OrderEventHandlers = handlers.NewOrderEventHandlers(deps.DedupGuard, deps.ProjectOrder, deps.OrderSaga, logger)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.EventPublisher != nil {
		if err := d.EventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
		}
	}

	if d.EventSubscriber != nil {
		if err := d.EventSubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event subscriber: %w", err))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if d.Logger != nil {
		d.Logger.Sync()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
