package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/adapters/in/kafka"
	"dispatch/internal/adapters/out/driversvc"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/rediscache"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
	"dispatch/internal/metrics"

	httpapi "dispatch/internal/adapters/in/http"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// CompositionRoot wires every adapter and use case of the dispatch service.
type CompositionRoot struct {
	gormDB *gorm.DB
	logger *slog.Logger

	deliveryRepo ports.DeliveryRepository
	directory    ports.DriverDirectory
	workload     ports.DriverWorkload
	notifier     ports.DispatchNotifier

	ingestHandler        commands.IngestDeliveryCommandHandler
	assignHandler        *commands.AssignDriverCommandHandler
	updateHandler        *commands.UpdateDeliveryCommandHandler
	markDeliveredHandler *commands.MarkDeliveredCommandHandler
	deleteHandler        *commands.DeleteDeliveryCommandHandler
	sweepHandler         *commands.DispatchUnassignedCommandHandler

	server   *httpapi.Server
	consumer *kafka.Consumer
	jobs     *jobs.JobManager
}

// NewCompositionRoot builds the full object graph from the given config.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		gormDB: gormDB,
		logger: logger,
	}

	root.deliveryRepo = deliveryrepo.NewGormDeliveryRepository(gormDB)

	if err := root.buildDriverServiceClients(config); err != nil {
		return nil, err
	}
	if err := root.buildUseCases(config); err != nil {
		return nil, err
	}
	if err := root.buildEntryPoints(config); err != nil {
		return nil, err
	}

	return root, nil
}

func (c *CompositionRoot) buildDriverServiceClients(config Config) error {
	httpClient := driversvc.NewHTTPClient(time.Duration(config.HTTPClientTimeoutSec) * time.Second)

	directory, err := driversvc.NewDirectoryClient(config.DirectoryServiceURL, httpClient)
	if err != nil {
		return fmt.Errorf("driver directory client: %w", err)
	}
	c.directory = directory

	orders, err := driversvc.NewOrderServiceClient(config.DriverOrdersServiceURL, httpClient)
	if err != nil {
		return fmt.Errorf("driver orders client: %w", err)
	}
	c.workload = orders
	c.notifier = orders

	if config.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		ttl := time.Duration(config.RedisCacheTTLSec) * time.Second

		cached, err := rediscache.NewDirectoryCache(c.directory, client, ttl, c.logger)
		if err != nil {
			return fmt.Errorf("directory cache: %w", err)
		}
		c.directory = cached
	}

	return nil
}

func (c *CompositionRoot) buildUseCases(config Config) error {
	var err error

	c.ingestHandler, err = commands.NewIngestDeliveryCommandHandler(c.deliveryRepo)
	if err != nil {
		return fmt.Errorf("ingest handler: %w", err)
	}

	matcher := services.NewDriverMatcher(config.CapacityThreshold)
	c.assignHandler, err = commands.NewAssignDriverCommandHandler(
		c.deliveryRepo, c.directory, c.workload, c.notifier, matcher,
	)
	if err != nil {
		return fmt.Errorf("assign handler: %w", err)
	}

	c.updateHandler, err = commands.NewUpdateDeliveryCommandHandler(c.deliveryRepo)
	if err != nil {
		return fmt.Errorf("update handler: %w", err)
	}

	c.markDeliveredHandler, err = commands.NewMarkDeliveredCommandHandler(c.deliveryRepo)
	if err != nil {
		return fmt.Errorf("mark delivered handler: %w", err)
	}

	c.deleteHandler, err = commands.NewDeleteDeliveryCommandHandler(c.deliveryRepo)
	if err != nil {
		return fmt.Errorf("delete handler: %w", err)
	}

	sink, err := metrics.NewPromSink(nil)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}

	c.sweepHandler, err = commands.NewDispatchUnassignedCommandHandler(
		c.deliveryRepo, c.assignHandler, sink, config.SweepWorkers, c.logger,
	)
	if err != nil {
		return fmt.Errorf("sweep handler: %w", err)
	}

	return nil
}

func (c *CompositionRoot) buildEntryPoints(config Config) error {
	c.server = httpapi.NewServer(
		c.ingestHandler,
		c.assignHandler,
		c.updateHandler,
		c.markDeliveredHandler,
		c.deleteHandler,
		queries.NewGetAllDeliveriesQueryHandler(c.gormDB),
		queries.NewGetDeliveryByOrderIDQueryHandler(c.gormDB),
		queries.NewGetUnassignedDeliveriesQueryHandler(c.gormDB),
	)

	eventHandler, err := kafka.NewEventHandler(c.ingestHandler, c.logger)
	if err != nil {
		return fmt.Errorf("event handler: %w", err)
	}

	c.consumer, err = kafka.NewConsumer(
		config.KafkaBrokers,
		config.KafkaConsumerGroup,
		config.KafkaOrderTopic,
		eventHandler,
		c.logger,
	)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}

	c.jobs = jobs.NewJobManager(
		c.sweepHandler,
		time.Duration(config.SweepIntervalSec)*time.Second,
		c.logger,
	)

	return nil
}

// Server returns the management API server.
func (c *CompositionRoot) Server() *httpapi.Server { return c.server }

// Consumer returns the order event consumer.
func (c *CompositionRoot) Consumer() *kafka.Consumer { return c.consumer }

// Jobs returns the background job manager.
func (c *CompositionRoot) Jobs() *jobs.JobManager { return c.jobs }
