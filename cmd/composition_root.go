package cmd

import (
	"fmt"
	"log/slog"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/outboxrepo"
	"fulfillment/internal/core/application/eventhandlers"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires repositories, handlers, reactions, and jobs together.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot creates the application's object graph root.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	var f commands.ShipUoWFactory = FuncShipUoWFactory(func() commands.ShipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewShipOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoiceByIDQueryHandler() queries.GetInvoiceByIDQueryHandler {
	return queries.NewGetInvoiceByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoiceByOrderIDQueryHandler() queries.GetInvoiceByOrderIDQueryHandler {
	return queries.NewGetInvoiceByOrderIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentByIDQueryHandler() queries.GetShipmentByIDQueryHandler {
	return queries.NewGetShipmentByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentByOrderIDQueryHandler() queries.GetShipmentByOrderIDQueryHandler {
	return queries.NewGetShipmentByOrderIDQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound HTTP adapter with every command and
// query handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateShipOrderCommandHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetInvoiceByIDQueryHandler(),
		c.CreateGetInvoiceByOrderIDQueryHandler(),
		c.CreateGetShipmentByIDQueryHandler(),
		c.CreateGetShipmentByOrderIDQueryHandler(),
	)
}

// CreateEventHandlerRegistry builds the static event-type-to-reaction map.
// Every event type the system emits has an entry, so an unknown tag at
// dispatch time always means a programming error, never a race.
func (c *CompositionRoot) CreateEventHandlerRegistry() (*eventhandlers.Registry, error) {
	var billing eventhandlers.BillingUoWFactory = FuncBillingUoWFactory(func() eventhandlers.BillingUoW {
		return c.uowFactory.Create()
	})

	registry := eventhandlers.NewRegistry()
	bindings := map[string]eventhandlers.HandlerFactory{
		events.TypeOrderPlaced: func() eventhandlers.Handler {
			return eventhandlers.NewOrderPlacedHandler(billing, c.logger)
		},
		events.TypeOrderUpdated: func() eventhandlers.Handler {
			return eventhandlers.NewOrderUpdatedHandler(billing, c.logger)
		},
		events.TypeInvoiceCreated: func() eventhandlers.Handler {
			return eventhandlers.NewInvoiceCreatedHandler(c.logger)
		},
		events.TypeOrderCancelled: func() eventhandlers.Handler {
			return eventhandlers.NewAuditHandler(events.TypeOrderCancelled, c.logger)
		},
		events.TypeOrderShipped: func() eventhandlers.Handler {
			return eventhandlers.NewAuditHandler(events.TypeOrderShipped, c.logger)
		},
	}

	for eventType, factory := range bindings {
		if err := registry.Register(eventType, factory); err != nil {
			return nil, fmt.Errorf("register %s: %w", eventType, err)
		}
	}

	return registry, nil
}

// CreateJobManager assembles the background jobs, including the outbox
// dispatch loop.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	registry, err := c.CreateEventHandlerRegistry()
	if err != nil {
		return nil, err
	}

	outbox := outboxrepo.NewGormOutboxRepository(c.gormDB)
	return jobs.NewJobManager(outbox, registry, c.configs.OutboxBatchSize, c.logger), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShipUoWFactory func() commands.ShipUoW

func (f FuncShipUoWFactory) Create() commands.ShipUoW {
	return f()
}

type FuncBillingUoWFactory func() eventhandlers.BillingUoW

func (f FuncBillingUoWFactory) Create() eventhandlers.BillingUoW {
	return f()
}
