package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/cmd"
	pgadapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/invoicerepo"
	"fulfillment/internal/adapters/out/postgres/outboxrepo"
	"fulfillment/internal/core/application/eventhandlers"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/outbox"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Closure adapters for the narrow factory interfaces the handlers expect.
type (
	billingUoWFactoryFunc func() eventhandlers.BillingUoW
	orderUoWFactoryFunc   func() commands.OrderUoW
	shipUoWFactoryFunc    func() commands.ShipUoW
)

func (f billingUoWFactoryFunc) Create() eventhandlers.BillingUoW { return f() }

func (f orderUoWFactoryFunc) Create() commands.OrderUoW { return f() }

func (f shipUoWFactoryFunc) Create() commands.ShipUoW { return f() }

// UnitOfWorkIntegrationTestSuite verifies transactional behavior and the full
// outbox dispatch flow against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *pgadapter.GormUnitOfWorkFactory
	logger    *slog.Logger
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(cmd.AutoMigrate(db))
	suite.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_lines, invoices, invoice_lines, shipments, outbox_events",
	).Error)
	suite.factory = pgadapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) placeTestOrder() (*order.Order, *outbox.Event) {
	ord, err := order.Place("customer@example.com", []order.Line{
		{ProductCode: "SKU-100", Quantity: 2, UnitPrice: decimal.RequireFromString("50.00")},
		{ProductCode: "SKU-200", Quantity: 1, UnitPrice: decimal.RequireFromString("25.00")},
	})
	suite.Require().NoError(err)

	ev := events.NewOrderPlaced(ord.ID().Bytes(), ord.CustomerEmail(), ord.Total())
	row, err := outbox.FromDomainEvent(ev)
	suite.Require().NoError(err)

	return ord, row
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndOutboxRowTogether() {
	ctx := context.Background()
	ord, row := suite.placeTestOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, ord))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, row))
	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Placed, retrieved.Status())

	backlog, err := outboxrepo.NewGormOutboxRepository(suite.db).GetUnprocessed(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(backlog, 1)
	suite.Equal(events.TypeOrderPlaced, backlog[0].Type())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	ord, row := suite.placeTestOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, ord))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, row))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, ord.ID())
	suite.Require().Error(err)

	backlog, err := outboxrepo.NewGormOutboxRepository(suite.db).GetUnprocessed(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(backlog)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDispatchFlow_OrderPlacedProducesInvoice() {
	ctx := context.Background()
	ord, row := suite.placeTestOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, ord))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, row))
	suite.Require().NoError(uow.Commit(ctx))

	job := suite.newDispatcherJob()
	suite.Require().NoError(job.RunOnce(ctx))

	// The billing reaction invoiced the order and wrote the invoice.
	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Invoiced, retrieved.Status())

	inv, err := invoicerepo.NewGormInvoiceRepository(suite.db).GetByOrderID(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal("125.00", inv.Amount().StringFixed(2))
	suite.Equal("customer@example.com", inv.BillingEmail())

	var dto outboxrepo.EventDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", row.ID()).Error)
	suite.Require().NotNil(dto.ProcessedAt)
	suite.Equal(1, dto.Attempts)

	// The reaction appended a follow-up InvoiceCreated row; a second pass
	// drains it and leaves the backlog empty.
	backlog, err := outboxrepo.NewGormOutboxRepository(suite.db).GetUnprocessed(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(backlog, 1)
	suite.Equal(events.TypeInvoiceCreated, backlog[0].Type())

	suite.Require().NoError(job.RunOnce(ctx))

	backlog, err = outboxrepo.NewGormOutboxRepository(suite.db).GetUnprocessed(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(backlog)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDispatchFlow_RedeliveryDoesNotDuplicateInvoice() {
	ctx := context.Background()
	ord, row := suite.placeTestOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, ord))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, row))
	suite.Require().NoError(uow.Commit(ctx))

	job := suite.newDispatcherJob()
	suite.Require().NoError(job.RunOnce(ctx))

	// Simulate at-least-once redelivery of the already handled row.
	suite.Require().NoError(suite.db.Exec(
		"UPDATE outbox_events SET processed_at = NULL WHERE id = ?", row.ID(),
	).Error)
	suite.Require().NoError(job.RunOnce(ctx))

	var invoiceCount int64
	suite.Require().NoError(suite.db.Model(&invoicerepo.InvoiceDTO{}).Count(&invoiceCount).Error)
	suite.Equal(int64(1), invoiceCount)

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Invoiced, retrieved.Status())

	var dto outboxrepo.EventDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", row.ID()).Error)
	suite.Require().NotNil(dto.ProcessedAt)
	suite.Equal(2, dto.Attempts)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDispatchFlow_OrderUpdateResyncsInvoice() {
	ctx := context.Background()
	orderID := suite.placeViaHandler()

	job := suite.newDispatcherJob()
	suite.Require().NoError(job.RunOnce(ctx))

	updateCmd, err := commands.NewUpdateOrderCommand(orderID, []order.Line{
		{ProductCode: "SKU-100", Quantity: 5, UnitPrice: decimal.RequireFromString("50.00")},
	})
	suite.Require().NoError(err)

	updateHandler := commands.NewUpdateOrderCommandHandler(suite.orderUoWFactory())
	updateResp, err := updateHandler.Handle(ctx, updateCmd)
	suite.Require().NoError(err)
	suite.Equal("125.00", updateResp.OldTotal.StringFixed(2))
	suite.Equal("250.00", updateResp.NewTotal.StringFixed(2))

	suite.Require().NoError(job.RunOnce(ctx))

	inv, err := invoicerepo.NewGormInvoiceRepository(suite.db).GetByOrderID(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal("250.00", inv.Amount().StringFixed(2))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestShipOrder_BeforeInvoiced_ReturnsConflict() {
	ctx := context.Background()
	orderID := suite.placeViaHandler()

	shipCmd, err := commands.NewShipOrderCommand(orderID, "TRK-1", "dhl")
	suite.Require().NoError(err)

	shipHandler := commands.NewShipOrderCommandHandler(suite.shipUoWFactory())
	_, err = shipHandler.Handle(ctx, shipCmd)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	var shipmentCount int64
	suite.Require().NoError(suite.db.Table("shipments").Count(&shipmentCount).Error)
	suite.Zero(shipmentCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCancelOrder_AfterShip_ReturnsConflict() {
	ctx := context.Background()
	orderID := suite.placeViaHandler()

	suite.Require().NoError(suite.newDispatcherJob().RunOnce(ctx))

	shipCmd, err := commands.NewShipOrderCommand(orderID, "TRK-1", "dhl")
	suite.Require().NoError(err)

	shipHandler := commands.NewShipOrderCommandHandler(suite.shipUoWFactory())
	shipResp, err := shipHandler.Handle(ctx, shipCmd)
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, shipResp.Status)

	cancelCmd, err := commands.NewCancelOrderCommand(orderID, "")
	suite.Require().NoError(err)

	cancelHandler := commands.NewCancelOrderCommandHandler(suite.orderUoWFactory())
	_, err = cancelHandler.Handle(ctx, cancelCmd)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, retrieved.Status())
}

// placeViaHandler runs the place command end to end and returns the order id.
func (suite *UnitOfWorkIntegrationTestSuite) placeViaHandler() kernel.UUID {
	cmd, err := commands.NewPlaceOrderCommand("customer@example.com", []order.Line{
		{ProductCode: "SKU-100", Quantity: 2, UnitPrice: decimal.RequireFromString("50.00")},
		{ProductCode: "SKU-200", Quantity: 1, UnitPrice: decimal.RequireFromString("25.00")},
	})
	suite.Require().NoError(err)

	handler := commands.NewPlaceOrderCommandHandler(suite.orderUoWFactory())
	resp, err := handler.Handle(context.Background(), cmd)
	suite.Require().NoError(err)
	suite.Equal("125.00", resp.Total.StringFixed(2))

	return resp.OrderID
}

func (suite *UnitOfWorkIntegrationTestSuite) orderUoWFactory() commands.OrderUoWFactory {
	return orderUoWFactoryFunc(func() commands.OrderUoW { return suite.factory.Create() })
}

func (suite *UnitOfWorkIntegrationTestSuite) shipUoWFactory() commands.ShipUoWFactory {
	return shipUoWFactoryFunc(func() commands.ShipUoW { return suite.factory.Create() })
}

func (suite *UnitOfWorkIntegrationTestSuite) newDispatcherJob() *jobs.OutboxDispatcherJob {
	billingFactory := billingUoWFactoryFunc(func() eventhandlers.BillingUoW {
		return suite.factory.Create()
	})

	registry := eventhandlers.NewRegistry()
	suite.Require().NoError(registry.Register(events.TypeOrderPlaced, func() eventhandlers.Handler {
		return eventhandlers.NewOrderPlacedHandler(billingFactory, suite.logger)
	}))
	suite.Require().NoError(registry.Register(events.TypeOrderUpdated, func() eventhandlers.Handler {
		return eventhandlers.NewOrderUpdatedHandler(billingFactory, suite.logger)
	}))
	suite.Require().NoError(registry.Register(events.TypeInvoiceCreated, func() eventhandlers.Handler {
		return eventhandlers.NewInvoiceCreatedHandler(suite.logger)
	}))

	return jobs.NewOutboxDispatcherJob(
		outboxrepo.NewGormOutboxRepository(suite.db),
		registry,
		10,
		suite.logger,
	)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
