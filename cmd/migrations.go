package cmd

import (
	"fulfillment/internal/adapters/out/postgres/invoicerepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/outboxrepo"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the database schema for every persisted model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.LineDTO{},
		&shipmentrepo.ShipmentDTO{},
		&outboxrepo.EventDTO{},
	)
}
