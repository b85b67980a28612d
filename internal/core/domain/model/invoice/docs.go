// Package invoice provides the Invoice aggregate for billing orders.
// An invoice is created exactly once per order by the billing reaction,
// carries a derived amount, and allows wholesale line replacement only
// while in Created status.
package invoice
