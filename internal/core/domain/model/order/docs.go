// Package order provides the Order aggregate for the fulfillment system.
//
// The package includes:
//   - Order: the aggregate root holding customer email, line sequence, and status
//   - Status: a state machine enforcing the order lifecycle
//   - Line: a single order line with derived line total
//
// Key business rules:
//   - Orders are created only through Place, which validates email and lines
//   - The order total is always derived from the lines
//   - Lifecycle: Placed -> Invoiced -> Shipped, with Cancel legal until shipping
//   - Cancelled and Shipped are terminal; Update is legal while Placed or Invoiced
package order
