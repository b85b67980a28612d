// Package kernel contains shared value objects used across the domain model.
// It provides the UUID identifier wrapper that every aggregate in the
// fulfillment system uses for identity.
package kernel
