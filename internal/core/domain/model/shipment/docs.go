// Package shipment models the shipment order aggregate and its status workflow.
//
// The package includes:
//   - Status: the lifecycle stages with their fixed wire names
//   - StatusGraph: the read-only workflow graph deciding every transition
//   - Order: the aggregate root holding status, container, currency and planned lines
//   - OrderItem: a planned line with exact decimal quantity and price
//
// Key business rules:
//   - forward moves are always allowed, skipping stages included
//   - backward moves are limited to a single stage
//   - Cancelled is reachable from every stage except Delivered and Cancelled
//   - a transition to the current stage is a successful no-op
//   - Delivered and Cancelled have no outgoing transitions
package shipment
