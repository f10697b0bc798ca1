// Package services holds the stateless domain services of the shipment
// workflow: rules that need more than one aggregate or a plain value input
// rather than a loaded aggregate.
//
// The package includes:
//   - TransitionValidator: answers whether a status change by name is allowed
//   - VarianceEngine: turns a plan plus actual loaded quantities into loaded items
package services
