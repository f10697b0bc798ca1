// Package kernel provides the shared value objects of the shipment domain:
// UUID identifiers for orders and loading records, and SkuID references into
// the external SKU master. Both are immutable and reject their zero value
// through Validate.
package kernel
