// Package loading models the actual loading record of a shipment order: what
// was really put into the container, side by side with what was planned.
//
// Variance fields are derived from their source pair on every read. A record
// becomes immutable once its order reaches Shipped or later.
package loading
