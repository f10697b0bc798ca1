package loading

import (
	"errors"
	"fmt"
)

const (
	ReasonRecordLocked   = "record-locked"
	ReasonUnknownSku     = "unknown-sku"
	ReasonDivisionByZero = "division-by-zero"

	ReasonOrderNotReconcilable = "order-not-reconcilable"
)

var (
	// ErrRecordLocked matches any mutation attempted on a locked loading record.
	ErrRecordLocked = errors.New("loading record is locked")

	// ErrUnknownSku matches actual entries or weights referencing a SKU that is
	// not part of the plan or of the SKU master.
	ErrUnknownSku = errors.New("unknown sku")

	// ErrDivisionByZero matches a planned line with zero quantity and no quoted
	// unit price to fall back on.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOrderNotReconcilable matches a reconcile against a cancelled order.
	ErrOrderNotReconcilable = errors.New("order is not reconcilable")
)

// RecordLockedError is returned when a reconcile targets an order whose loaded
// quantities are already a historical fact.
type RecordLockedError struct {
	OrderID string
}

func NewRecordLockedError(orderID string) *RecordLockedError {
	return &RecordLockedError{OrderID: orderID}
}

func (e *RecordLockedError) Error() string {
	return fmt.Sprintf("%s: order %s", ErrRecordLocked, e.OrderID)
}

func (e *RecordLockedError) Reason() string { return ReasonRecordLocked }

func (e *RecordLockedError) Unwrap() error { return ErrRecordLocked }

// UnknownSkuError names the offending SKU.
type UnknownSkuError struct {
	SkuID  string
	Detail string
}

func NewUnknownSkuError(skuID, detail string) *UnknownSkuError {
	return &UnknownSkuError{SkuID: skuID, Detail: detail}
}

func (e *UnknownSkuError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrUnknownSku, e.SkuID, e.Detail)
}

func (e *UnknownSkuError) Reason() string { return ReasonUnknownSku }

func (e *UnknownSkuError) Unwrap() error { return ErrUnknownSku }

// DivisionByZeroError names the planned line whose unit price cannot be derived.
type DivisionByZeroError struct {
	SkuID string
}

func NewDivisionByZeroError(skuID string) *DivisionByZeroError {
	return &DivisionByZeroError{SkuID: skuID}
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s: sku %q has zero planned quantity and no quoted unit price", ErrDivisionByZero, e.SkuID)
}

func (e *DivisionByZeroError) Reason() string { return ReasonDivisionByZero }

func (e *DivisionByZeroError) Unwrap() error { return ErrDivisionByZero }

// OrderNotReconcilableError is returned for orders whose status rules out
// recording a load at all.
type OrderNotReconcilableError struct {
	OrderID string
	Status  string
}

func NewOrderNotReconcilableError(orderID, status string) *OrderNotReconcilableError {
	return &OrderNotReconcilableError{OrderID: orderID, Status: status}
}

func (e *OrderNotReconcilableError) Error() string {
	return fmt.Sprintf("%s: order %s is %s", ErrOrderNotReconcilable, e.OrderID, e.Status)
}

func (e *OrderNotReconcilableError) Reason() string { return ReasonOrderNotReconcilable }

func (e *OrderNotReconcilableError) Unwrap() error { return ErrOrderNotReconcilable }
