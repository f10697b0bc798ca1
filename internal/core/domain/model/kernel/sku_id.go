package kernel

import (
	"fmt"
	"strings"

	"shipment/internal/pkg/errs"
)

const maxSkuIDLength = 64

// ErrSkuIDIsRequired is returned for an empty SKU identifier.
var ErrSkuIDIsRequired = errs.NewValueIsRequiredError("skuId")

// SkuID references a product in the SKU master. Orders and loading records
// hold it as a foreign key only; the SKU itself is owned by master data.
type SkuID struct {
	code string
}

// NewSkuID trims surrounding whitespace and validates the code.
//
// Example:
//
//	sku, err := kernel.NewSkuID("SKU1")
func NewSkuID(code string) (SkuID, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return SkuID{}, ErrSkuIDIsRequired
	}
	if len(code) > maxSkuIDLength {
		return SkuID{}, errs.NewValueIsInvalidErrorWithCause(
			"skuId",
			fmt.Errorf("%d characters exceeds the limit of %d", len(code), maxSkuIDLength),
		)
	}
	return SkuID{code: code}, nil
}

// MustNewSkuID is NewSkuID for literals known to be valid; it panics otherwise.
func MustNewSkuID(code string) SkuID {
	id, err := NewSkuID(code)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the SKU code.
func (s SkuID) String() string {
	return s.code
}

// IsEqual compares two SKU codes.
func (s SkuID) IsEqual(other SkuID) bool {
	return s.code == other.code
}

// Validate rejects the zero value.
func (s SkuID) Validate() error {
	if s.code == "" {
		return ErrSkuIDIsRequired
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s SkuID) MarshalText() ([]byte, error) {
	return []byte(s.code), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SkuID) UnmarshalText(data []byte) error {
	parsed, err := NewSkuID(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
