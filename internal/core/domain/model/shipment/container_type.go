package shipment

import (
	"fmt"

	"shipment/internal/pkg/errs"
)

// ContainerType is the ISO size class of the shipping container.
type ContainerType string

const (
	Container20FT ContainerType = "20FT"
	Container40FT ContainerType = "40FT"
	Container40HC ContainerType = "40HC"
)

// ParseContainerType validates a wire value.
func ParseContainerType(value string) (ContainerType, error) {
	ct := ContainerType(value)
	if err := ct.Validate(); err != nil {
		return "", err
	}
	return ct, nil
}

// Validate accepts 20FT, 40FT and 40HC.
func (c ContainerType) Validate() error {
	switch c {
	case Container20FT, Container40FT, Container40HC:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"containerType",
			fmt.Errorf("%q is not a supported container type", string(c)),
		)
	}
}

func (c ContainerType) String() string {
	return string(c)
}

// Currency is the ISO 4217 code the order is priced in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyCNY Currency = "CNY"
	CurrencyEUR Currency = "EUR"
	CurrencyINR Currency = "INR"
)

// ParseCurrency validates a wire value.
func ParseCurrency(value string) (Currency, error) {
	c := Currency(value)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate accepts USD, CNY, EUR and INR.
func (c Currency) Validate() error {
	switch c {
	case CurrencyUSD, CurrencyCNY, CurrencyEUR, CurrencyINR:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("%q is not a supported currency", string(c)),
		)
	}
}

func (c Currency) String() string {
	return string(c)
}
