package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MaxProductLinkLength = 2048
	MaxTextLength        = 2000

	// PriceScale and PriceIntegerDigits follow the NUMERIC(12, 2) checkout_price column.
	PriceScale         = 2
	PriceIntegerDigits = 10
)

var priceCeiling = decimal.New(1, PriceIntegerDigits)

type ProductLink struct {
	value string
}

func NewProductLink(s string) (ProductLink, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ProductLink{}, ErrEmptyProductLink
	}
	if len(s) > MaxProductLinkLength {
		return ProductLink{}, ErrProductLinkTooLong
	}
	return ProductLink{value: s}, nil
}

func (p ProductLink) String() string {
	return p.value
}

// Price is an optional non-negative checkout amount with at most two decimal places.
type Price struct {
	value *decimal.Decimal
}

func NewPrice(d *decimal.Decimal) (Price, error) {
	if d == nil {
		return Price{}, nil
	}
	if d.IsNegative() {
		return Price{}, ErrNegativePrice
	}
	if d.GreaterThanOrEqual(priceCeiling) || !d.Equal(d.Truncate(PriceScale)) {
		return Price{}, ErrPriceOutOfRange
	}
	v := *d
	return Price{value: &v}, nil
}

func (p Price) Decimal() *decimal.Decimal {
	return p.value
}

// optionalText trims s and maps blank input to nil.
func optionalText(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil, nil
	}
	if len(v) > MaxTextLength {
		return nil, ErrTextTooLong
	}
	return &v, nil
}
