package models

import "github.com/shopspring/decimal"

func init() {
	// measurements travel as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// NullDecimalFrom turns an optional pointer into a nullable decimal.
func NullDecimalFrom(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
