package models

import "github.com/shopspring/decimal"

// Test is a laboratory test procedure with an optional acceptance range.
type Test struct {
	ID                  int                 `json:"id"`
	UserAccountID       int                 `json:"user_account"`
	SOPID               int                 `json:"sop"`
	MinAcceptableResult decimal.NullDecimal `json:"min_acceptable_result"`
	MaxAcceptableResult decimal.NullDecimal `json:"max_acceptable_result"`
}

// Accepts reports whether value lies within the test's acceptance range.
// A missing bound does not constrain its side.
func (t Test) Accepts(value decimal.Decimal) bool {
	if t.MinAcceptableResult.Valid && value.LessThan(t.MinAcceptableResult.Decimal) {
		return false
	}
	if t.MaxAcceptableResult.Valid && value.GreaterThan(t.MaxAcceptableResult.Decimal) {
		return false
	}
	return true
}
