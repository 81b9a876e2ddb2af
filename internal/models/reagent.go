package models

import "github.com/shopspring/decimal"

// Reagent is one lot of a chemical used by laboratory procedures.
type Reagent struct {
	ID                int    `json:"id"`
	SOPID             int    `json:"sop"`
	ReagentName       string `json:"reagent_name"`
	CASNumber         string `json:"cas_number"`
	LotNumber         string `json:"lot_number"`
	Vendor            string `json:"vendor"`
	ManufacturingDate Date   `json:"manufacturing_date"`
	ExpirationDate    Date   `json:"expiration_date"`
}

// ExpiredOn reports whether the lot is past its expiration date on day.
func (r Reagent) ExpiredOn(day Date) bool {
	return day.After(r.ExpirationDate.Time)
}

// TestReagentLink records the volume of a reagent a test consumed.
type TestReagentLink struct {
	ID         int             `json:"id"`
	TestID     int             `json:"test"`
	ReagentID  int             `json:"reagent"`
	VolumeUsed decimal.Decimal `json:"volume_used"`
}
