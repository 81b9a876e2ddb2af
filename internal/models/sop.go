package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SOP is a standard operating procedure referenced by samples, equipment,
// warehouses and tests.
type SOP struct {
	ID            int             `json:"id"`
	SOPName       string          `json:"sop_name"`
	VersionNumber decimal.Decimal `json:"version_number"`
	EffectiveDate Date            `json:"effective_date"`
}

// VersionChange records an edit of an SOP's version number or effective date.
type VersionChange struct {
	ID               int             `json:"id"`
	SOPID            int             `json:"sop"`
	OldVersionNumber decimal.Decimal `json:"old_version_number"`
	NewVersionNumber decimal.Decimal `json:"new_version_number"`
	OldEffectiveDate Date            `json:"old_effective_date"`
	NewEffectiveDate Date            `json:"new_effective_date"`
	ChangeDate       Date            `json:"change_date"`
}

// VersionChanged reports whether replacing old with updated must be logged.
func VersionChanged(old, updated SOP) bool {
	return !old.VersionNumber.Equal(updated.VersionNumber) || !old.EffectiveDate.Equal(updated.EffectiveDate)
}

// NewVersionChange builds the log entry for an SOP edit made at the given time.
func NewVersionChange(old, updated SOP, at time.Time) VersionChange {
	return VersionChange{
		SOPID:            updated.ID,
		OldVersionNumber: old.VersionNumber,
		NewVersionNumber: updated.VersionNumber,
		OldEffectiveDate: old.EffectiveDate,
		NewEffectiveDate: updated.EffectiveDate,
		ChangeDate:       Date{at.UTC().Truncate(24 * time.Hour)},
	}
}
